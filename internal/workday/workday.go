package workday

import "time"

const dateLabelLayout = "02.01.2006"

// BusinessDay is one weekday inside the report window.
type BusinessDay struct {
	Date    time.Time
	Weekday time.Weekday
	Name    string
	Label   string
}

// Window is the calendar range of a report run. Start and End are the full
// calendar bounds (used for the overlap query and the subject line); Days
// holds only the weekdays inside them, in order.
type Window struct {
	Start time.Time
	End   time.Time
	Days  []BusinessDay
}

func (w Window) StartLabel() string {
	return w.Start.Format(dateLabelLayout)
}

func (w Window) EndLabel() string {
	return w.End.Format(dateLabelLayout)
}

// BuildWindow collects the business days in [today, today+daysRange-1],
// skipping Saturdays and Sundays. names is a 7-entry display table, Monday
// first. A daysRange below 1 yields an empty window.
func BuildWindow(today time.Time, daysRange int, names []string) Window {
	start := DateOnly(today)

	win := Window{Start: start, End: start}
	if daysRange < 1 {
		return win
	}
	win.End = start.AddDate(0, 0, daysRange-1)

	for i := 0; i < daysRange; i++ {
		day := start.AddDate(0, 0, i)
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}

		win.Days = append(win.Days, BusinessDay{
			Date:    day,
			Weekday: wd,
			Name:    names[mondayIndex(wd)],
			Label:   day.Format(dateLabelLayout),
		})
	}

	return win
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayIndex maps time.Weekday (Sunday=0) to the Monday-first table index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
