package report

import (
	"sort"
	"strings"

	"leave-report/internal/leave"
	"leave-report/internal/workday"
)

// HalfDayStatus is the planned state of one half of a business day.
type HalfDayStatus string

const (
	StatusNone   HalfDayStatus = ""
	StatusLeave  HalfDayStatus = "leave"
	StatusRemote HalfDayStatus = "remote"
)

type DayStatus struct {
	Morning   HalfDayStatus
	Afternoon HalfDayStatus
}

// EmployeeDays carries one DayStatus per business day in window order.
type EmployeeDays struct {
	Name string
	Days []DayStatus
}

// Schedule lists employees in ascending name order. Employees without any
// overlapping leave are absent.
type Schedule struct {
	Employees []EmployeeDays
}

func (s Schedule) Empty() bool {
	return len(s.Employees) == 0
}

type AggregateOptions struct {
	// RemoteCategory is the leave category rendered as remote work; every
	// other category, known or not, counts as absence.
	RemoteCategory string
	// NameSuffixTag is an organizational marker stripped from employee names.
	NameSuffixTag string
}

// Aggregate folds approved leaves into a per-employee, per-day, per-half-day
// schedule over the window's business days. Records are folded in creation
// order, so when several overlap the same half the newest one wins and the
// result does not depend on the fetch iteration order.
func Aggregate(win workday.Window, leaves []leave.Leave, opts AggregateOptions) Schedule {
	records := make([]leave.Leave, len(leaves))
	copy(records, leaves)
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID.String() < records[j].ID.String()
	})

	byName := make(map[string][]DayStatus)
	for _, rec := range records {
		if rec.Employee == nil {
			continue
		}
		name := normalizeName(rec.Employee.FullName, opts.NameSuffixTag)
		if name == "" {
			continue
		}

		days, ok := byName[name]
		if !ok {
			days = make([]DayStatus, len(win.Days))
		}

		label := StatusLeave
		if rec.Category == opts.RemoteCategory {
			label = StatusRemote
		}

		from := workday.DateOnly(rec.StartDate)
		to := workday.DateOnly(rec.EndDate)
		for i, day := range win.Days {
			if day.Date.Before(from) || day.Date.After(to) {
				continue
			}

			if rec.HalfDay {
				if rec.HalfDayPeriod == leave.PeriodAfternoon {
					days[i].Afternoon = label
				} else {
					days[i].Morning = label
				}
			} else {
				days[i].Morning = label
				days[i].Afternoon = label
			}
		}

		byName[name] = days
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	sched := Schedule{}
	for _, name := range names {
		sched.Employees = append(sched.Employees, EmployeeDays{Name: name, Days: byName[name]})
	}
	return sched
}

func normalizeName(fullName, suffixTag string) string {
	if suffixTag != "" {
		fullName = strings.ReplaceAll(fullName, suffixTag, "")
	}
	return strings.TrimSpace(fullName)
}
