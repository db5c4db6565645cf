package report_test

import (
	"testing"
	"time"

	"leave-report/internal/employee"
	"leave-report/internal/leave"
	"leave-report/internal/report"
	"leave-report/internal/workday"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var dayNames = []string{
	"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota", "Niedziela",
}

var aggOpts = report.AggregateOptions{
	RemoteCategory: "Remote work",
	NameSuffixTag:  "[ERP]",
}

// testWindow starts Wednesday 2026-09-02 and spans 8 calendar days, which
// leaves 6 business days.
func testWindow() workday.Window {
	return workday.BuildWindow(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 8, dayNames)
}

func date(day int) time.Time {
	return time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC)
}

func newLeave(name, category string, from, to time.Time, createdAt time.Time) leave.Leave {
	return leave.Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Employee:   &employee.Employee{ID: uuid.New(), FullName: name},
		Category:   category,
		StartDate:  from,
		EndDate:    to,
		Status:     leave.StatusApproved,
		CreatedAt:  createdAt,
	}
}

func TestAggregate(t *testing.T) {
	win := testWindow()

	t.Run("success full window remote record fills both halves", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Jan Kowalski [ERP]", "Remote work", date(2), date(9), date(1)),
		}

		sched := report.Aggregate(win, records, aggOpts)

		assert.Len(t, sched.Employees, 1)
		assert.Equal(t, "Jan Kowalski", sched.Employees[0].Name)
		assert.Len(t, sched.Employees[0].Days, 6)
		for _, day := range sched.Employees[0].Days {
			assert.Equal(t, report.StatusRemote, day.Morning)
			assert.Equal(t, report.StatusRemote, day.Afternoon)
		}
	})

	t.Run("success afternoon half day touches only afternoon", func(t *testing.T) {
		rec := newLeave("Anna Nowak", "Annual leave", date(3), date(3), date(1))
		rec.HalfDay = true
		rec.HalfDayPeriod = leave.PeriodAfternoon

		sched := report.Aggregate(win, []leave.Leave{rec}, aggOpts)

		assert.Len(t, sched.Employees, 1)
		days := sched.Employees[0].Days
		// 2026-09-03 is the second business day of the window.
		assert.Equal(t, report.StatusNone, days[1].Morning)
		assert.Equal(t, report.StatusLeave, days[1].Afternoon)
		for i, day := range days {
			if i == 1 {
				continue
			}
			assert.Equal(t, report.StatusNone, day.Morning)
			assert.Equal(t, report.StatusNone, day.Afternoon)
		}
	})

	t.Run("success morning half day touches only morning", func(t *testing.T) {
		rec := newLeave("Anna Nowak", "Annual leave", date(4), date(4), date(1))
		rec.HalfDay = true
		rec.HalfDayPeriod = leave.PeriodMorning

		sched := report.Aggregate(win, []leave.Leave{rec}, aggOpts)

		days := sched.Employees[0].Days
		assert.Equal(t, report.StatusLeave, days[2].Morning)
		assert.Equal(t, report.StatusNone, days[2].Afternoon)
	})

	t.Run("success unrecognized category counts as leave", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Piotr Wiśniewski", "", date(2), date(2), date(1)),
			newLeave("Piotr Wiśniewski", "Sabbatical", date(3), date(3), date(1)),
		}

		sched := report.Aggregate(win, records, aggOpts)

		days := sched.Employees[0].Days
		assert.Equal(t, report.StatusLeave, days[0].Morning)
		assert.Equal(t, report.StatusLeave, days[0].Afternoon)
		assert.Equal(t, report.StatusLeave, days[1].Morning)
	})

	t.Run("success employees sorted by name", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Zofia Zielińska", "Annual leave", date(2), date(2), date(1)),
			newLeave("Anna Nowak", "Annual leave", date(2), date(2), date(1)),
			newLeave("Jan Kowalski [ERP]", "Annual leave", date(2), date(2), date(1)),
		}

		sched := report.Aggregate(win, records, aggOpts)

		assert.Len(t, sched.Employees, 3)
		assert.Equal(t, "Anna Nowak", sched.Employees[0].Name)
		assert.Equal(t, "Jan Kowalski", sched.Employees[1].Name)
		assert.Equal(t, "Zofia Zielińska", sched.Employees[2].Name)
	})

	t.Run("success newer record wins regardless of input order", func(t *testing.T) {
		older := newLeave("Jan Kowalski", "Annual leave", date(2), date(9), time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC))
		newer := newLeave("Jan Kowalski", "Remote work", date(2), date(9), time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))

		forward := report.Aggregate(win, []leave.Leave{older, newer}, aggOpts)
		reversed := report.Aggregate(win, []leave.Leave{newer, older}, aggOpts)

		assert.Equal(t, forward, reversed)
		for _, day := range forward.Employees[0].Days {
			assert.Equal(t, report.StatusRemote, day.Morning)
			assert.Equal(t, report.StatusRemote, day.Afternoon)
		}
	})

	t.Run("success weekend only record leaves an all-empty row", func(t *testing.T) {
		// 2026-09-05/06 fall inside the calendar window but are a weekend.
		records := []leave.Leave{
			newLeave("Anna Nowak", "Annual leave", date(5), date(6), date(1)),
		}

		sched := report.Aggregate(win, records, aggOpts)

		assert.Len(t, sched.Employees, 1)
		for _, day := range sched.Employees[0].Days {
			assert.Equal(t, report.StatusNone, day.Morning)
			assert.Equal(t, report.StatusNone, day.Afternoon)
		}
	})

	t.Run("success record without employee is skipped", func(t *testing.T) {
		rec := newLeave("Anna Nowak", "Annual leave", date(2), date(2), date(1))
		rec.Employee = nil

		sched := report.Aggregate(win, []leave.Leave{rec}, aggOpts)

		assert.True(t, sched.Empty())
	})

	t.Run("success empty input yields empty schedule", func(t *testing.T) {
		sched := report.Aggregate(win, nil, aggOpts)

		assert.True(t, sched.Empty())
		assert.Empty(t, sched.Employees)
	})
}
