package report_test

import (
	"strings"
	"testing"

	"leave-report/internal/leave"
	"leave-report/internal/report"

	"github.com/stretchr/testify/assert"
)

func TestBuildDocument(t *testing.T) {
	win := testWindow()

	t.Run("success empty schedule renders notice instead of table", func(t *testing.T) {
		doc := report.BuildDocument(report.Schedule{}, win)

		assert.Equal(t, "📅 Praca zdalna i nieobecności zaplanowane na najbliższy tydzień (02.09.2026 - 09.09.2026)", doc.Subject)
		assert.Equal(t, "<h3>📅 Brak zaplanowanych nieobecności i pracy zdalnej na najbliższy tydzień (02.09.2026 - 09.09.2026)</h3>", doc.HTML)
		assert.NotContains(t, doc.HTML, "<table")
	})

	t.Run("success subject carries window bounds", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Jan Kowalski", "Remote work", date(2), date(9), date(1)),
		}
		sched := report.Aggregate(win, records, aggOpts)

		doc := report.BuildDocument(sched, win)

		assert.Contains(t, doc.Subject, "(02.09.2026 - 09.09.2026)")
		assert.Contains(t, doc.HTML, "<table")
	})

	t.Run("success rendering is deterministic", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Anna Nowak", "Annual leave", date(3), date(4), date(1)),
			newLeave("Jan Kowalski", "Remote work", date(2), date(9), date(1)),
		}
		sched := report.Aggregate(win, records, aggOpts)

		first := report.BuildDocument(sched, win)
		second := report.BuildDocument(sched, win)

		assert.Equal(t, first, second)
	})
}

func TestBuildTable(t *testing.T) {
	win := testWindow()

	t.Run("success layout has headers, one row per employee and the legend", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Anna Nowak", "Annual leave", date(2), date(2), date(1)),
			newLeave("Jan Kowalski", "Remote work", date(2), date(9), date(1)),
		}
		sched := report.Aggregate(win, records, aggOpts)

		tbl := report.BuildTable(sched, win)

		// 2 header rows, 2 employee rows, 10 legend rows.
		assert.Len(t, tbl.Rows, 14)

		nameRow := tbl.Rows[0]
		assert.Len(t, nameRow.Cells, 1+len(win.Days))
		assert.Equal(t, "Pracownik", nameRow.Cells[0].Text)
		assert.Equal(t, 2, nameRow.Cells[0].RowSpan)
		assert.Equal(t, report.CellHeaderDayToday, nameRow.Cells[1].Kind)
		assert.Equal(t, report.CellHeaderDay, nameRow.Cells[2].Kind)

		dateRow := tbl.Rows[1]
		assert.Equal(t, "02.09.2026", dateRow.Cells[0].Text)
		assert.Equal(t, report.CellHeaderToday, dateRow.Cells[0].Kind)
		assert.Equal(t, report.CellHeader, dateRow.Cells[1].Kind)

		// Employee row: name cell plus two half-day cells per business day.
		empRow := tbl.Rows[2]
		assert.Equal(t, "Anna Nowak", empRow.Cells[0].Text)
		assert.Len(t, empRow.Cells, 1+2*len(win.Days))
	})

	t.Run("success half day sides and tints map onto cell kinds", func(t *testing.T) {
		rec := newLeave("Anna Nowak", "Annual leave", date(2), date(2), date(1))
		rec.HalfDay = true
		rec.HalfDayPeriod = leave.PeriodMorning
		sched := report.Aggregate(win, []leave.Leave{rec}, aggOpts)

		tbl := report.BuildTable(sched, win)

		row := tbl.Rows[2]
		assert.Equal(t, report.CellHalfLeave, row.Cells[1].Kind)
		assert.Equal(t, report.SideMorning, row.Cells[1].Side)
		assert.Equal(t, report.CellHalfEmpty, row.Cells[2].Kind)
		assert.Equal(t, report.SideAfternoon, row.Cells[2].Side)
	})
}

func TestRenderHTML(t *testing.T) {
	win := testWindow()

	t.Run("success markup carries inline styles and tints", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Jan Kowalski", "Remote work", date(2), date(2), date(1)),
			newLeave("Anna Nowak", "Annual leave", date(3), date(3), date(1)),
		}
		sched := report.Aggregate(win, records, aggOpts)

		html := report.RenderHTML(report.BuildTable(sched, win))

		assert.True(t, strings.HasPrefix(html, `<table style="border-collapse: collapse; text-align: center;">`))
		assert.Contains(t, html, `rowspan="2"`)
		assert.Contains(t, html, "background-color: #32d918")
		assert.Contains(t, html, "background-color: #d3d3d3")
		assert.Contains(t, html, "background-color: #c34a4e; color: white;")
		assert.Contains(t, html, "background-color: #67acd3; color: black;")
		assert.Contains(t, html, "border-right: none;")
		assert.Contains(t, html, "border-left: none;")
		assert.Contains(t, html, "<h2>Legenda:</h2>")
		assert.Contains(t, html, "Nieobecność przez cały dzień")
		assert.Contains(t, html, "Praca zdalna przez cały dzień")
		assert.Contains(t, html, "Nieobecność w drugiej połowie dnia")
		assert.Contains(t, html, "Nieobecność w pierwszej połowie dnia, praca zdalna w drugiej")
	})

	t.Run("success employee names appear in sorted order", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Zofia Zielińska", "Annual leave", date(2), date(2), date(1)),
			newLeave("Anna Nowak", "Annual leave", date(2), date(2), date(1)),
		}
		sched := report.Aggregate(win, records, aggOpts)

		html := report.RenderHTML(report.BuildTable(sched, win))

		assert.Less(t, strings.Index(html, "Anna Nowak"), strings.Index(html, "Zofia Zielińska"))
	})

	t.Run("success cell text is escaped", func(t *testing.T) {
		records := []leave.Leave{
			newLeave("Jan <script> Kowalski", "Annual leave", date(2), date(2), date(1)),
		}
		sched := report.Aggregate(win, records, aggOpts)

		html := report.RenderHTML(report.BuildTable(sched, win))

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "Jan &lt;script&gt; Kowalski")
	})
}
