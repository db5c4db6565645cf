package report

import "leave-report/internal/workday"

// The table model is a structured intermediate form of the report: the
// builder decides layout and cell roles, the HTML serializer decides markup.

// CellKind selects the visual role of a cell.
type CellKind int

const (
	CellPlain CellKind = iota
	CellHeader
	CellHeaderDay
	CellHeaderDayToday
	CellHeaderToday
	CellName
	CellHalfEmpty
	CellHalfLeave
	CellHalfRemote
	CellLegendTitle
	CellLegendLabel
	CellLegendLeave
	CellLegendRemote
	CellSpacerTall
	CellSpacerThin
)

// Side marks which half of a day a body cell covers, so the serializer can
// drop the inner border between the two halves.
type Side int

const (
	SideNone Side = iota
	SideMorning
	SideAfternoon
)

type Cell struct {
	Text    string
	ColSpan int
	RowSpan int
	Kind    CellKind
	Side    Side
	Header  bool
}

type Row struct {
	Cells []Cell
}

type Table struct {
	Rows []Row
}

// BuildTable lays out the report table: two header rows (weekday names over
// dates, two columns per day, first day highlighted), one row per employee
// with a tinted cell per half-day, and the fixed legend block.
func BuildTable(sched Schedule, win workday.Window) Table {
	t := Table{}

	nameRow := Row{Cells: []Cell{
		{Text: "Pracownik", RowSpan: 2, Kind: CellHeader, Header: true},
	}}
	dateRow := Row{}
	for i, day := range win.Days {
		nameKind, dateKind := CellHeaderDay, CellHeader
		if i == 0 {
			nameKind, dateKind = CellHeaderDayToday, CellHeaderToday
		}
		nameRow.Cells = append(nameRow.Cells, Cell{Text: day.Name, ColSpan: 2, Kind: nameKind, Header: true})
		dateRow.Cells = append(dateRow.Cells, Cell{Text: day.Label, ColSpan: 2, Kind: dateKind, Header: true})
	}
	t.Rows = append(t.Rows, nameRow, dateRow)

	for _, emp := range sched.Employees {
		row := Row{Cells: []Cell{{Text: emp.Name, Kind: CellName}}}
		for _, day := range emp.Days {
			row.Cells = append(row.Cells,
				Cell{Kind: halfKind(day.Morning), Side: SideMorning},
				Cell{Kind: halfKind(day.Afternoon), Side: SideAfternoon},
			)
		}
		t.Rows = append(t.Rows, row)
	}

	t.Rows = append(t.Rows, legendRows()...)
	return t
}

func halfKind(status HalfDayStatus) CellKind {
	switch status {
	case StatusLeave:
		return CellHalfLeave
	case StatusRemote:
		return CellHalfRemote
	default:
		return CellHalfEmpty
	}
}

// legendRows returns the fixed legend block: the four example patterns use
// the same two tints as the table body.
func legendRows() []Row {
	spacerTall := Row{Cells: []Cell{{ColSpan: 6, Kind: CellSpacerTall}}}
	spacerThin := Row{Cells: []Cell{{ColSpan: 6, Kind: CellSpacerThin}}}

	pattern := func(morning, afternoon CellKind, label string) Row {
		return Row{Cells: []Cell{
			{Kind: CellPlain},
			{Kind: morning},
			{Kind: afternoon},
			{Text: label, ColSpan: 6, Kind: CellLegendLabel},
		}}
	}

	return []Row{
		spacerTall,
		spacerTall,
		{Cells: []Cell{{Text: "Legenda:", ColSpan: 6, Kind: CellLegendTitle, Header: true}}},
		pattern(CellLegendLeave, CellLegendLeave, "Nieobecność przez cały dzień"),
		spacerThin,
		pattern(CellLegendRemote, CellLegendRemote, "Praca zdalna przez cały dzień"),
		spacerThin,
		pattern(CellPlain, CellLegendLeave, "Nieobecność w drugiej połowie dnia"),
		spacerThin,
		pattern(CellLegendLeave, CellLegendRemote, "Nieobecność w pierwszej połowie dnia, praca zdalna w drugiej"),
	}
}
