package report

import (
	"fmt"
	"html"
	"strings"

	"leave-report/internal/workday"
)

// Document is the rendered report, ready for email delivery.
type Document struct {
	Subject string
	HTML    string
}

const (
	colorHeader = "#d3d3d3"
	colorToday  = "#32d918"
	colorLeave  = "#c34a4e"
	colorRemote = "#67acd3"
)

// BuildDocument renders the schedule into the email subject and HTML body.
// An empty schedule yields a short notice instead of a table. The output is
// a pure function of its input.
func BuildDocument(sched Schedule, win workday.Window) Document {
	subject := fmt.Sprintf(
		"📅 Praca zdalna i nieobecności zaplanowane na najbliższy tydzień (%s - %s)",
		win.StartLabel(), win.EndLabel(),
	)

	if sched.Empty() {
		return Document{
			Subject: subject,
			HTML: fmt.Sprintf(
				"<h3>📅 Brak zaplanowanych nieobecności i pracy zdalnej na najbliższy tydzień (%s - %s)</h3>",
				win.StartLabel(), win.EndLabel(),
			),
		}
	}

	return Document{Subject: subject, HTML: RenderHTML(BuildTable(sched, win))}
}

// RenderHTML serializes a table model into email-safe inline-styled markup.
func RenderHTML(t Table) string {
	var b strings.Builder
	b.WriteString(`<table style="border-collapse: collapse; text-align: center;">`)
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row.Cells {
			writeCell(&b, cell)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func writeCell(b *strings.Builder, c Cell) {
	tag := "td"
	if c.Header {
		tag = "th"
	}

	b.WriteString("<")
	b.WriteString(tag)
	if c.ColSpan > 1 {
		fmt.Fprintf(b, ` colspan="%d"`, c.ColSpan)
	}
	if c.RowSpan > 1 {
		fmt.Fprintf(b, ` rowspan="%d"`, c.RowSpan)
	}
	if style := cellStyle(c); style != "" {
		fmt.Fprintf(b, ` style="%s"`, style)
	}
	b.WriteString(">")

	if c.Kind == CellLegendTitle {
		b.WriteString("<h2>")
		b.WriteString(html.EscapeString(c.Text))
		b.WriteString("</h2>")
	} else {
		b.WriteString(html.EscapeString(c.Text))
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func cellStyle(c Cell) string {
	switch c.Kind {
	case CellHeader:
		return "background-color: " + colorHeader + "; border: 1px solid black; padding: 5px;"
	case CellHeaderToday:
		return "background-color: " + colorToday + "; border: 1px solid black; padding: 5px;"
	case CellHeaderDay:
		return "min-width: 110px; width: 110px; background-color: " + colorHeader + "; border: 1px solid black; padding: 5px;"
	case CellHeaderDayToday:
		return "min-width: 110px; width: 110px; background-color: " + colorToday + "; border: 1px solid black; padding: 5px;"
	case CellName:
		return "height: 30px; min-height: 30px; background-color: " + colorHeader + "; border: 1px solid black; padding: 5px; text-align: left;"
	case CellHalfEmpty, CellHalfLeave, CellHalfRemote:
		return halfStyle(c)
	case CellLegendTitle, CellLegendLabel:
		return "text-align: left; padding: 10px;"
	case CellLegendLeave:
		return "background-color: " + colorLeave + ";"
	case CellLegendRemote:
		return "background-color: " + colorRemote + ";"
	case CellSpacerTall:
		return "height: 40px;"
	case CellSpacerThin:
		return "height: 1px;"
	default:
		return ""
	}
}

func halfStyle(c Cell) string {
	style := "border: 1px solid black;"
	switch c.Side {
	case SideMorning:
		style += " border-right: none;"
	case SideAfternoon:
		style += " border-left: none;"
	}

	switch c.Kind {
	case CellHalfLeave:
		style += " background-color: " + colorLeave + "; color: white;"
	case CellHalfRemote:
		style += " background-color: " + colorRemote + "; color: black;"
	}
	return style
}
