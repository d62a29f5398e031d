package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/model"
)

// Table is a bordered text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Right   []bool // right-align column i
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	border := func(left, mid, right string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	line := func(cells []string, style func(i int, cell string) lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			format := " %-*s "
			if i < len(t.Right) && t.Right[i] {
				format = " %*s "
			}
			b.WriteString(style(i, cell).Render(fmt.Sprintf(format, widths[i], cell)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(border("╭", "┬", "╮"))
	b.WriteString(line(t.Headers, func(int, string) lipgloss.Style { return headerStyle }))
	b.WriteString(border("├", "┼", "┤"))
	for _, row := range t.Rows {
		b.WriteString(line(row, cellStyle))
	}
	b.WriteString(border("╰", "┴", "╯"))
	return b.String()
}

// cellStyle colors signed amounts; other cells use the plain value style.
func cellStyle(_ int, cell string) lipgloss.Style {
	switch {
	case strings.HasPrefix(cell, "-"):
		return lossStyle
	case strings.HasPrefix(cell, "+"):
		return gainStyle
	default:
		return valueStyle
	}
}

// ProjectionTable lays out one row per day: date label, balance, and change
// from the previous day.
func ProjectionTable(title string, opening decimal.Decimal, p model.Projection) Table {
	t := Table{
		Title:   title,
		Headers: []string{"Date", "Balance", "Change"},
		Right:   []bool{false, true, true},
		Rows:    make([][]string, 0, p.Len()),
	}
	prev := opening
	for _, pt := range p.Points {
		t.Rows = append(t.Rows, []string{
			pt.Date.Label(),
			FormatMoney(pt.Balance),
			FormatChange(pt.Balance.Sub(prev)),
		})
		prev = pt.Balance
	}
	return t
}
