package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runway-dev/runway/internal/model"
)

const (
	defaultWidth  = 72
	defaultHeight = 12
	minWidth      = 20
	minHeight     = 4
)

// ChartOptions sizes a line chart. Zero values pick defaults.
type ChartOptions struct {
	Title  string
	Width  int // total columns including the y-axis
	Height int // plot rows, excluding the x-axis and labels
}

// LineChart renders the balance series of p as a text line chart. When there
// are more days than plot columns, each column shows the lowest balance of the
// days it covers.
func LineChart(p model.Projection, opts ChartOptions) string {
	if p.Len() == 0 {
		return ""
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	width = max(width, minWidth)
	height = max(height, minHeight)

	values := p.Balances()
	labels := p.Labels()

	// The y-axis is sized for the full range, which bounds every bucket.
	lo, hi := bounds(values)
	yLabelW := max(len(axisLabel(lo)), len(axisLabel(hi))) + 1
	plotW := max(width-yLabelW-1, 2)

	cols, colLabels := bucket(values, labels, plotW)
	lo, hi = bounds(cols)
	if lo == hi {
		// A flat series sits mid-chart.
		lo, hi = lo-1, hi+1
	}
	rowOf := func(v float64) int {
		return int(math.Round((v - lo) / (hi - lo) * float64(height-1)))
	}

	// grid[0] is the bottom row.
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", len(cols)))
	}
	zeroRow := -1
	if lo < 0 && hi > 0 {
		zeroRow = rowOf(0)
		for c := range grid[zeroRow] {
			grid[zeroRow][c] = '┈'
		}
	}
	for c, v := range cols {
		r := rowOf(v)
		if c > 0 {
			prev := rowOf(cols[c-1])
			for between := min(prev, r) + 1; between < max(prev, r); between++ {
				grid[between][c] = '│'
			}
		}
		grid[r][c] = '●'
	}

	tickLabels := map[int]string{
		height - 1: axisLabel(hi),
		0:          axisLabel(lo),
	}
	if height >= 6 {
		tickLabels[(height-1)/2] = axisLabel(lo + (hi-lo)*float64((height-1)/2)/float64(height-1))
	}

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(headerStyle.Render(opts.Title))
		b.WriteString("\n")
	}

	for r := height - 1; r >= 0; r-- {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[r])))
		b.WriteString(dimStyle.Render("│"))
		b.WriteString(rowStyle(r, zeroRow).Render(string(grid[r])))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", yLabelW))
	b.WriteString(dimStyle.Render("└" + strings.Repeat("─", len(cols))))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	labelW := max(len(cols), len(colLabels[0])+len(colLabels[len(colLabels)-1])+1)
	b.WriteString(mutedStyle.Render(xAxisLabels(colLabels, labelW)))
	b.WriteString("\n")

	return b.String()
}

// rowStyle colors rows below the zero line as losses.
func rowStyle(row, zeroRow int) lipgloss.Style {
	if zeroRow >= 0 && row < zeroRow {
		return lossStyle
	}
	return gainStyle
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// bucket reduces values to at most n columns, keeping each bucket's minimum
// and first label.
func bucket(values []float64, labels []string, n int) ([]float64, []string) {
	if len(values) <= n {
		return values, labels
	}
	cols := make([]float64, n)
	colLabels := make([]string, n)
	for c := range cols {
		from := c * len(values) / n
		to := (c + 1) * len(values) / n
		low := values[from]
		for _, v := range values[from+1 : to] {
			low = math.Min(low, v)
		}
		cols[c] = low
		colLabels[c] = labels[from]
	}
	return cols, colLabels
}

// xAxisLabels places the first and last labels, plus the middle one when
// there is room.
func xAxisLabels(labels []string, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	place := func(pos int, s string) {
		for i, r := range s {
			if pos+i >= 0 && pos+i < width {
				buf[pos+i] = r
			}
		}
	}

	first := labels[0]
	last := labels[len(labels)-1]
	place(0, first)
	if len(labels) > 1 && width >= len(first)+len(last)+1 {
		place(width-len(last), last)
	}
	if mid := labels[len(labels)/2]; len(labels) > 2 && width >= len(first)+len(mid)+len(last)+4 {
		place(width/2-len(mid)/2, mid)
	}
	return strings.TrimRight(string(buf), " ")
}
