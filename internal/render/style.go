// Package render draws projections for the terminal.
package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Colors (Flexoki Dark).
var (
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	gainStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	lossStyle   = lipgloss.NewStyle().Foreground(ColorRed)
)

// FormatMoney formats an amount with thousands separators and two decimals,
// e.g. 1234.5 -> "1,234.50", -25 -> "-25.00".
func FormatMoney(d decimal.Decimal) string {
	f := d.Round(2).InexactFloat64()
	if f == 0 {
		f = 0 // drop negative zero
	}
	return humanize.FormatFloat("#,###.##", f)
}

// FormatChange formats a daily change with an explicit sign, or "" for zero.
func FormatChange(d decimal.Decimal) string {
	switch {
	case d.IsZero():
		return ""
	case d.IsPositive():
		return "+" + FormatMoney(d)
	default:
		return FormatMoney(d)
	}
}

// axisLabel formats a y-axis value compactly: 950, 12.5k, -3k, 1.2M.
func axisLabel(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		return sign + trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return sign + trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	default:
		return sign + fmt.Sprintf("%.0f", math.Round(v))
	}
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
