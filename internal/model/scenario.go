package model

import (
	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/calendar"
)

// Scenario is the date range and opening balance of a projection.
type Scenario struct {
	StartDate       calendar.Date
	EndDate         calendar.Date
	StartingBalance decimal.Decimal
}

// Point is the projected closing balance for one day.
type Point struct {
	Date    calendar.Date
	Balance decimal.Decimal
}

// Projection is an ordered day-by-day balance series.
type Projection struct {
	Points []Point
}

// Len returns the number of points.
func (p Projection) Len() int { return len(p.Points) }

// Final returns the last projected balance, or zero for an empty projection.
func (p Projection) Final() decimal.Decimal {
	if len(p.Points) == 0 {
		return decimal.Zero
	}
	return p.Points[len(p.Points)-1].Balance
}

// Min returns the lowest point. The earliest day wins ties. ok is false for an
// empty projection.
func (p Projection) Min() (pt Point, ok bool) {
	if len(p.Points) == 0 {
		return Point{}, false
	}
	pt = p.Points[0]
	for _, cur := range p.Points[1:] {
		if cur.Balance.LessThan(pt.Balance) {
			pt = cur
		}
	}
	return pt, true
}

// Labels returns the display label of each point.
func (p Projection) Labels() []string {
	labels := make([]string, len(p.Points))
	for i, pt := range p.Points {
		labels[i] = pt.Date.Label()
	}
	return labels
}

// Balances returns each balance as a float64, for plotting.
func (p Projection) Balances() []float64 {
	values := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		values[i] = pt.Balance.InexactFloat64()
	}
	return values
}
