package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
)

// SeriesName labels the single balance series.
const SeriesName = "Primary Account"

// Report is the JSON form of a projection.
type Report struct {
	Title   string        `json:"title,omitempty"`
	Series  string        `json:"series"`
	Points  []ReportPoint `json:"points"`
	Summary Summary       `json:"summary"`
}

// ReportPoint is one day of a Report.
type ReportPoint struct {
	Date    calendar.Date   `json:"date"`
	Label   string          `json:"label"`
	Balance decimal.Decimal `json:"balance"`
}

// Summary holds headline numbers for a projection.
type Summary struct {
	Days          int             `json:"days"`
	Opening       decimal.Decimal `json:"opening"`
	Final         decimal.Decimal `json:"final"`
	Min           decimal.Decimal `json:"min"`
	MinDate       calendar.Date   `json:"min_date"`
	FirstNegative *calendar.Date  `json:"first_negative,omitempty"`
}

// NewReport builds a Report from a projection and its opening balance.
func NewReport(title string, opening decimal.Decimal, p model.Projection) Report {
	r := Report{
		Title:  title,
		Series: SeriesName,
		Points: make([]ReportPoint, len(p.Points)),
		Summary: Summary{
			Days:    p.Len(),
			Opening: opening,
			Final:   p.Final(),
		},
	}
	for i, pt := range p.Points {
		r.Points[i] = ReportPoint{Date: pt.Date, Label: pt.Date.Label(), Balance: pt.Balance}
		if r.Summary.FirstNegative == nil && pt.Balance.IsNegative() {
			d := pt.Date
			r.Summary.FirstNegative = &d
		}
	}
	if low, ok := p.Min(); ok {
		r.Summary.Min = low.Balance
		r.Summary.MinDate = low.Date
	}
	return r
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
