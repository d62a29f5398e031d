// Package export writes projections in machine-readable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
)

// Header is the CSV header for projection exports.
const Header = "date,label,balance,change"

const (
	numFields  = 4
	colDate    = 0
	colLabel   = 1
	colBalance = 2
	colChange  = 3
)

// WriteCSV writes a projection with a header row. change is the difference
// from the previous day, starting from opening.
func WriteCSV(w io.Writer, opening decimal.Decimal, p model.Projection) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	prev := opening
	for i, pt := range p.Points {
		if err := cw.Write(MarshalPoint(pt, pt.Balance.Sub(prev))); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
		prev = pt.Balance
	}
	return cw.Error()
}

// ReadCSV reads a projection written by WriteCSV. The change and label
// columns are derived data and are ignored.
func ReadCSV(r io.Reader) (model.Projection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return model.Projection{}, fmt.Errorf("reading projection CSV: %w", err)
	}

	if len(records) <= 1 {
		return model.Projection{}, nil
	}

	// Skip header row.
	points := make([]model.Point, 0, len(records)-1)
	for i, rec := range records[1:] {
		pt, err := UnmarshalPoint(rec)
		if err != nil {
			return model.Projection{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		points = append(points, pt)
	}
	return model.Projection{Points: points}, nil
}

// MarshalPoint converts a Point and its daily change to a CSV row.
func MarshalPoint(pt model.Point, change decimal.Decimal) []string {
	row := make([]string, numFields)
	row[colDate] = pt.Date.String()
	row[colLabel] = pt.Date.Label()
	row[colBalance] = pt.Balance.StringFixed(2)
	row[colChange] = change.StringFixed(2)
	return row
}

// UnmarshalPoint converts a CSV row to a Point.
func UnmarshalPoint(record []string) (model.Point, error) {
	if len(record) != numFields {
		return model.Point{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := calendar.Parse(record[colDate])
	if err != nil {
		return model.Point{}, fmt.Errorf("parsing date: %w", err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Point{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Point{Date: date, Balance: balance}, nil
}
