// Package calendar provides a civil date type and the whole-day arithmetic
// used by balance projections.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InputLayout is the calendar-input format dates arrive in ("2024-03-15").
const InputLayout = "2006-01-02"

// LabelLayout is the month/day/year format used for display labels only.
const LabelLayout = "1/2/2006"

const secondsPerDay = 24 * 60 * 60

// MinYear is the earliest year Parse accepts. Year 1 would collide with the
// zero Date, which means "not set".
const MinYear = 1000

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day with no time-of-day or zone. The zero Date means
// "not set".
type Date struct {
	t time.Time // always midnight UTC
}

// New returns the date for year, month, day. Out-of-range values normalize
// the way time.Date does (April 31 becomes May 1).
func New(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse parses a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(InputLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	if t.Year() < MinYear {
		return Date{}, fmt.Errorf("%w %q: year before %d", ErrInvalidDate, s, MinYear)
	}
	return Date{t: t}, nil
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Day returns the day of the month (1-31).
func (d Date) Day() int { return d.t.Day() }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.t.Month() }

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

// AddDays returns d shifted by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Equal reports whether d and o are the same calendar day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// String formats d as "YYYY-MM-DD". The zero Date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(InputLayout)
}

// Label formats d as "M/D/YYYY" for chart axes and tables.
func (d Date) Label() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(LabelLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input leaves the
// zero Date so that "required" checks can report it by field name.
func (d *Date) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween returns the absolute number of whole days between a and b.
// It works on Unix seconds so ranges longer than a time.Duration still count.
func DaysBetween(a, b Date) int {
	diff := b.t.Unix() - a.t.Unix()
	if diff < 0 {
		diff = -diff
	}
	return int(diff / secondsPerDay)
}

// Range returns count consecutive dates beginning the day after start.
func Range(start Date, count int) []Date {
	if count <= 0 {
		return nil
	}
	dates := make([]Date, count)
	cur := start
	for i := range dates {
		cur = cur.AddDays(1)
		dates[i] = cur
	}
	return dates
}
