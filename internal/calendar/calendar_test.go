package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, "2024-03-15", d.String())
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-13-01", "03/15/2024", "2024-02-30", "tomorrow", "0001-01-01", "0999-12-31"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestParse_MinYear(t *testing.T) {
	d, err := Parse("1000-01-01")
	require.NoError(t, err)
	assert.False(t, d.IsZero())

	_, err = Parse("0001-01-01")
	assert.ErrorIs(t, err, ErrInvalidDate, "year 1 reads as the unset date")
}

func TestLabel(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{New(2024, time.March, 1), "3/1/2024"},
		{New(2024, time.December, 25), "12/25/2024"},
		{Date{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.date.Label())
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{New(2024, 3, 1), New(2024, 3, 1), 0},
		{New(2024, 3, 1), New(2024, 3, 15), 14},
		{New(2024, 3, 15), New(2024, 3, 1), 14},
		{New(2024, 2, 28), New(2024, 3, 1), 2}, // leap year
		{New(2023, 2, 28), New(2023, 3, 1), 1},
		{New(2024, 1, 1), New(2025, 1, 1), 366},
		// Spans the US spring-forward weekend; civil dates carry no DST hour.
		{New(2024, 3, 9), New(2024, 3, 11), 2},
		// Longer than the ~292 years a time.Duration can hold.
		{New(1700, 1, 1), New(2024, 3, 15), 118412},
		{New(2024, 1, 1), New(9999, 12, 31), 2913173},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b), "%s..%s", tt.a, tt.b)
	}
}

func TestAddDays(t *testing.T) {
	d := New(2024, 1, 31)
	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
	assert.Equal(t, "2024-01-30", d.AddDays(-1).String())
	assert.Equal(t, "2024-03-01", New(2024, 2, 29).AddDays(1).String())
}

func TestRange(t *testing.T) {
	dates := Range(New(2024, 3, 30), 3)
	require.Len(t, dates, 3)
	assert.Equal(t, "2024-03-31", dates[0].String())
	assert.Equal(t, "2024-04-01", dates[1].String())
	assert.Equal(t, "2024-04-02", dates[2].String())

	assert.Nil(t, Range(New(2024, 3, 30), 0))
}

func TestCompare(t *testing.T) {
	a := New(2024, 3, 1)
	b := New(2024, 3, 2)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(New(2024, 3, 1)))
	assert.False(t, a.Equal(b))
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	d := FromTime(time.Date(2024, 3, 15, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-03-15", d.String())
}

func TestTextEncoding(t *testing.T) {
	type doc struct {
		Due Date `json:"due" yaml:"due"`
	}

	var j doc
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-03-25"}`), &j))
	assert.Equal(t, 25, j.Due.Day())

	out, err := json.Marshal(j)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-03-25"}`, string(out))

	var y doc
	require.NoError(t, yaml.Unmarshal([]byte("due: 2024-03-25\n"), &y))
	assert.True(t, y.Due.Equal(j.Due))

	var empty doc
	require.NoError(t, json.Unmarshal([]byte(`{"due":""}`), &empty))
	assert.True(t, empty.Due.IsZero())

	var bad doc
	err = json.Unmarshal([]byte(`{"due":"2024-02-30"}`), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
