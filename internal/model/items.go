package model

import (
	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/calendar"
)

// Frequency is the cadence of an income item.
type Frequency string

const (
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// IntervalDays returns the number of days between deposits: 14 for biweekly,
// 28 for monthly (four weeks, not a calendar month). Unknown values return 0.
func (f Frequency) IntervalDays() int {
	switch f {
	case FrequencyBiweekly:
		return 14
	case FrequencyMonthly:
		return 28
	default:
		return 0
	}
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool { return f.IntervalDays() > 0 }

// Direction says whether a one-time item moves money in or out.
type Direction string

const (
	DirectionExpense Direction = "expense"
	DirectionIncome  Direction = "income"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionExpense || d == DirectionIncome
}

// BudgetItem is a recurring monthly bill. Only the day-of-month of DueDate
// matters; it is charged on that day in every month of the projection.
type BudgetItem struct {
	Title   string          `yaml:"title" json:"title"`
	Payment decimal.Decimal `yaml:"payment" json:"payment"`
	DueDate calendar.Date   `yaml:"due_date" json:"due_date"`
}

// DueDay returns the day of the month the bill is due.
func (b BudgetItem) DueDay() int { return b.DueDate.Day() }

// IncomeItem is a recurring deposit on a fixed day interval measured from
// ReferenceDate (usually the most recent payday).
type IncomeItem struct {
	Title         string          `yaml:"title" json:"title"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency     Frequency       `yaml:"frequency" json:"frequency"`
	ReferenceDate calendar.Date   `yaml:"reference_date" json:"reference_date"`
}

// OneTimeItem is a single dated inflow or outflow.
type OneTimeItem struct {
	Title     string          `yaml:"title" json:"title"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Direction Direction       `yaml:"direction" json:"direction"`
	DueDate   calendar.Date   `yaml:"due_date" json:"due_date"`
}

// Signed returns Amount for income and -Amount for expenses.
func (o OneTimeItem) Signed() decimal.Decimal {
	if o.Direction == DirectionIncome {
		return o.Amount
	}
	return o.Amount.Neg()
}

// AggregateExpense is a lump total (e.g. a month of groceries) spread into
// equal installments IntervalDays apart.
type AggregateExpense struct {
	Title        string          `yaml:"title" json:"title"`
	TotalAmount  decimal.Decimal `yaml:"total_amount" json:"total_amount"`
	IntervalDays int             `yaml:"interval_days" json:"interval_days"`
}

var thirty = decimal.NewFromInt(30)

// Installments returns round(30 / IntervalDays), rounding half away from zero.
// It returns 0 when IntervalDays is not positive.
func (a AggregateExpense) Installments() int64 {
	if a.IntervalDays <= 0 {
		return 0
	}
	return thirty.Div(decimal.NewFromInt(int64(a.IntervalDays))).Round(0).IntPart()
}

// Installment returns round(TotalAmount / Installments()) to a whole unit,
// rounding half away from zero. It returns zero when there are no
// installments.
func (a AggregateExpense) Installment() decimal.Decimal {
	n := a.Installments()
	if n == 0 {
		return decimal.Zero
	}
	return a.TotalAmount.Div(decimal.NewFromInt(n)).Round(0)
}
