package projector

import (
	"fmt"
	"strings"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
)

// MaxIntervalDays is the longest aggregate interval that still rounds to at
// least one installment per 30 days.
const MaxIntervalDays = 60

// MaxRangeDays is the longest projection range accepted, about ten years.
const MaxRangeDays = 3660

// ValidationError describes a single problem with a scenario.
type ValidationError struct {
	Field   string `json:"field"` // e.g. "end_date", "budget_items[2].payment"
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// InvalidScenarioError is returned by Project when Validate finds problems.
type InvalidScenarioError struct {
	Problems []ValidationError
}

func (e *InvalidScenarioError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return "invalid scenario: " + strings.Join(msgs, "; ")
}

// Validate checks the preconditions of a projection and returns every problem
// found, in field order.
func Validate(in Input) []ValidationError {
	var errs []ValidationError
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Date range.
	sc := in.Scenario
	if sc.StartDate.IsZero() {
		add("start_date", "is required")
	}
	if sc.EndDate.IsZero() {
		add("end_date", "is required")
	}
	if !sc.StartDate.IsZero() && !sc.EndDate.IsZero() {
		if sc.EndDate.Before(sc.StartDate) {
			add("end_date", "%s is before start_date %s", sc.EndDate, sc.StartDate)
		} else if n := calendar.DaysBetween(sc.StartDate, sc.EndDate); n > MaxRangeDays {
			add("end_date", "range of %d days exceeds %d", n, MaxRangeDays)
		}
	}

	// Amounts are magnitudes; the item kind or direction gives the sign.

	for i, b := range in.Budget {
		field := fmt.Sprintf("budget_items[%d]", i)
		if b.DueDate.IsZero() {
			add(field+".due_date", "is required")
		}
		if b.Payment.IsNegative() {
			add(field+".payment", "must not be negative, got %s", b.Payment)
		}
	}

	for i, inc := range in.Income {
		field := fmt.Sprintf("income_items[%d]", i)
		if !inc.Frequency.Valid() {
			add(field+".frequency", "must be %q or %q, got %q", model.FrequencyBiweekly, model.FrequencyMonthly, inc.Frequency)
		}
		if inc.ReferenceDate.IsZero() {
			add(field+".reference_date", "is required")
		}
		if inc.Amount.IsNegative() {
			add(field+".amount", "must not be negative, got %s", inc.Amount)
		}
	}

	for i, o := range in.OneTime {
		field := fmt.Sprintf("one_time_items[%d]", i)
		if !o.Direction.Valid() {
			add(field+".direction", "must be %q or %q, got %q", model.DirectionExpense, model.DirectionIncome, o.Direction)
		}
		if o.DueDate.IsZero() {
			add(field+".due_date", "is required")
		}
		if o.Amount.IsNegative() {
			add(field+".amount", "must not be negative, got %s", o.Amount)
		}
	}

	for i, a := range in.Aggregate {
		field := fmt.Sprintf("aggregate_expenses[%d]", i)
		if a.IntervalDays < 1 || a.IntervalDays > MaxIntervalDays {
			add(field+".interval_days", "must be between 1 and %d, got %d", MaxIntervalDays, a.IntervalDays)
		}
		if a.TotalAmount.IsNegative() {
			add(field+".total_amount", "must not be negative, got %s", a.TotalAmount)
		}
	}

	return errs
}
