package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runway-dev/runway/internal/model"
)

func fields(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	in := Input{
		Scenario:  scenario(date(2024, 3, 1), date(2024, 3, 1), "0"),
		Budget:    []model.BudgetItem{{Payment: dec("0"), DueDate: date(2024, 3, 1)}},
		Income:    []model.IncomeItem{{Frequency: model.FrequencyMonthly, ReferenceDate: date(2024, 3, 1)}},
		OneTime:   []model.OneTimeItem{{Direction: model.DirectionIncome, DueDate: date(2024, 3, 1)}},
		Aggregate: []model.AggregateExpense{{IntervalDays: 1}, {IntervalDays: MaxIntervalDays}},
	}
	assert.Empty(t, Validate(in))
}

func TestValidate_MissingDates(t *testing.T) {
	errs := Validate(Input{})
	assert.Equal(t, []string{"start_date", "end_date"}, fields(errs))
	assert.Equal(t, "start_date: is required", errs[0].Error())
}

func TestValidate_EndBeforeStart(t *testing.T) {
	errs := Validate(Input{Scenario: scenario(date(2024, 4, 1), date(2024, 3, 1), "0")})
	assert.Equal(t, []string{"end_date"}, fields(errs))
}

func TestValidate_Items(t *testing.T) {
	in := Input{
		Scenario: scenario(date(2024, 3, 1), date(2024, 3, 31), "0"),
		Budget: []model.BudgetItem{
			{Payment: dec("10"), DueDate: date(2024, 3, 1)},
			{Payment: dec("-1")},
		},
		Income:    []model.IncomeItem{{Frequency: "weekly", ReferenceDate: date(2024, 3, 1)}},
		OneTime:   []model.OneTimeItem{{Direction: "refund"}},
		Aggregate: []model.AggregateExpense{{IntervalDays: 0}, {IntervalDays: 7}, {IntervalDays: 61}},
	}

	errs := Validate(in)
	assert.Equal(t, []string{
		"budget_items[1].due_date",
		"budget_items[1].payment",
		"income_items[0].frequency",
		"one_time_items[0].direction",
		"one_time_items[0].due_date",
		"aggregate_expenses[0].interval_days",
		"aggregate_expenses[2].interval_days",
	}, fields(errs))
}

func TestValidate_RangeCap(t *testing.T) {
	start := date(2024, 1, 1)

	assert.Empty(t, Validate(Input{Scenario: scenario(start, start.AddDays(MaxRangeDays), "0")}))

	errs := Validate(Input{Scenario: scenario(start, start.AddDays(MaxRangeDays+1), "0")})
	assert.Equal(t, []string{"end_date"}, fields(errs))
	assert.Contains(t, errs[0].Message, "exceeds")

	errs = Validate(Input{Scenario: scenario(start, date(9999, 12, 31), "0")})
	assert.Equal(t, []string{"end_date"}, fields(errs))
}

func TestValidate_NegativeAmounts(t *testing.T) {
	in := Input{
		Scenario:  scenario(date(2024, 3, 1), date(2024, 3, 31), "-20"),
		Budget:    []model.BudgetItem{{Payment: dec("-1"), DueDate: date(2024, 3, 1)}},
		Income:    []model.IncomeItem{{Amount: dec("-2"), Frequency: model.FrequencyBiweekly, ReferenceDate: date(2024, 3, 1)}},
		OneTime:   []model.OneTimeItem{{Amount: dec("-3"), Direction: model.DirectionIncome, DueDate: date(2024, 3, 1)}},
		Aggregate: []model.AggregateExpense{{TotalAmount: dec("-4"), IntervalDays: 7}},
	}

	// A negative starting balance is an overdrawn account, not an error.
	assert.Equal(t, []string{
		"budget_items[0].payment",
		"income_items[0].amount",
		"one_time_items[0].amount",
		"aggregate_expenses[0].total_amount",
	}, fields(Validate(in)))
}

func TestInvalidScenarioError(t *testing.T) {
	err := &InvalidScenarioError{Problems: []ValidationError{
		{Field: "start_date", Message: "is required"},
		{Field: "end_date", Message: "is required"},
	}}
	assert.Equal(t, "invalid scenario: start_date: is required; end_date: is required", err.Error())
}
