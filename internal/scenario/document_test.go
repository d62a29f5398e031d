package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	doc := Sample()
	doc.OneTimeItems = []model.OneTimeItem{
		{Title: "Tax refund", Amount: dec("812.34"), Direction: model.DirectionIncome, DueDate: calendar.New(2024, 4, 15)},
	}

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, Save(path, doc))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, doc.Title, got.Title)
	assert.True(t, doc.StartDate.Equal(got.StartDate))
	assert.True(t, doc.EndDate.Equal(got.EndDate))
	assert.True(t, doc.StartingBalance.Equal(got.StartingBalance))

	require.Len(t, got.BudgetItems, len(doc.BudgetItems))
	for i := range doc.BudgetItems {
		assert.Equal(t, doc.BudgetItems[i].Title, got.BudgetItems[i].Title)
		assert.True(t, doc.BudgetItems[i].Payment.Equal(got.BudgetItems[i].Payment))
		assert.Equal(t, doc.BudgetItems[i].DueDay(), got.BudgetItems[i].DueDay())
	}

	require.Len(t, got.IncomeItems, 1)
	assert.Equal(t, model.FrequencyBiweekly, got.IncomeItems[0].Frequency)
	assert.Equal(t, "2024-03-15", got.IncomeItems[0].ReferenceDate.String())

	require.Len(t, got.OneTimeItems, 1)
	assert.True(t, got.OneTimeItems[0].Amount.Equal(dec("812.34")))
	assert.Equal(t, model.DirectionIncome, got.OneTimeItems[0].Direction)

	require.Len(t, got.AggregateExpenses, 3)
	assert.Equal(t, 14, got.AggregateExpenses[1].IntervalDays)
}

func TestDecode_HandWritten(t *testing.T) {
	src := `
title: Rent month
start_date: 2024-03-01
end_date: 2024-03-31
starting_balance: 2500.75
budget_items:
  - {title: Rent, payment: 1800, due_date: 2024-02-01}
income_items:
  - {title: Pay, amount: 1400.50, frequency: monthly, reference_date: 2024-03-08}
one_time_items:
  - {title: Gift, amount: 50, direction: income, due_date: 2024-03-20}
aggregate_expenses:
  - {title: Food, total_amount: 400, interval_days: 7}
`
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Rent month", doc.Title)
	assert.True(t, doc.StartingBalance.Equal(dec("2500.75")))
	assert.Equal(t, 1, doc.BudgetItems[0].DueDay())
	assert.True(t, doc.IncomeItems[0].Amount.Equal(dec("1400.50")))
	assert.Equal(t, model.FrequencyMonthly, doc.IncomeItems[0].Frequency)
	assert.Equal(t, "2024-03-20", doc.OneTimeItems[0].DueDate.String())
	assert.Equal(t, 7, doc.AggregateExpenses[0].IntervalDays)
}

func TestDecode_InvalidDate(t *testing.T) {
	src := "start_date: 2024-03-01\nend_date: 03/31/2024\n"
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("start_date: 2024-03-01\nbudget: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario")
}

func TestDecode_Empty(t *testing.T) {
	doc, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, doc.StartDate.IsZero())
}

func TestEncode_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Sample()))
	out := buf.String()

	assert.Contains(t, out, "title: Household")
	assert.Contains(t, out, "start_date:")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "budget_items:")
	assert.Contains(t, out, "interval_days: 7")
	assert.NotContains(t, out, "one_time_items", "empty lists are omitted")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInputCopiesItems(t *testing.T) {
	doc := Sample()
	in := doc.Input()

	doc.BudgetItems[0].Payment = dec("1")
	doc.AggregateExpenses = nil

	assert.True(t, in.Budget[0].Payment.Equal(dec("176")))
	assert.Len(t, in.Aggregate, 3)
	assert.True(t, in.Scenario.StartingBalance.Equal(dec("5000")))
}
