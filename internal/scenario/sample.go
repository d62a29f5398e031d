package scenario

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
)

// Sample returns a household scenario used by `runway init` and the sample
// endpoint.
func Sample() *Document {
	// Bills only use the day of month; all reference March 2024.
	bill := func(title string, payment int64, day int) model.BudgetItem {
		return model.BudgetItem{Title: title, Payment: decimal.NewFromInt(payment), DueDate: calendar.New(2024, time.March, day)}
	}
	lump := func(title string, total int64, every int) model.AggregateExpense {
		return model.AggregateExpense{Title: title, TotalAmount: decimal.NewFromInt(total), IntervalDays: every}
	}

	return &Document{
		Title:           "Household",
		StartDate:       calendar.New(2024, 3, 1),
		EndDate:         calendar.New(2024, 6, 30),
		StartingBalance: decimal.NewFromInt(5000),
		BudgetItems: []model.BudgetItem{
			bill("Hospital", 176, 1),
			bill("COTN", 39, 3),
			bill("Slate CC", 550, 13),
			bill("BCC Tuition", 280, 15),
			bill("WM", 80, 22),
			bill("Astound", 99, 24),
			bill("HELOC", 1500, 25),
			bill("Peninsula CC", 48, 25),
			bill("Cory's CC", 40, 26),
			bill("Student Loan", 166, 28),
			bill("Verizon", 60, 29),
			bill("Netflix", 13, 29),
			bill("PSE", 250, 29),
		},
		IncomeItems: []model.IncomeItem{
			{
				Title:         "Cory's paycheck",
				Amount:        decimal.NewFromInt(2947),
				Frequency:     model.FrequencyBiweekly,
				ReferenceDate: calendar.New(2024, 3, 15),
			},
		},
		AggregateExpenses: []model.AggregateExpense{
			lump("Groceries", 600, 7),
			lump("Pathfinder Gas", 225, 14),
			lump("Accent Gas", 150, 7),
		},
	}
}
