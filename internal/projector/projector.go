// Package projector computes day-by-day balance projections.
package projector

import (
	"github.com/shopspring/decimal"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
)

// Input is everything a projection reads. Project never modifies it.
type Input struct {
	Scenario  model.Scenario
	Budget    []model.BudgetItem
	Income    []model.IncomeItem
	OneTime   []model.OneTimeItem
	Aggregate []model.AggregateExpense
}

// Project validates in and returns the projected balance for each day.
//
// The series starts the day after StartDate and holds DaysBetween(start, end)+1
// points, so its last point falls one day after EndDate. Each day applies, in
// order, budget items whose due day-of-month matches, income items on their
// 14/28 day cadence from the reference date, one-time items due that exact day,
// and aggregate installments every IntervalDays from StartDate.
func Project(in Input) (model.Projection, error) {
	if problems := Validate(in); len(problems) > 0 {
		return model.Projection{}, &InvalidScenarioError{Problems: problems}
	}

	start := in.Scenario.StartDate
	dates := calendar.Range(start, calendar.DaysBetween(start, in.Scenario.EndDate)+1)

	// Installment sizes do not depend on the day.
	installments := make([]installment, len(in.Aggregate))
	for i, a := range in.Aggregate {
		installments[i] = installment{every: a.IntervalDays, amount: a.Installment()}
	}

	balance := in.Scenario.StartingBalance
	points := make([]model.Point, 0, len(dates))
	for _, d := range dates {
		for _, b := range in.Budget {
			if d.Day() == b.DueDay() {
				balance = balance.Sub(b.Payment)
			}
		}

		for _, inc := range in.Income {
			if onInterval(inc.ReferenceDate, d, inc.Frequency.IntervalDays()) {
				balance = balance.Add(inc.Amount)
			}
		}

		for _, o := range in.OneTime {
			if d.Equal(o.DueDate) {
				balance = balance.Add(o.Signed())
			}
		}

		for _, inst := range installments {
			if onInterval(start, d, inst.every) {
				balance = balance.Sub(inst.amount)
			}
		}

		points = append(points, model.Point{Date: d, Balance: balance})
	}

	return model.Projection{Points: points}, nil
}

type installment struct {
	every  int
	amount decimal.Decimal
}

func onInterval(from, d calendar.Date, interval int) bool {
	return calendar.DaysBetween(from, d)%interval == 0
}
