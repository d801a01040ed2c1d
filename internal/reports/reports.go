// Package reports implements the aggregation of expenses into reporting
// summaries. All functions are pure: they operate on expense slices that
// the caller already loaded and scoped to one user.
package reports

import (
	"strings"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Places is the number of decimal places all reported sums are rounded to.
// Rounding is half away from zero.
const Places = 2

// MonthSummary is the month-to-date view shown on the dashboard.
type MonthSummary struct {
	Expenses   []models.Expense // expenses in the window, most recent date first
	Spent      decimal.Decimal  // exact sum over the window, not rounded
	Budget     decimal.Decimal
	OverBudget bool
}

// MonthToDate reduces a user's expenses to the current month's summary.
//
// The window is [first day of today's month, today], both inclusive. An
// expense dated in the current month but after today (logged ahead of
// time) is not counted yet. The incoming slice order is preserved for
// expenses within the window.
func MonthToDate(expenses []models.Expense, budget decimal.Decimal, today types.Date) MonthSummary {
	start := today.FirstOfMonth()

	summary := MonthSummary{
		Expenses: []models.Expense{},
		Spent:    decimal.Zero,
		Budget:   budget,
	}

	for _, expense := range expenses {
		if !expense.OccurredOn.In(start, today) {
			continue
		}

		summary.Expenses = append(summary.Expenses, expense)
		summary.Spent = summary.Spent.Add(expense.Amount)
	}

	summary.OverBudget = budget.IsPositive() && summary.Spent.GreaterThan(budget)
	return summary
}

// Summary is the category aggregation over a date window, in the shape the
// charting script consumes: labels and values are parallel slices, ordered
// by summed amount descending.
type Summary struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
	Total  decimal.Decimal   `json:"total"`
	Start  types.Date        `json:"start"`
	End    types.Date        `json:"end"`
}

// ResolveWindow determines the date window for a range summary.
//
// When both explicit dates are set, they win. Otherwise the keyword is
// used: "year" starts at January 1, everything else (including an
// unrecognized keyword) starts at the first of the current month. The end
// is always today unless explicitly given.
func ResolveWindow(keyword string, start, end *types.Date, today types.Date) (types.Date, types.Date) {
	if start != nil && end != nil {
		return *start, *end
	}

	if keyword == "year" {
		return today.FirstOfYear(), today
	}

	return today.FirstOfMonth(), today
}

// Range reduces expenses in [start, end] to per-category sums.
//
// Categories are sorted by summed amount descending; equal sums are broken
// by category name ascending so the output is deterministic. Every value
// and the total are rounded to two decimal places, half away from zero.
func Range(expenses []models.Expense, start, end types.Date) Summary {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, expense := range expenses {
		if !expense.OccurredOn.In(start, end) {
			continue
		}

		sums[expense.Category] = sums[expense.Category].Add(expense.Amount)
		total = total.Add(expense.Amount)
	}

	categories := make([]string, 0, len(sums))
	for category := range sums {
		categories = append(categories, category)
	}

	slices.SortStableFunc(categories, func(a, b string) int {
		if c := sums[b].Cmp(sums[a]); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	summary := Summary{
		Labels: make([]string, 0, len(categories)),
		Values: make([]decimal.Decimal, 0, len(categories)),
		Total:  total.Round(Places),
		Start:  start,
		End:    end,
	}

	for _, category := range categories {
		summary.Labels = append(summary.Labels, category)
		summary.Values = append(summary.Values, sums[category].Round(Places))
	}

	return summary
}
