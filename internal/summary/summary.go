package summary

import (
	"github.com/shopspring/decimal"

	"github.com/spend-dev/spend/internal/model"
	"github.com/spend-dev/spend/internal/period"
)

// Summary aggregates a set of expenses.
type Summary struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal // zero when Count is 0
}

// Of totals every expense.
func Of(expenses []model.Expense) Summary {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	s := Summary{Total: total, Count: len(expenses), Average: decimal.Zero}
	if s.Count > 0 {
		s.Average = total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// Month totals the expenses dated in year/month.
func Month(expenses []model.Expense, year, month int) Summary {
	key := period.Key(year, month)
	var matched []model.Expense
	for _, e := range expenses {
		if e.InPeriod(key) {
			matched = append(matched, e)
		}
	}
	return Of(matched)
}

// Category totals the expenses in category, ignoring case.
func Category(expenses []model.Expense, category string) Summary {
	var matched []model.Expense
	for _, e := range expenses {
		if e.InCategory(category) {
			matched = append(matched, e)
		}
	}
	return Of(matched)
}
