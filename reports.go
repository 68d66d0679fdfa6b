package tracker

import (
	"github.com/shopspring/decimal"
)

// DaySpend is one bucket of the weekly expense trend.
type DaySpend struct {
	Date  Date
	Total decimal.Decimal
}

// Summary holds the dashboard aggregates computed from the transaction
// collection and the active settings.
//
// It surfaces both the running totals and the configured budget figure;
// which ratio a view derives from them (spending over income, spending
// over budget) is the view's choice, not computed here.
type Summary struct {
	On              Date            // reference date of the report
	TotalRecords    int             // number of transactions, all types
	TotalIncome     decimal.Decimal // sum of all Income amounts, base currency
	TotalExpenses   decimal.Decimal // sum of all Expense amounts, base currency
	Remaining       decimal.Decimal // TotalIncome - TotalExpenses
	MonthlySpending decimal.Decimal // expenses dated in On's calendar month
	MonthlyBudget   decimal.Decimal // configured budget, base currency
	TopCategory     string          // expense category with the most records, "" when no expenses
	Trend           []DaySpend      // daily expenses over On's Monday-aligned week, 7 buckets
}

// NewSummary computes the dashboard aggregates for the given reference
// date, usually today.
func NewSummary(txs []Transaction, settings Settings, on Date) *Summary {
	s := &Summary{
		On:            on,
		TotalRecords:  len(txs),
		MonthlyBudget: settings.MonthlyBudget,
	}

	// Trend buckets cover the calendar week containing the reference
	// date, Monday first.
	monday := on.StartOfWeek()
	s.Trend = make([]DaySpend, 7)
	for i := range s.Trend {
		s.Trend[i] = DaySpend{Date: monday.Add(i)}
	}

	// Category counts keep first-seen order so ties resolve to the
	// earliest encountered category, deterministically.
	var categories []string
	counts := make(map[string]int)

	for _, tx := range txs {
		switch tx.Type.normalize() {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
			if tx.Date.SameMonth(on) {
				s.MonthlySpending = s.MonthlySpending.Add(tx.Amount)
			}
			for i := range s.Trend {
				if s.Trend[i].Date == tx.Date {
					s.Trend[i].Total = s.Trend[i].Total.Add(tx.Amount)
				}
			}
			if _, seen := counts[tx.Category]; !seen {
				categories = append(categories, tx.Category)
			}
			counts[tx.Category]++
		}
	}
	s.Remaining = s.TotalIncome.Sub(s.TotalExpenses)

	best := 0
	for _, cat := range categories {
		if counts[cat] > best {
			best = counts[cat]
			s.TopCategory = cat
		}
	}
	return s
}
