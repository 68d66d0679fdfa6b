package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
	"github.com/shopspring/decimal"
)

// trendWidth is the bar length, in characters, of the busiest day.
const trendWidth = 20

// Summary renders the dashboard aggregates as markdown.
func Summary(s *tracker.Summary, c *tracker.Converter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dashboard (%s)\n\n", s.On)
	fmt.Fprintf(&b, "| | |\n|---|--:|\n")
	fmt.Fprintf(&b, "| Total Records | %d |\n", s.TotalRecords)
	fmt.Fprintf(&b, "| Total Income | %s |\n", c.Format(s.TotalIncome))
	fmt.Fprintf(&b, "| Total Expenses | %s |\n", c.Format(s.TotalExpenses))
	fmt.Fprintf(&b, "| Remaining | %s |\n", c.Format(s.Remaining))
	fmt.Fprintf(&b, "| Spent this month | %s |\n", c.Format(s.MonthlySpending))
	fmt.Fprintf(&b, "| Monthly budget | %s |\n", c.Format(s.MonthlyBudget))
	top := s.TopCategory
	if top == "" {
		top = "None"
	}
	fmt.Fprintf(&b, "| Top category | %s |\n", top)

	fmt.Fprintf(&b, "\n## This week\n\n")
	max := decimal.Zero
	for _, day := range s.Trend {
		if day.Total.GreaterThan(max) {
			max = day.Total
		}
	}
	for _, day := range s.Trend {
		bar := ""
		if max.IsPositive() {
			n := day.Total.Div(max).Mul(decimal.NewFromInt(trendWidth)).Round(0).IntPart()
			bar = strings.Repeat("█", int(n))
		}
		marker := " "
		if day.Date == s.On {
			marker = "*"
		}
		fmt.Fprintf(&b, "    %s %s %-20s %s\n", day.Date.Weekday().String()[:3], marker, bar, c.Format(day.Total))
	}
	return b.String()
}
