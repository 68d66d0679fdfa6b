package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/tracker"
)

// Settings renders the merged settings record as markdown.
func Settings(s tracker.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Settings\n\n")
	fmt.Fprintf(&b, "* User name: %s\n", s.UserName)
	fmt.Fprintf(&b, "* Dark mode: %v\n", s.DarkMode)
	fmt.Fprintf(&b, "* Display currency: %s\n", s.Currency)
	fmt.Fprintf(&b, "* Monthly budget: %s %s\n", s.MonthlyBudget.StringFixed(2), tracker.BaseCurrency)

	fmt.Fprintf(&b, "\n## Exchange rates (1 %s =)\n\n", tracker.BaseCurrency)
	codes := make([]string, 0, len(s.ExchangeRates))
	for code := range s.ExchangeRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(&b, "* %s: %s\n", code, s.ExchangeRates[code])
	}
	return b.String()
}
