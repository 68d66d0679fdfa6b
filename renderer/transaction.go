// Package renderer converts tracker records and reports to markdown,
// ready to be printed to a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// Transaction renders a single transaction to a one-line string.
func Transaction(tx tracker.Transaction, c *tracker.Converter) string {
	sign := "-"
	if tx.Type == tracker.Income {
		sign = "+"
	}
	return fmt.Sprintf("%s %s (%s) %s%s", tx.Date, tx.Description, tx.Category, sign, c.Format(tx.Amount))
}

// Transactions renders a collection of transactions as a markdown table.
func Transactions(txs []tracker.Transaction, c *tracker.Converter) string {
	if len(txs) == 0 {
		return "No transactions found. Add one!\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Date | Description | Category | Type | Amount | ID |\n")
	fmt.Fprintf(&b, "|---|---|---|---|--:|---|\n")
	for _, tx := range txs {
		amount := c.Format(tx.Amount)
		if tx.Type == tracker.Expense {
			amount = "-" + amount
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Description, tx.Category, tx.Type, amount, tx.ID)
	}
	return b.String()
}
