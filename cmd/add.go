package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Input validation, shared with the edit command. Amounts are entered in
// the display currency with at most two decimals; labels are plain words.
var (
	descriptionRegex = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)
	amountRegex      = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	categoryRegex    = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
)

type addCmd struct {
	description string
	amount      string
	txType      string
	category    string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `sft add -d <description> -a <amount> -c <category> [-t <type>] [-on <date>]

  Records a new transaction. The amount is entered in the display
  currency and stored in the base currency.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description (letters and single spaces).")
	f.StringVar(&c.amount, "a", "", "Amount in the display currency, up to 2 decimals.")
	f.StringVar(&c.txType, "t", "expense", "Transaction type (income, expense).")
	f.StringVar(&c.category, "c", "", "Category (letters, spaces, hyphens).")
	f.StringVar(&c.date, "on", tracker.Today().String(), "Date of the transaction.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !descriptionRegex.MatchString(c.description) {
		fmt.Fprintf(os.Stderr, "Error: invalid description %q: use letters separated by single spaces\n", c.description)
		return subcommands.ExitUsageError
	}
	if !amountRegex.MatchString(c.amount) {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: use a non-negative number with up to 2 decimals\n", c.amount)
		return subcommands.ExitUsageError
	}
	if !categoryRegex.MatchString(c.category) {
		fmt.Fprintf(os.Stderr, "Error: invalid category %q: use letters, spaces or hyphens\n", c.category)
		return subcommands.ExitUsageError
	}
	txType, err := tracker.ParseTxType(c.txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	date, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	conv := converter()
	tx, err := openTransactions().Create(tracker.Transaction{
		Description: c.description,
		Amount:      conv.BaseValue(amount),
		Type:        txType,
		Category:    c.category,
		Date:        date,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Added:", renderer.Transaction(tx, conv))
	return subcommands.ExitSuccess
}
