package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	description string
	amount      string
	txType      string
	category    string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing transaction" }
func (*editCmd) Usage() string {
	return `sft edit <id> [-d <description>] [-a <amount>] [-t <type>] [-c <category>] [-on <date>]

  Modifies an existing transaction. Only the fields given as flags
  change, the rest keep their stored value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "New description.")
	f.StringVar(&c.amount, "a", "", "New amount, in the display currency.")
	f.StringVar(&c.txType, "t", "", "New type (income, expense).")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.date, "on", "", "New date.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	var patch tracker.TransactionPatch
	if c.description != "" {
		if !descriptionRegex.MatchString(c.description) {
			fmt.Fprintf(os.Stderr, "Error: invalid description %q: use letters separated by single spaces\n", c.description)
			return subcommands.ExitUsageError
		}
		patch.Description = &c.description
	}
	if c.amount != "" {
		if !amountRegex.MatchString(c.amount) {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: use a non-negative number with up to 2 decimals\n", c.amount)
			return subcommands.ExitUsageError
		}
		v, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		base := converter().BaseValue(v)
		patch.Amount = &base
	}
	if c.txType != "" {
		t, err := tracker.ParseTxType(c.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Type = &t
	}
	if c.category != "" {
		if !categoryRegex.MatchString(c.category) {
			fmt.Fprintf(os.Stderr, "Error: invalid category %q: use letters, spaces or hyphens\n", c.category)
			return subcommands.ExitUsageError
		}
		patch.Category = &c.category
	}
	if c.date != "" {
		d, err := tracker.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Date = &d
	}

	txs := openTransactions()
	found, err := txs.Update(id, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q\n", id)
		return subcommands.ExitFailure
	}

	tx, _ := txs.Get(id)
	fmt.Println("Updated:", renderer.Transaction(tx, converter()))
	return subcommands.ExitSuccess
}
