package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	txType   string
	category string
	start    string
	date     string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `sft tx [-t <type>] [-c <category>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions newest first, with options for filtering and
  limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "t", "", "Only transactions of this type (income, expense).")
	f.StringVar(&c.category, "c", "", "Only transactions in this category.")
	f.StringVar(&c.start, "s", "", "Only transactions on or after this date.")
	f.StringVar(&c.date, "d", "", "Only transactions on or before this date.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var txType tracker.TxType
	if c.txType != "" {
		var err error
		txType, err = tracker.ParseTxType(c.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	var start, end tracker.Date
	if c.start != "" {
		var err error
		start, err = tracker.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.date != "" {
		var err error
		end, err = tracker.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	var transactions []tracker.Transaction
	for _, tx := range openTransactions().List() {
		if txType != "" && tx.Type != txType {
			continue
		}
		if c.category != "" && tx.Category != c.category {
			continue
		}
		if !start.IsZero() && tx.Date.Before(start) {
			continue
		}
		if !end.IsZero() && tx.Date.After(end) {
			continue
		}
		transactions = append(transactions, tx)
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions, converter()))
	return subcommands.ExitSuccess
}
