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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the budget dashboard" }
func (*summaryCmd) Usage() string {
	return `sft summary [-d <date>]

  Displays the dashboard: running totals, monthly spending against the
  budget, top expense category and the weekly trend.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tracker.Today().String(), "Reference date for the dashboard.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	settings := openSettings().Get()
	report := tracker.NewSummary(openTransactions().List(), settings, on)

	printMarkdown(renderer.Summary(report, tracker.NewConverter(settings)))
	return subcommands.ExitSuccess
}
