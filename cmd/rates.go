package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type ratesCmd struct {
	fetch bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show or update exchange rates" }
func (*ratesCmd) Usage() string {
	return `sft rates [-fetch] [CODE=RATE ...]

  Without arguments, shows the current exchange rate table. Arguments
  of the form CODE=RATE set individual rates ("1 USD = RATE CODE").
  With -fetch, current rates are downloaded first; explicit arguments
  win over fetched values.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fetch, "fetch", false, "Download current rates from the network.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates := make(map[string]decimal.Decimal)

	if c.fetch {
		fetched, err := tracker.FetchRates(nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		for code, rate := range fetched {
			rates[code] = rate
		}
	}

	for _, arg := range f.Args() {
		code, value, found := strings.Cut(arg, "=")
		code = strings.ToUpper(strings.TrimSpace(code))
		if !found || !slices.Contains(tracker.Currencies, code) {
			fmt.Fprintf(os.Stderr, "Error: invalid rate %q, expected CODE=RATE with CODE one of %s\n", arg, strings.Join(tracker.Currencies, ", "))
			return subcommands.ExitUsageError
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || !rate.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: invalid rate %q, expected a positive number\n", arg)
			return subcommands.ExitUsageError
		}
		rates[code] = rate
	}

	store := openSettings()
	if len(rates) > 0 {
		if err := store.Save(tracker.SettingsPatch{ExchangeRates: rates}); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving rates: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Settings(store.Get()))
	return subcommands.ExitSuccess
}
