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

type settingsCmd struct {
	name     string
	dark     bool
	currency string
	budget   string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change user settings" }
func (*settingsCmd) Usage() string {
	return `sft settings [-name <name>] [-dark=<bool>] [-currency <code>] [-budget <amount>]

  Without flags, shows the current settings. With flags, changes only
  the given settings and leaves the rest untouched. The budget is
  entered in the display currency.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "User name.")
	f.BoolVar(&c.dark, "dark", false, "Dark mode.")
	f.StringVar(&c.currency, "currency", "", "Display currency code ("+strings.Join(tracker.Currencies, ", ")+").")
	f.StringVar(&c.budget, "budget", "", "Monthly budget, in the display currency.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSettings()

	var patch tracker.SettingsPatch
	var touched bool
	f.Visit(func(fl *flag.Flag) {
		touched = true
		switch fl.Name {
		case "name":
			patch.UserName = &c.name
		case "dark":
			patch.DarkMode = &c.dark
		}
	})

	if c.currency != "" {
		code := strings.ToUpper(c.currency)
		if !slices.Contains(tracker.Currencies, code) {
			fmt.Fprintf(os.Stderr, "Error: unsupported currency %q, pick one of %s\n", c.currency, strings.Join(tracker.Currencies, ", "))
			return subcommands.ExitUsageError
		}
		patch.Currency = &code
	}
	if c.budget != "" {
		if !amountRegex.MatchString(c.budget) {
			fmt.Fprintf(os.Stderr, "Error: invalid budget %q: use a non-negative number with up to 2 decimals\n", c.budget)
			return subcommands.ExitUsageError
		}
		v, err := decimal.NewFromString(c.budget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing budget: %v\n", err)
			return subcommands.ExitUsageError
		}
		// The budget is entered in the display currency in effect for
		// this very patch, so -currency and -budget compose.
		s := store.Get()
		if patch.Currency != nil {
			s.Currency = *patch.Currency
		}
		base := tracker.NewConverter(s).BaseValue(v)
		patch.MonthlyBudget = &base
	}

	if touched || patch.Currency != nil || patch.MonthlyBudget != nil {
		if err := store.Save(patch); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Settings(store.Get()))
	return subcommands.ExitSuccess
}
