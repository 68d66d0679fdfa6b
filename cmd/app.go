// Package cmd implements the CLI application to track a personal budget.
package cmd

import (
	"flag"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order.
// A main package will iterate it to register them, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&editCmd{},
	&rmCmd{},
	&summaryCmd{},
	&settingsCmd{},
	&ratesCmd{},
	&exportCmd{},
	&importCmd{},
	&wipeCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".tracker", "Path to the data directory")

// openStore opens the application data directory as a store.
func openStore() tracker.Store { return tracker.NewDirStore(*dataDir) }

func openTransactions() *tracker.TransactionStore {
	return tracker.NewTransactionStore(openStore())
}

func openSettings() *tracker.SettingsStore {
	return tracker.NewSettingsStore(openStore())
}

// converter returns the converter for the currently active settings.
func converter() *tracker.Converter {
	return tracker.NewConverter(openSettings().Get())
}
