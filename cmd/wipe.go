package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type wipeCmd struct {
	force bool
}

func (*wipeCmd) Name() string     { return "wipe" }
func (*wipeCmd) Synopsis() string { return "delete all data and start over" }
func (*wipeCmd) Usage() string {
	return `sft wipe -f

  Deletes all transactions and settings, returning the tracker to its
  first-run state. Refuses to run without -f.
`
}

func (c *wipeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Actually wipe the data.")
}

func (c *wipeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Refusing to wipe without -f. This deletes every transaction and all settings.")
		return subcommands.ExitUsageError
	}
	if err := tracker.Wipe(openStore()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("All data wiped.")
	return subcommands.ExitSuccess
}
