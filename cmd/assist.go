package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/agent"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `sft assist [question]

  Start an interactive session with the AI assistant. An optional
  question is asked right away.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	// The analyst reads the user's records through this closure, so the
	// agent package stays free of storage concerns.
	snapshot := func() (string, error) {
		settings := openSettings().Get()
		conv := tracker.NewConverter(settings)
		list := openTransactions().List()
		report := tracker.NewSummary(list, settings, tracker.Today())
		return renderer.Summary(report, conv) + "\n" + renderer.Transactions(list, conv), nil
	}

	coach := agent.NewCoach()
	analyst := agent.NewAnalyst(snapshot)
	a := agent.New(os.Stdout, os.Stdin, coach, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
