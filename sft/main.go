// Command sft is the Student Finance Tracker command line interface.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tracker/cmd"
	"github.com/etnz/tracker/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately
// during a normal run.
func completion() {
	topics, _ := docs.GetAllTopics()

	valueFlags := map[string]complete.Predictor{
		"d":  predict.Something,
		"a":  predict.Something,
		"t":  predict.Set{"income", "expense"},
		"c":  predict.Something,
		"on": predict.Something,
	}

	sft := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: valueFlags},
			"tx": {Flags: map[string]complete.Predictor{
				"t":    predict.Set{"income", "expense"},
				"c":    predict.Something,
				"s":    predict.Something,
				"d":    predict.Something,
				"head": predict.Something,
				"tail": predict.Something,
			}},
			"edit": {Flags: valueFlags},
			"rm":   {},
			"summary": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
			}},
			"settings": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"dark":     predict.Set{"true", "false"},
				"currency": predict.Set{"USD", "EUR", "GBP", "RWF"},
				"budget":   predict.Something,
			}},
			"rates": {Flags: map[string]complete.Predictor{
				"fetch": predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.json"),
			}},
			"import": {Args: predict.Files("*.json")},
			"wipe": {Flags: map[string]complete.Predictor{
				"f": predict.Nothing,
			}},
			"topic":  {Args: predict.Set(topics)},
			"assist": {},
		},
	}
	sft.Complete("sft")
}
