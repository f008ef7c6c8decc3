package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/brokerage/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Run
// COMP_INSTALL=1 bkr to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"buy": {Flags: map[string]complete.Predictor{
			"s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing,
		}},
		"sell": {Flags: map[string]complete.Predictor{
			"s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing,
		}},
		"import": {Flags: map[string]complete.Predictor{
			"i": predict.Files("*.json"),
		}},
		"positions": {},
		"balance":   {},
		"tx":        {},
		"statement": {},
		"fmt":       {},
		"topic":     {},
		"help":      {},
	},
	Flags: map[string]complete.Predictor{
		"config":     predict.Files("*.yaml"),
		"fills-file": predict.Files("*.jsonl"),
	},
}

func main() {
	completion.Complete("bkr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
