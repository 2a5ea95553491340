package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/iryanmb/bitcoin-calculator/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion, only active when the shell's completion hook
	// invokes the binary.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"csv": predict.Files("*.csv"),
		},
		Sub: map[string]*complete.Command{
			"calc":  {},
			"price": {},
			"range": {},
		},
	}
	completion.Complete("btcalc")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
