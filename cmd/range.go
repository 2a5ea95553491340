package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rangeCmd describes the loaded dataset.
type rangeCmd struct{}

func (*rangeCmd) Name() string     { return "range" }
func (*rangeCmd) Synopsis() string { return "print the dataset coverage and the latest close" }
func (*rangeCmd) Usage() string {
	return `btcalc range [-csv <file>]

  Prints the date range covered by the dataset, how many rows were kept
  and skipped, and the latest close used as the sell reference.

`
}
func (c *rangeCmd) SetFlags(f *flag.FlagSet) {}

func (c *rangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := LoadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	latest := series.Latest()
	fmt.Printf("Data range: %s\n", series.Range())
	fmt.Printf("Days: %d (%d rows skipped)\n", series.Len(), series.Skipped())
	fmt.Printf("Latest close: %s on %s\n", latest.Close, latest.Day)
	return subcommands.ExitSuccess
}
