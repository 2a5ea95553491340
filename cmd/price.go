package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/iryanmb/bitcoin-calculator"
	"github.com/iryanmb/bitcoin-calculator/date"
)

// priceCmd looks up the closing price for a single day.
type priceCmd struct {
	day string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "print the closing price on or before a date" }
func (*priceCmd) Usage() string {
	return `btcalc price [-csv <file>] [-d <YYYY-MM-DD>]

  Prints the closing price on the given date, falling back on the nearest
  earlier date with data. Defaults to today, which resolves to the latest
  close in the dataset.

`
}
func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Date to look up (defaults to today)")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if c.day != "" {
		var err error
		day, err = date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	series, err := LoadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	pt, exact, err := series.OnOrBefore(day)
	if errors.Is(err, bitcoin.ErrTooEarly) {
		fmt.Fprintf(os.Stderr, "Error: no data on or before %s, the dataset starts on %s\n", day, series.Range().From)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if exact {
		fmt.Printf("%s: %s\n", pt.Day, pt.Close)
	} else {
		fmt.Printf("%s: %s (nearest earlier date for %s)\n", pt.Day, pt.Close, day)
	}
	return subcommands.ExitSuccess
}
