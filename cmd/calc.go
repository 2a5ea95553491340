package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/iryanmb/bitcoin-calculator"
	"github.com/iryanmb/bitcoin-calculator/date"
	"github.com/iryanmb/bitcoin-calculator/renderer"
)

// calcCmd runs the interactive return calculation.
type calcCmd struct{}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "interactively compute the return of a past Bitcoin buy" }
func (*calcCmd) Usage() string {
	return `btcalc calc [-csv <file>]

  Prompts for a buy date and a USD amount, then shows how much Bitcoin
  that amount bought on that day (or the nearest earlier day with data)
  and what it is worth at the latest close in the dataset. Invalid input
  re-prompts the same field.

Usage Examples:
# Calculate against the default dataset.
$ btcalc calc

# Calculate against a specific export.
$ btcalc calc -csv prices-2024.csv

`
}
func (c *calcCmd) SetFlags(f *flag.FlagSet) {}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := LoadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Banner(series))

	result, err := runPrompts(os.Stdin, os.Stdout, series)
	if errors.Is(err, io.EOF) {
		// Input closed before both fields validated: nothing to show.
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Result(result))
	return subcommands.ExitSuccess
}

// runPrompts collects a valid buy date then a valid amount from 'in',
// re-prompting the same field on each validation failure, and computes the
// return. A validated date survives later amount retries. It returns
// io.EOF when 'in' is exhausted before both fields validate.
func runPrompts(in io.Reader, out io.Writer, series *bitcoin.PriceSeries) (*bitcoin.Return, error) {
	scanner := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	var buyDate date.Date
	for {
		text, ok := ask("Enter buy date (YYYY-MM-DD): ")
		if !ok {
			return nil, io.EOF
		}
		d, err := date.Parse(text)
		if err != nil {
			fmt.Fprintln(out, "  -> Invalid date format. Example: 2017-12-15")
			continue
		}
		if first := series.Range().From; d.Before(first) {
			fmt.Fprintf(out, "  -> Too early. Earliest supported date is %s.\n", first)
			continue
		}
		// Dates after the last day are fine: they resolve to the latest
		// close through the nearest-earlier policy.
		buyDate = d
		break
	}

	var amount bitcoin.Money
	for {
		text, ok := ask("Enter amount invested in USD: ")
		if !ok {
			return nil, io.EOF
		}
		m, err := bitcoin.ParseAmount(text)
		if err != nil {
			fmt.Fprintln(out, "  -> Amount must be a positive number, like 1000 or 1,000.50.")
			continue
		}
		amount = m
		break
	}

	return bitcoin.Compute(bitcoin.Investment{BuyDate: buyDate, Amount: amount}, series)
}
