// Package cmd implements the btcalc command-line application.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/iryanmb/bitcoin-calculator"
	"github.com/spf13/viper"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculator")
	c.Register(&priceCmd{}, "data")
	c.Register(&rangeCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var csvFile = flag.String("csv", "", "Path to the daily closing prices CSV file (overrides config and BTCALC_PRICES)")

func init() {
	// The prices file resolves, in order: -csv flag, BTCALC_PRICES env
	// variable, "prices" in a .btcalc.yaml next to the user or in $HOME,
	// and finally the conventional file name in the working directory.
	viper.SetConfigName(".btcalc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	viper.SetEnvPrefix("btcalc")
	viper.SetDefault("prices", "bitcoin_historical_data.csv")
	_ = viper.BindEnv("prices")
	_ = viper.ReadInConfig() // a missing config file is fine
}

// pricesPath returns the resolved path of the closing prices CSV file.
func pricesPath() string {
	if *csvFile != "" {
		return *csvFile
	}
	return viper.GetString("prices")
}

// LoadSeries loads the price series every subcommand works against.
func LoadSeries() (*bitcoin.PriceSeries, error) {
	return bitcoin.LoadPricesFile(pricesPath())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is not usable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
