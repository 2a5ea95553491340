// Package bitcoin computes the historical return of a one-shot Bitcoin
// investment against a local table of daily closing prices.
//
// The core functionalities include:
//   - Price Series: loading a date/close table from a CSV source into an
//     immutable, chronologically sorted series, dropping and counting the
//     rows that do not parse.
//   - Point-in-time Lookup: resolving any requested day to its closing
//     price, falling back on the nearest earlier day when the market data
//     has a gap (weekends, exchange holidays).
//   - Return Calculation: exact decimal arithmetic from the invested
//     amount to BTC units, final value, and gain/loss, with rounding
//     applied only at display time.
//
// This package serves as the foundational logic for the `btcalc`
// command-line tool; it performs no I/O besides reading the price source
// it is given.
package bitcoin
