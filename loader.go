package bitcoin

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iryanmb/bitcoin-calculator/date"
	"github.com/shopspring/decimal"
)

// Header aliases recognized in the source file, lowercase.
// Coin data exports disagree on naming: coincodex uses "Start"/"Close",
// most exchanges use "Date"/"Close".
var (
	dayAliases   = []string{"date", "start", "day", "timestamp"}
	closeAliases = []string{"close", "closing price", "close price", "last"}
)

// LoadPricesFile loads a price series from a CSV file on disk.
func LoadPricesFile(path string) (*PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open price file: %w", err)
	}
	defer f.Close()

	s, err := LoadPrices(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load price file %q: %w", path, err)
	}
	return s, nil
}

// LoadPrices reads a CSV price table from 'r' into a PriceSeries.
//
// The first record is a header; the day and close columns are located by a
// case-insensitive match against a small set of aliases, so column order
// and extra columns do not matter. Rows whose day or close does not parse,
// or whose close is not strictly positive, are dropped and counted, not
// fatal. Duplicated days keep the last occurrence, so a fix-up row
// appended at the end of the file wins over the original.
//
// It fails with an error wrapping ErrNoData when no valid row remains.
func LoadPrices(r io.Reader) (*PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are handled per row
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: source is empty", ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}

	dayCol, err := findColumn(header, dayAliases)
	if err != nil {
		return nil, err
	}
	closeCol, err := findColumn(header, closeAliases)
	if err != nil {
		return nil, err
	}

	s := &PriceSeries{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read price row: %w", err)
		}
		if dayCol >= len(row) || closeCol >= len(row) {
			s.skipped++
			continue
		}

		day, err := parseDayCell(row[dayCol])
		if err != nil {
			s.skipped++
			continue
		}
		close, err := decimal.NewFromString(strings.TrimSpace(row[closeCol]))
		if err != nil || !close.IsPositive() {
			s.skipped++
			continue
		}
		s.prices.Append(day, M(close, "USD"))
	}

	if s.Len() == 0 {
		return nil, fmt.Errorf("%w: no valid row in source (%d skipped)", ErrNoData, s.skipped)
	}
	return s, nil
}

// findColumn returns the index of the first header cell matching one of the
// aliases, comparing case-insensitively.
func findColumn(header, aliases []string) (int, error) {
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range aliases {
			if name == alias {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("no column named like %q in header %q", aliases[0], header)
}

// parseDayCell parses a day cell, tolerating a time-of-day suffix like
// "2024-01-02 00:00:00" or "2024-01-02T00:00:00Z" that some exports carry.
func parseDayCell(cell string) (date.Date, error) {
	s := strings.TrimSpace(cell)
	s, _, _ = strings.Cut(s, " ")
	s, _, _ = strings.Cut(s, "T")
	return date.Parse(s)
}
