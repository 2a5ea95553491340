package bitcoin

import (
	"errors"
	"fmt"

	"github.com/iryanmb/bitcoin-calculator/date"
)

// ErrNoData reports a price source that contains no usable row at all.
// There is nothing to calculate against, so it is fatal.
var ErrNoData = errors.New("no usable price data")

// ErrTooEarly reports a requested day older than the first known price.
// There is no earlier close to fall back on.
var ErrTooEarly = errors.New("date is before the earliest known price")

// PricePoint is the closing price recorded for one day.
type PricePoint struct {
	Day   date.Date
	Close Money
}

// PriceSeries holds the daily closing prices, chronologically sorted with
// unique days. It is built once by LoadPrices and never mutated after.
type PriceSeries struct {
	prices  date.History[Money]
	skipped int
}

// Len returns the number of days in the series.
func (s *PriceSeries) Len() int { return s.prices.Len() }

// Skipped returns the number of source rows dropped at load time.
func (s *PriceSeries) Skipped() int { return s.skipped }

// Latest returns the price point with the maximum day in the series, the
// "sell today" reference price.
func (s *PriceSeries) Latest() PricePoint {
	day, close := s.prices.Latest()
	return PricePoint{Day: day, Close: close}
}

// Range returns the first and last day covered by the series.
func (s *PriceSeries) Range() date.Range {
	first, _ := s.prices.First()
	last, _ := s.prices.Latest()
	return date.Range{From: first, To: last}
}

// OnOrBefore returns the closing price on 'day', or on the nearest earlier
// day when the series has no entry for 'day' itself. The boolean reports
// whether the match was exact.
//
// Requesting a day before the first entry fails with ErrTooEarly.
func (s *PriceSeries) OnOrBefore(day date.Date) (PricePoint, bool, error) {
	resolved, close, ok := s.prices.AsOf(day)
	if !ok {
		first, _ := s.prices.First()
		return PricePoint{}, false, fmt.Errorf("%w: %s is before %s", ErrTooEarly, day, first)
	}
	return PricePoint{Day: resolved, Close: close}, resolved == day, nil
}
