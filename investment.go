package bitcoin

import (
	"fmt"

	"github.com/iryanmb/bitcoin-calculator/date"
)

// Investment is one validated user scenario: an amount put into Bitcoin on
// a given day.
type Investment struct {
	BuyDate date.Date
	Amount  Money
}

// Return is the outcome of holding an Investment until the latest close in
// the series. It is computed once and read-only.
type Return struct {
	Requested date.Date // the buy day the user asked for
	BuyDay    date.Date // the day the price was actually found on
	Exact     bool      // false when BuyDay fell back on an earlier day
	BuyPrice  Money

	SellDay   date.Date // latest day in the series
	SellPrice Money

	Units      Quantity // BTC bought: Amount / BuyPrice
	FinalValue Money    // Units * SellPrice
	Gain       Money    // FinalValue - Amount
	GainPct    Percent
}

// Compute resolves the buy price for 'inv' in 'series' and derives the
// full return. The arithmetic is exact decimal; rounding only happens when
// the result is displayed.
func Compute(inv Investment, series *PriceSeries) (*Return, error) {
	buy, exact, err := series.OnOrBefore(inv.BuyDate)
	if err != nil {
		return nil, err
	}
	// Loading filters out non-positive closes, so this guards a broken
	// series built some other way.
	if !buy.Close.IsPositive() {
		return nil, fmt.Errorf("cannot compute return: close on %s is %s", buy.Day, buy.Close)
	}

	sell := series.Latest()
	units := inv.Amount.DivPrice(buy.Close)
	final := sell.Close.Mul(units)
	gain := final.Sub(inv.Amount)

	return &Return{
		Requested:  inv.BuyDate,
		BuyDay:     buy.Day,
		Exact:      exact,
		BuyPrice:   buy.Close,
		SellDay:    sell.Day,
		SellPrice:  sell.Close,
		Units:      units,
		FinalValue: final,
		Gain:       gain,
		GainPct:    PercentOf(gain, inv.Amount),
	}, nil
}
