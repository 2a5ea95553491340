package bitcoin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, defaulting to USD.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = money.USD
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the string representation of the money value, like
// "$1,234.56", rounded half-up to the currency's fraction digits.
// Negative values render with the minus sign before the currency symbol.
func (m Money) String() string {
	cur := m.currency()
	units := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(units.IntPart())
}

// SignedString returns the string representation of the money value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Simple wrappers around decimal.Decimal.

func (m Money) Currency() string          { return m.cur }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money      { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// amountFmt accepts a plain decimal or one with well-formed thousands
// separators, with an optional leading currency symbol.
var amountFmt = regexp.MustCompile(`^\$?(\d{1,3}(,\d{3})*|\d+)(\.\d+)?$`)

// ParseAmount parses a strictly positive USD amount from user input.
// Thousands separators and a leading "$" are accepted: "1,000.50" and
// "$250" are both fine, "0", "-5" and "1,0,0" are not.
func ParseAmount(text string) (Money, error) {
	s := strings.TrimSpace(text)
	if !amountFmt.MatchString(s) {
		return Money{}, fmt.Errorf("invalid amount %q: want a positive number like 1000 or 1,000.50", text)
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	if !value.IsPositive() {
		return Money{}, fmt.Errorf("invalid amount %q: must be strictly positive", text)
	}
	return Money{value: value, cur: money.USD}, nil
}
