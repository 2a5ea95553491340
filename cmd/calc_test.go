package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/iryanmb/bitcoin-calculator"
	"github.com/iryanmb/bitcoin-calculator/date"
)

func testSeries(t *testing.T) *bitcoin.PriceSeries {
	t.Helper()
	src := `Start,Close
2017-12-15,17900.00
2024-12-15,43256.78
`
	s, err := bitcoin.LoadPrices(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadPrices() = %v, want no error", err)
	}
	return s
}

func TestRunPrompts(t *testing.T) {
	series := testSeries(t)

	// Each invalid entry must re-prompt the same field: a malformed date,
	// a too-early date, then a valid one; a word, a negative and a zero
	// amount, then a valid one.
	in := strings.NewReader(strings.Join([]string{
		"2017/12/15",
		"2010-01-01",
		"2017-12-15",
		"abc",
		"-5",
		"0",
		"5,000",
	}, "\n") + "\n")
	var out strings.Builder

	r, err := runPrompts(in, &out, series)
	if err != nil {
		t.Fatalf("runPrompts() = %v, want no error", err)
	}

	if r.BuyDay != date.MustParse("2017-12-15") || !r.Exact {
		t.Errorf("BuyDay = %v exact=%v, want 2017-12-15 exact=true", r.BuyDay, r.Exact)
	}
	if got, want := r.Units.StringFixed(8), "0.27932961"; got != want {
		t.Errorf("Units = %q, want %q", got, want)
	}

	text := out.String()
	if got, want := strings.Count(text, "Enter buy date (YYYY-MM-DD): "), 3; got != want {
		t.Errorf("date prompt printed %d times, want %d", got, want)
	}
	if got, want := strings.Count(text, "Enter amount invested in USD: "), 4; got != want {
		t.Errorf("amount prompt printed %d times, want %d", got, want)
	}
	if !strings.Contains(text, "Invalid date format") {
		t.Errorf("missing format failure message in:\n%s", text)
	}
	if !strings.Contains(text, "Earliest supported date is 2017-12-15") {
		t.Errorf("missing too-early failure message in:\n%s", text)
	}
	if !strings.Contains(text, "Amount must be a positive number") {
		t.Errorf("missing amount failure message in:\n%s", text)
	}
}

// TestRunPromptsFutureDate: a date past the dataset resolves to the
// latest close as a fallback rather than being rejected.
func TestRunPromptsFutureDate(t *testing.T) {
	series := testSeries(t)

	in := strings.NewReader("2030-06-01\n100\n")
	var out strings.Builder
	r, err := runPrompts(in, &out, series)
	if err != nil {
		t.Fatalf("runPrompts() = %v, want no error", err)
	}
	if r.Exact || r.BuyDay != date.MustParse("2024-12-15") {
		t.Errorf("BuyDay = %v exact=%v, want 2024-12-15 exact=false", r.BuyDay, r.Exact)
	}
	// Buying at the sell price means a flat return.
	if got, want := r.Gain.String(), "$0.00"; got != want {
		t.Errorf("Gain = %q, want %q", got, want)
	}
}

func TestRunPromptsEOF(t *testing.T) {
	series := testSeries(t)

	// Exhausted before a valid date.
	if _, err := runPrompts(strings.NewReader(""), io.Discard, series); !errors.Is(err, io.EOF) {
		t.Errorf("runPrompts(empty) = %v, want io.EOF", err)
	}

	// Exhausted after the date but before a valid amount: the date loop
	// must not restart.
	var out strings.Builder
	if _, err := runPrompts(strings.NewReader("2017-12-15\n"), &out, series); !errors.Is(err, io.EOF) {
		t.Errorf("runPrompts(date only) = %v, want io.EOF", err)
	}
	if got := strings.Count(out.String(), "Enter buy date"); got != 1 {
		t.Errorf("date prompt printed %d times, want 1", got)
	}
}
