package bitcoin

import (
	"strings"
	"testing"
)

// USD is a helper for tests to create dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// testSeries builds a PriceSeries from "day,close" rows, failing the test
// on a load error.
func testSeries(t *testing.T, rows ...string) *PriceSeries {
	t.Helper()
	csv := "Start,Close\n" + strings.Join(rows, "\n") + "\n"
	s, err := LoadPrices(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadPrices() = %v, want no error", err)
	}
	return s
}
