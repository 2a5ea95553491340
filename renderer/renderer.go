// Package renderer turns calculation results into markdown reports,
// suitable for a terminal markdown renderer or a plain pager.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/iryanmb/bitcoin-calculator"
)

const bannerTemplate = `# Bitcoin Return Calculator

- Data range: {{.Range}}
- Latest close (sell price): {{.LatestClose}} on {{.LatestDay}}
`

const resultTemplate = `## Result

- Buy date entered: {{.Requested}}
- Buy date used: {{.BuyDay}} {{if .Exact}}(exact match){{else}}(nearest earlier date){{end}}
- Buy close price: {{.BuyPrice}}
- Sell date used: {{.SellDay}} (latest in data)
- Sell close: {{.SellPrice}}
- BTC units: {{.Units}}
- Final value: {{.FinalValue}}
- **Gain/Loss: {{.Gain}} ({{.GainPct}})**
`

// Banner renders the startup banner: the dataset coverage and the sell
// reference price.
func Banner(s *bitcoin.PriceSeries) string {
	latest := s.Latest()
	return renderTemplate("banner", bannerTemplate, map[string]string{
		"Range":       s.Range().String(),
		"LatestClose": latest.Close.String(),
		"LatestDay":   latest.Day.String(),
	})
}

// Result renders the outcome block of one calculation.
func Result(r *bitcoin.Return) string {
	return renderTemplate("result", resultTemplate, map[string]any{
		"Requested":  r.Requested.String(),
		"BuyDay":     r.BuyDay.String(),
		"Exact":      r.Exact,
		"BuyPrice":   r.BuyPrice.String(),
		"SellDay":    r.SellDay.String(),
		"SellPrice":  r.SellPrice.String(),
		"Units":      r.Units.StringFixed(8),
		"FinalValue": r.FinalValue.String(),
		"Gain":       r.Gain.SignedString(),
		"GainPct":    r.GainPct.SignedString(),
	})
}

// renderTemplate executes a named template over 'data'. Templates are
// compile-time constants, so a parse failure is a programming error.
func renderTemplate(name, text string, data any) string {
	t := template.Must(template.New(name).Parse(text))
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return fmt.Sprintf("rendering error in %s: %v", name, err)
	}
	return sb.String()
}
