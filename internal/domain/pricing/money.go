// internal/domain/pricing/money.go
package pricing

import "fmt"

// currencySymbols maps ISO currency codes to their display symbol.
// Unknown codes fall back to the code itself.
var currencySymbols = map[string]string{
	"PEN": "S/",
	"USD": "$",
	"MXN": "$",
	"COP": "$",
	"ARS": "$",
	"CLP": "$",
	"EUR": "€",
}

// FormatMoney renders a currency value for display. Formatting is a
// pure presentation concern: raw values are what get persisted and
// summed, never formatted strings.
func FormatMoney(value float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	return fmt.Sprintf("%s %.2f", symbol, value)
}
