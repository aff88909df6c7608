// Package money formats monetary amounts for display. Amounts are stored and
// aggregated as float64 and are never rounded at computation time; rounding to
// the currency's display precision happens only here.
package money

import (
	"github.com/shopspring/decimal"
)

// symbols maps the recognized currency codes to their display symbols.
// Unrecognized codes fall back to "$".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"ZAR": "R",
}

// zeroDecimal contains currencies that are not subdivided and are displayed
// without fraction digits.
var zeroDecimal = map[string]bool{
	"JPY": true,
}

// Symbol returns the display symbol for a currency code.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return "$"
}

// Decimals returns the number of fraction digits used to display the currency.
func Decimals(code string) int32 {
	if zeroDecimal[code] {
		return 0
	}
	return 2
}

// Format renders an amount with the currency's symbol and display precision,
// e.g. Format(1234.5, "USD") == "$1234.50" and Format(1200, "JPY") == "¥1200".
// Rounding uses exact decimal arithmetic so float artifacts like 0.615 -> 0.61
// do not leak into the output.
func Format(amount float64, code string) string {
	d := decimal.NewFromFloat(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + Symbol(code) + d.StringFixed(Decimals(code))
}
