package models

import "fmt"

// Display symbols for the supported currency codes. PUNDS is the code the
// product ships with; renaming it is an open product decision, not ours.
var currencySymbols = map[string]string{
	"USD":   "$",
	"KSH":   "KSh ",
	"TZS":   "TSh ",
	"EURO":  "€",
	"PUNDS": "£",
}

// Static rates, expressed as USD per one unit of the code. Conversion
// bridges through USD.
var ratesToUSD = map[string]float64{
	"USD":   1.0,
	"KSH":   1 / 155.0,
	"TZS":   1 / 2350.0,
	"EURO":  1.08,
	"PUNDS": 1.25,
}

// Symbol returns the display symbol for a currency code, or "" for codes
// we don't know.
func Symbol(code string) string {
	return currencySymbols[code]
}

// Convert converts an amount between currencies via the static USD bridge.
// Same or unset codes are an identity. Unknown codes take a rate of 1.0,
// so a lookup never fails; the result just degrades toward identity.
func Convert(amount float64, from, to string) float64 {
	if from == "" || to == "" || from == to {
		return amount
	}
	fromRate, ok := ratesToUSD[from]
	if !ok {
		fromRate = 1.0
	}
	toRate, ok := ratesToUSD[to]
	if !ok {
		toRate = 1.0
	}
	return amount * fromRate / toRate
}

// FormatMoney renders an amount with its currency symbol and two decimals,
// e.g. "$129.20". Rounding happens here and only here.
func FormatMoney(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", Symbol(code), amount)
}
