package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"MXN": "$",
	"USD": "$",
	"EUR": "€",
	"COP": "$",
	"PEN": "S/",
}

// Money renders an amount with the symbol for the given currency code.
// Unknown codes fall back to the code itself as a prefix.
func Money(amount decimal.Decimal, currency string) string {
	symbol, ok := symbols[currency]
	if !ok {
		symbol = currency + " "
	}
	ac := accounting.Accounting{Symbol: symbol, Precision: 2}
	return ac.FormatMoneyDecimal(amount)
}
