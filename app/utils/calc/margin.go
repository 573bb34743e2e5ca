package calc

import "github.com/shopspring/decimal"

// HistoricalMarginRate is the assumed markup when a supplier cost is not
// known and has to be backed out of a retail price.
var HistoricalMarginRate = decimal.NewFromFloat(0.30)

// EstimateCost backs a cost out of a retail price assuming the historical
// margin: cost = price * 0.7. A heuristic default, not a category-derived
// value.
func EstimateCost(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(HistoricalMarginRate)).Round(2)
}

// PriceWithMargin marks a cost up by a fractional margin.
func PriceWithMargin(cost, margin decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(1).Add(margin)).Round(2)
}

// CalculateTax applies a fractional tax rate to a base amount.
func CalculateTax(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Round(2)
}

// CalculateGrandTotal is base plus tax.
func CalculateGrandTotal(base, tax decimal.Decimal) decimal.Decimal {
	return base.Add(tax)
}
