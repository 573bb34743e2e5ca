package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	cost := EstimateCost(decimal.NewFromInt(100))
	assert.True(t, cost.Equal(decimal.NewFromInt(70)), "got %s", cost)

	cost = EstimateCost(decimal.NewFromFloat(449.99))
	assert.Equal(t, "314.99", cost.StringFixed(2))

	assert.True(t, EstimateCost(decimal.Zero).IsZero())
}

func TestPriceWithMargin(t *testing.T) {
	price := PriceWithMargin(decimal.NewFromInt(70), decimal.NewFromFloat(0.30))
	assert.True(t, price.Equal(decimal.NewFromInt(91)), "got %s", price)
}

func TestCalculateGrandTotal(t *testing.T) {
	base := decimal.NewFromInt(100)
	tax := CalculateTax(base, decimal.NewFromFloat(0.16))
	assert.Equal(t, "16.00", tax.StringFixed(2))
	assert.Equal(t, "116.00", CalculateGrandTotal(base, tax).StringFixed(2))
}
