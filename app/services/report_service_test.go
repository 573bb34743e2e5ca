package services

import (
	"testing"
	"time"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	st := demoStore()
	now := time.Now()
	old := now.AddDate(0, 0, -90)

	p1, _ := st.AddProduct(store.Product{
		Name: "Olla", Cost: decimal.NewFromInt(70), Price: decimal.NewFromInt(100),
		Stock: 10, EntryDate: &old,
	})
	_, _ = st.AddProduct(store.Product{
		Name: "Sartén", Cost: decimal.NewFromInt(30), Price: decimal.NewFromInt(50), Stock: 2,
	})

	_, _ = st.CreateOrder("Ana", []store.OrderItem{
		{ProductID: p1.Applied.ID, Name: "Olla", Quantity: 1, Price: decimal.NewFromInt(100)},
	})
	done, _ := st.CreateOrder("Luis", []store.OrderItem{
		{ProductID: p1.Applied.ID, Name: "Olla", Quantity: 2, Price: decimal.NewFromInt(100)},
	})
	_, _ = st.CompleteOrder(done.Applied.ID)
	cancelled, _ := st.CreateOrder("Eva", nil)
	_, _ = st.CancelOrder(cancelled.Applied.ID)

	summary := NewReportService(st).Summary(now)

	assert.Equal(t, 2, summary.ProductCount)
	assert.Equal(t, 10, summary.TotalUnits, "completed order already moved stock")
	assert.Equal(t, "$620.00", summary.InventoryCost)
	assert.Equal(t, "$900.00", summary.InventoryRetail)
	assert.Equal(t, "$280.00", summary.PotentialProfit)

	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 1, summary.CompletedOrders)
	assert.Equal(t, 1, summary.CancelledOrders)
	assert.Equal(t, "$200.00", summary.CompletedRevenue)

	assert.Equal(t, 1, summary.StagnantCount)
	require.NotNil(t, summary.ABCCounts)
	assert.Equal(t, 2, summary.ABCCounts["A"]+summary.ABCCounts["B"]+summary.ABCCounts["C"])
}
