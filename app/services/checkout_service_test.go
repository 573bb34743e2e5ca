package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoStore() *store.Store {
	return store.New(store.NewGate(true, false), nil, nil)
}

func TestCheckoutCreatesPendingOrderAndLink(t *testing.T) {
	st := demoStore()
	p, _ := st.AddProduct(store.Product{Name: "Olla de Acero", Price: decimal.NewFromInt(450), Stock: 5})
	_, _ = st.UpdateSettings(store.SettingsPatch{
		WhatsAppNumber: strPtr("+52 1 55 1234-5678"),
	})

	result, err := NewCheckoutService(st).Checkout("Ana", []store.OrderItem{
		{ProductID: p.Applied.ID, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, store.OrderStatusPending, result.Order.Status)
	assert.Equal(t, "900", result.Order.TotalAmount.String())
	assert.Equal(t, "Ana", result.Order.CustomerName)

	// Item details come from the catalog, not from the request.
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, "Olla de Acero", result.Order.Items[0].Name)
	assert.Equal(t, "450", result.Order.Items[0].Price.String())

	assert.True(t, strings.HasPrefix(result.WhatsAppLink, "https://wa.me/5215512345678?text="), result.WhatsAppLink)

	// Stock is not reserved at checkout.
	got, _ := st.ProductByID(p.Applied.ID)
	assert.Equal(t, 5, got.Stock)
}

func TestCheckoutRejectsBadRequests(t *testing.T) {
	st := demoStore()
	p, _ := st.AddProduct(store.Product{Name: "Olla", Price: decimal.NewFromInt(450)})
	svc := NewCheckoutService(st)

	_, err := svc.Checkout("Ana", nil)
	assert.Error(t, err)

	_, err = svc.Checkout("Ana", []store.OrderItem{{ProductID: "nope", Quantity: 1}})
	assert.Error(t, err)

	_, err = svc.Checkout("Ana", []store.OrderItem{{ProductID: p.Applied.ID, Quantity: 0}})
	assert.Error(t, err)

	assert.Empty(t, st.Orders(), "rejected checkouts create no orders")
}

func TestBuildWhatsAppLinkMessage(t *testing.T) {
	settings := store.DefaultSettings()
	settings.WhatsAppNumber = "5215512345678"
	order := store.Order{
		ID:           "ord-1",
		CustomerName: "Ana",
		TotalAmount:  decimal.NewFromInt(900),
		Items: []store.OrderItem{
			{Name: "Olla de Acero", Quantity: 2, Price: decimal.NewFromInt(450)},
		},
	}

	link := BuildWhatsAppLink(settings, order)
	parsed, err := url.Parse(link)
	require.NoError(t, err)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Hola, quiero hacer un pedido:")
	assert.Contains(t, text, "2 x Olla de Acero ($450.00)")
	assert.Contains(t, text, "Total: $900.00")
	assert.Contains(t, text, "Cliente: Ana")
	assert.Contains(t, text, "Pedido: ord-1")
}

func strPtr(s string) *string { return &s }
