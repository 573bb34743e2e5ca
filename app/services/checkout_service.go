package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/format"
)

// CheckoutService turns a buyer's cart into a pending order plus a WhatsApp
// deep link carrying the order summary. Payment and delivery are arranged
// over the chat; nothing here talks to a payment gateway.
type CheckoutService struct {
	store *store.Store
}

func NewCheckoutService(st *store.Store) *CheckoutService {
	return &CheckoutService{store: st}
}

// CheckoutResult pairs the created order with the link the buyer opens.
type CheckoutResult struct {
	Order        store.Order `json:"order"`
	WhatsAppLink string      `json:"whatsappLink"`
}

// Checkout validates the requested items against the catalog, creates a
// pending order through the store's two-phase path, and builds the link.
// Quantities are not reserved; stock only moves when the order completes.
func (s *CheckoutService) Checkout(customerName string, requested []store.OrderItem) (*CheckoutResult, error) {
	if len(requested) == 0 {
		return nil, fmt.Errorf("el pedido no tiene artículos")
	}

	items := make([]store.OrderItem, 0, len(requested))
	for _, it := range requested {
		p, ok := s.store.ProductByID(it.ProductID)
		if !ok {
			return nil, fmt.Errorf("producto no encontrado: %s", it.ProductID)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad inválida para %s", p.Name)
		}
		items = append(items, store.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			Price:     p.Price,
		})
	}

	mut, err := s.store.CreateOrder(customerName, items)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:        mut.Applied,
		WhatsAppLink: BuildWhatsAppLink(s.store.Settings(), mut.Applied),
	}, nil
}

// BuildWhatsAppLink renders the order as a wa.me link with the message
// URL-encoded in the text parameter.
func BuildWhatsAppLink(settings store.AppSettings, order store.Order) string {
	var b strings.Builder
	if settings.WhatsAppGreeting != "" {
		b.WriteString(settings.WhatsAppGreeting)
		b.WriteString("\n\n")
	}
	for _, it := range order.Items {
		fmt.Fprintf(&b, "%d x %s (%s)\n", it.Quantity, it.Name, format.Money(it.Price, settings.Currency))
	}
	fmt.Fprintf(&b, "\nTotal: %s", format.Money(order.TotalAmount, settings.Currency))
	if order.CustomerName != "" {
		fmt.Fprintf(&b, "\nCliente: %s", order.CustomerName)
	}
	fmt.Fprintf(&b, "\nPedido: %s", order.ID)

	number := strings.NewReplacer("+", "", " ", "", "-", "").Replace(settings.WhatsAppNumber)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(b.String()))
}
