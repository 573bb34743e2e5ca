package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jmarinco/go-inventario/app/services"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/unrolled/render"
)

// CatalogHandler serves the public buyer-facing surface: the storefront
// catalog and the WhatsApp checkout.
type CatalogHandler struct {
	render   *render.Render
	store    *store.Store
	checkout *services.CheckoutService
}

func NewCatalogHandler(r *render.Render, st *store.Store, checkout *services.CheckoutService) *CatalogHandler {
	return &CatalogHandler{render: r, store: st, checkout: checkout}
}

type catalogItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand,omitempty"`
	Tags        []string `json:"tags"`
	Price       string   `json:"price"`
	InStock     bool     `json:"inStock"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description,omitempty"`
}

// GetCatalog lists sellable products: internal categories and folders are
// excluded, costs and stock counts are not exposed.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	products := h.store.PublicCatalog()
	items := make([]catalogItem, len(products))
	for i, p := range products {
		items[i] = catalogItem{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Brand:       p.Brand,
			Tags:        p.Tags,
			Price:       p.Price.StringFixed(2),
			InStock:     p.Stock > 0,
			ImageURL:    p.ImageURL,
			Description: p.Description,
		}
	}
	_ = h.render.JSON(w, http.StatusOK, items)
}

type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
	Items        []struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

// Checkout creates a pending order and returns the wa.me link carrying the
// order summary. Stock moves only when the merchant completes the order.
func (h *CatalogHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	items := make([]store.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = store.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	result, err := h.checkout.Checkout(req.CustomerName, items)
	if err != nil {
		log.Printf("Checkout: failed: %v", err)
		respondBadRequest(h.render, w, err.Error())
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, result)
}
