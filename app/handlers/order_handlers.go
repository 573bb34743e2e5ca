package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render *render.Render
	store  *store.Store
}

func NewOrderHandler(r *render.Render, st *store.Store) *OrderHandler {
	return &OrderHandler{render: r, store: st}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.store.Orders())
}

// CompleteOrder is terminal and decrements stock for every item.
func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.store.CompleteOrder)
}

// CancelOrder is terminal with no stock effect.
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.store.CancelOrder)
}

func (h *OrderHandler) finish(w http.ResponseWriter, r *http.Request, op func(string) (store.Mutation[store.Order], error)) {
	id := mux.Vars(r)["id"]
	mut, err := op(id)
	if err != nil {
		log.Printf("OrderHandler: transition blocked or failed for %s: %v", id, err)
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Pedido no encontrado o ya cerrado.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}
