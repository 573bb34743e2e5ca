package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/jmarinco/go-inventario/app/helpers"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewProductHandler(r *render.Render, st *store.Store, v *validator.Validate) *ProductHandler {
	return &ProductHandler{render: r, store: st, validator: v}
}

type ProductForm struct {
	Name             string   `json:"name" validate:"required,min=2,max=255"`
	Category         string   `json:"category" validate:"required,max=100"`
	Brand            string   `json:"brand" validate:"max=100"`
	Tags             []string `json:"tags"`
	SKU              string   `json:"sku" validate:"max=100"`
	Cost             string   `json:"cost" validate:"omitempty,numeric"`
	Price            string   `json:"price" validate:"required,numeric"`
	Stock            int      `json:"stock" validate:"gte=0"`
	ImageURL         string   `json:"imageUrl"`
	Description      string   `json:"description"`
	FolderID         *string  `json:"folderId"`
	EntryDate        *string  `json:"entryDate"`
	SupplierWarranty *string  `json:"supplierWarranty"`
	Confidence       *float64 `json:"confidence"`
}

// ListProducts applies the filter query parameters and returns the matching
// inventory slice.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.FilterState{
		Query:    q.Get("q"),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
	}
	if cats, ok := q["category"]; ok {
		filter.Categories = cats
	}
	if tags, ok := q["tag"]; ok {
		filter.Tags = tags
	}
	if raw := q.Get("max_stock"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.MaxStock = &n
		}
	}

	_ = h.render.JSON(w, http.StatusOK, h.store.FilteredInventory(filter))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, ok := h.store.ProductByID(id)
	if !ok {
		respondNotFound(h.render, w, "Producto no encontrado.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		respondValidationError(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	product, err := formToProduct(form)
	if err != nil {
		respondBadRequest(h.render, w, err.Error())
		return
	}

	mut, err := h.store.AddProduct(product)
	if err != nil {
		log.Printf("CreateProduct: blocked or failed: %v", err)
		respondMutationError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, mut.Applied)
}

func formToProduct(form ProductForm) (store.Product, error) {
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return store.Product{}, err
	}
	var cost decimal.Decimal
	if form.Cost != "" {
		if cost, err = decimal.NewFromString(form.Cost); err != nil {
			return store.Product{}, err
		}
	}

	p := store.Product{
		Name:        form.Name,
		Category:    form.Category,
		Brand:       form.Brand,
		Tags:        form.Tags,
		SKU:         form.SKU,
		Cost:        cost,
		Price:       price,
		Stock:       form.Stock,
		ImageURL:    form.ImageURL,
		Description: form.Description,
		FolderID:    form.FolderID,
		Confidence:  form.Confidence,
	}
	if form.EntryDate != nil {
		if t, err := time.Parse(time.RFC3339, *form.EntryDate); err == nil {
			p.EntryDate = &t
		}
	}
	if form.SupplierWarranty != nil {
		if t, err := time.Parse(time.RFC3339, *form.SupplierWarranty); err == nil {
			p.SupplierWarranty = &t
		}
	}
	return p, nil
}

type ProductPatchRequest struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Brand       *string   `json:"brand"`
	Tags        *[]string `json:"tags"`
	SKU         *string   `json:"sku"`
	Cost        *string   `json:"cost"`
	Price       *string   `json:"price"`
	Stock       *int      `json:"stock"`
	ImageURL    *string   `json:"imageUrl"`
	Description *string   `json:"description"`
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ProductPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	patch := store.ProductPatch{
		Name:        req.Name,
		Category:    req.Category,
		Brand:       req.Brand,
		Tags:        req.Tags,
		SKU:         req.SKU,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	if req.Cost != nil {
		d, err := decimal.NewFromString(*req.Cost)
		if err != nil {
			respondBadRequest(h.render, w, "Costo inválido.")
			return
		}
		patch.Cost = &d
	}
	if req.Price != nil {
		d, err := decimal.NewFromString(*req.Price)
		if err != nil {
			respondBadRequest(h.render, w, "Precio inválido.")
			return
		}
		patch.Price = &d
	}

	mut, err := h.store.UpdateProduct(id, patch)
	if err != nil {
		log.Printf("UpdateProduct: blocked or failed for %s: %v", id, err)
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Producto no encontrado.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.store.DeleteProduct(id); err != nil {
		log.Printf("DeleteProduct: blocked or failed for %s: %v", id, err)
		respondMutationError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) IncrementStock(w http.ResponseWriter, r *http.Request) {
	h.stockChange(w, r, h.store.IncrementStock)
}

func (h *ProductHandler) DecrementStock(w http.ResponseWriter, r *http.Request) {
	h.stockChange(w, r, h.store.DecrementStock)
}

func (h *ProductHandler) stockChange(w http.ResponseWriter, r *http.Request, change func(string) (store.Mutation[store.Product], error)) {
	id := mux.Vars(r)["id"]
	mut, err := change(id)
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Producto no encontrado.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}

type MoveRequest struct {
	TargetFolderID *string `json:"targetFolderId"`
}

func (h *ProductHandler) MoveProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	mut, err := h.store.MoveProduct(id, req.TargetFolderID)
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Producto no encontrado.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}
