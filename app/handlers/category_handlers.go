package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/jmarinco/go-inventario/app/helpers"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewCategoryHandler(r *render.Render, st *store.Store, v *validator.Validate) *CategoryHandler {
	return &CategoryHandler{render: r, store: st, validator: v}
}

type CategoryForm struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Prefix     string `json:"prefix" validate:"max=10"`
	Margin     string `json:"margin" validate:"omitempty,numeric"`
	Color      string `json:"color" validate:"max=30"`
	IsInternal bool   `json:"isInternal"`
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.store.Categories())
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		respondValidationError(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	margin := decimal.NewFromFloat(store.DefaultCategoryMargin)
	if form.Margin != "" {
		var err error
		if margin, err = decimal.NewFromString(form.Margin); err != nil {
			respondBadRequest(h.render, w, "Margen inválido.")
			return
		}
	}

	mut, err := h.store.AddCategory(store.CategoryConfig{
		Name:       form.Name,
		Prefix:     form.Prefix,
		Margin:     margin,
		Color:      form.Color,
		IsInternal: form.IsInternal,
	})
	if err != nil {
		log.Printf("CreateCategory: blocked or failed: %v", err)
		respondMutationError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, mut.Applied)
}

type CategoryPatchRequest struct {
	Name       *string `json:"name"`
	Prefix     *string `json:"prefix"`
	Margin     *string `json:"margin"`
	Color      *string `json:"color"`
	IsInternal *bool   `json:"isInternal"`
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req CategoryPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	patch := store.CategoryPatch{
		Name:       req.Name,
		Prefix:     req.Prefix,
		Color:      req.Color,
		IsInternal: req.IsInternal,
	}
	if req.Margin != nil {
		d, err := decimal.NewFromString(*req.Margin)
		if err != nil {
			respondBadRequest(h.render, w, "Margen inválido.")
			return
		}
		patch.Margin = &d
	}

	mut, err := h.store.UpdateCategory(id, patch)
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Categoría no encontrada.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.store.DeleteCategory(id); err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
