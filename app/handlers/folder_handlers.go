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

type FolderHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewFolderHandler(r *render.Render, st *store.Store, v *validator.Validate) *FolderHandler {
	return &FolderHandler{render: r, store: st, validator: v}
}

type FolderForm struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	ParentID   *string `json:"parentId"`
	Color      string  `json:"color" validate:"max=30"`
	Prefix     string  `json:"prefix" validate:"max=10"`
	Margin     string  `json:"margin" validate:"omitempty,numeric"`
	IsInternal bool    `json:"isInternal"`
}

func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.store.Folders())
}

// GetBreadcrumbs returns the root-to-leaf trail for a folder.
func (h *FolderHandler) GetBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_ = h.render.JSON(w, http.StatusOK, h.store.BreadcrumbsFrom(id))
}

func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var form FolderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		respondValidationError(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	margin := decimal.Zero
	if form.Margin != "" {
		var err error
		if margin, err = decimal.NewFromString(form.Margin); err != nil {
			respondBadRequest(h.render, w, "Margen inválido.")
			return
		}
	}

	mut, err := h.store.AddFolder(store.Folder{
		Name:       form.Name,
		ParentID:   form.ParentID,
		Color:      form.Color,
		Prefix:     form.Prefix,
		Margin:     margin,
		IsInternal: form.IsInternal,
	})
	if err != nil {
		log.Printf("CreateFolder: blocked or failed: %v", err)
		respondMutationError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, mut.Applied)
}

type FolderPatchRequest struct {
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	Prefix     *string `json:"prefix"`
	Margin     *string `json:"margin"`
	IsInternal *bool   `json:"isInternal"`
}

func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req FolderPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	patch := store.FolderPatch{
		Name:       req.Name,
		Color:      req.Color,
		Prefix:     req.Prefix,
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

	mut, err := h.store.UpdateFolder(id, patch)
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Carpeta no encontrada.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}

// MoveFolder reparents a folder. Cycles are not detected here; a cycle only
// degrades breadcrumb output, which is bounded.
func (h *FolderHandler) MoveFolder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	mut, err := h.store.MoveFolder(id, req.TargetFolderID)
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	if mut.Applied.ID == "" {
		respondNotFound(h.render, w, "Carpeta no encontrada.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}

func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.store.DeleteFolder(id); err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
