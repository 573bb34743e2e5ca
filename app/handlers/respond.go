package handlers

import (
	"errors"
	"net/http"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error      string            `json:"error"`
	PromptAuth bool              `json:"promptAuth,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// respondMutationError maps store errors to JSON. A gate denial becomes a
// 401 carrying the auth-prompt flag so the client opens the login modal.
func respondMutationError(r *render.Render, w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrAuthRequired) {
		_ = r.JSON(w, http.StatusUnauthorized, errorResponse{
			Error:      "Inicia sesión para continuar.",
			PromptAuth: true,
		})
		return
	}
	_ = r.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func respondValidationError(r *render.Render, w http.ResponseWriter, fields map[string]string) {
	_ = r.JSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:  "Datos inválidos.",
		Fields: fields,
	})
}

func respondBadRequest(r *render.Render, w http.ResponseWriter, msg string) {
	_ = r.JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func respondNotFound(r *render.Render, w http.ResponseWriter, msg string) {
	_ = r.JSON(w, http.StatusNotFound, errorResponse{Error: msg})
}
