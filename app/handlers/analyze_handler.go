package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jmarinco/go-inventario/app/services"
	"github.com/unrolled/render"
)

// AnalyzeHandler fronts the AI product-entry assists. Analysis never fails
// outward: a broken collaborator yields a zero-confidence default the form
// can still pre-fill from.
type AnalyzeHandler struct {
	render   *render.Render
	analyzer *services.AnalyzerService
}

func NewAnalyzeHandler(r *render.Render, analyzer *services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{render: r, analyzer: analyzer}
}

type AnalyzeImageRequest struct {
	Image string `json:"image"`
}

func (h *AnalyzeHandler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" {
		respondBadRequest(h.render, w, "Falta la imagen en base64.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, h.analyzer.AnalyzeImage(r.Context(), req.Image))
}

type AnalyzeNameRequest struct {
	Name string `json:"name"`
}

func (h *AnalyzeHandler) AnalyzeName(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondBadRequest(h.render, w, "Falta el nombre del producto.")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, h.analyzer.AnalyzeProductByName(r.Context(), req.Name))
}
