package handlers

import (
	"net/http"
	"time"

	"github.com/jmarinco/go-inventario/app/services"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/unrolled/render"
)

type ReportHandler struct {
	render  *render.Render
	store   *store.Store
	reports *services.ReportService
}

func NewReportHandler(r *render.Render, st *store.Store, reports *services.ReportService) *ReportHandler {
	return &ReportHandler{render: r, store: st, reports: reports}
}

func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.reports.Summary(time.Now()))
}

func (h *ReportHandler) GetStagnant(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.store.StagnantProducts(time.Now()))
}

func (h *ReportHandler) GetABCClassification(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.store.ABCClassification())
}
