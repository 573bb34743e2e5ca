package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jmarinco/go-inventario/app/services"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/parse"
	"github.com/unrolled/render"
)

// maxImportBytes bounds the upload; the import is one synchronous in-memory
// pass over the whole file.
const maxImportBytes = 8 << 20

type ImportHandler struct {
	render   *render.Render
	store    *store.Store
	importer *services.ImportService
}

func NewImportHandler(r *render.Render, st *store.Store, importer *services.ImportService) *ImportHandler {
	return &ImportHandler{render: r, store: st, importer: importer}
}

type ImportResponse struct {
	Imported      int                `json:"imported"`
	NewCategories int                `json:"newCategories"`
	Skipped       []parse.SkippedRow `json:"skipped"`
}

// UploadCSV parses the uploaded file and feeds the results through the
// store's bulk-insert actions. Malformed rows are reported, never fatal.
func (h *ImportHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	content, err := readUpload(r)
	if err != nil {
		respondBadRequest(h.render, w, err.Error())
		return
	}

	outcome := h.importer.Parse(content, h.store.Categories(), len(h.store.Products()))

	if len(outcome.NewCategories) > 0 {
		if _, err := h.store.BulkAddCategories(outcome.NewCategories); err != nil {
			respondMutationError(h.render, w, err)
			return
		}
	}
	if len(outcome.Products) > 0 {
		if _, err := h.store.BulkAddProducts(outcome.Products); err != nil {
			respondMutationError(h.render, w, err)
			return
		}
	}

	log.Printf("UploadCSV: imported %d products, %d new categories, %d skipped rows",
		len(outcome.Products), len(outcome.NewCategories), len(outcome.Skipped))

	_ = h.render.JSON(w, http.StatusOK, ImportResponse{
		Imported:      len(outcome.Products),
		NewCategories: len(outcome.NewCategories),
		Skipped:       outcome.Skipped,
	})
}

func readUpload(r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxImportBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("falta el archivo CSV en el campo 'file'")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("no se pudo leer el archivo: %w", err)
	}
	return string(raw), nil
}

// DownloadTemplate serves the example file buyers fill in.
func (h *ImportHandler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.TemplateFileName))
	_, _ = w.Write([]byte(h.importer.Template()))
}
