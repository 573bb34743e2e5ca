package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type SettingsHandler struct {
	render *render.Render
	store  *store.Store
}

func NewSettingsHandler(r *render.Render, st *store.Store) *SettingsHandler {
	return &SettingsHandler{render: r, store: st}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.store.Settings())
}

type SettingsPatchRequest struct {
	CompanyName      *string `json:"companyName"`
	Currency         *string `json:"currency"`
	TaxRate          *string `json:"taxRate"`
	WhatsAppNumber   *string `json:"whatsappNumber"`
	WhatsAppGreeting *string `json:"whatsappGreeting"`
	StagnantDays     *int    `json:"stagnantDays"`
}

// UpdateSettings merges edits locally only; forms preview changes without a
// remote write per keystroke. SaveSettings commits.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.render, w, "Cuerpo JSON inválido.")
		return
	}

	patch := store.SettingsPatch{
		CompanyName:      req.CompanyName,
		Currency:         req.Currency,
		WhatsAppNumber:   req.WhatsAppNumber,
		WhatsAppGreeting: req.WhatsAppGreeting,
		StagnantDays:     req.StagnantDays,
	}
	if req.TaxRate != nil {
		d, err := decimal.NewFromString(*req.TaxRate)
		if err != nil {
			respondBadRequest(h.render, w, "Tasa de impuesto inválida.")
			return
		}
		patch.TaxRate = &d
	}

	settings, err := h.store.UpdateSettings(patch)
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, settings)
}

// SaveSettings is the explicit "commit" for the edit/commit split.
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	mut, err := h.store.SaveSettings()
	if err != nil {
		respondMutationError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, mut.Applied)
}

type claimOfferResponse struct {
	Message  string            `json:"message"`
	Settings store.AppSettings `json:"settings"`
}

// ClaimOffer always confirms, whatever the remote outcome.
func (h *SettingsHandler) ClaimOffer(w http.ResponseWriter, r *http.Request) {
	mut, err := h.store.ClaimOffer()
	if err != nil {
		log.Printf("ClaimOffer: blocked: %v", err)
		respondMutationError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, claimOfferResponse{
		Message:  "¡Oferta activada! Ya tienes el plan Pro.",
		Settings: mut.Applied,
	})
}
