package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmarinco/go-inventario/app/helpers"
	"github.com/jmarinco/go-inventario/app/repositories"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	gate         *store.Gate
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, gate *store.Gate, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		gate:         gate,
		validator:    validator,
	}
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	DemoMode      bool   `json:"demoMode"`
	PromptAuth    bool   `json:"promptAuth"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Demo mode runs without a database, so there is nothing to log into.
	if h.userRepo == nil {
		_ = h.render.JSON(w, http.StatusServiceUnavailable, errorResponse{Error: "El modo demo no tiene cuentas."})
		return
	}

	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondBadRequest(h.render, w, "Cuerpo de la solicitud inválido.")
		return
	}
	form.Email = strings.TrimSpace(strings.ToLower(form.Email))

	if err := h.validator.Struct(form); err != nil {
		respondValidationError(h.render, w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("Login: error looking up user %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "Error del servidor."})
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(form.Password)) {
		_ = h.render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "Correo o contraseña incorrectos."})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("Login: error saving session for %s: %v", user.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "No se pudo crear la sesión."})
		return
	}

	h.gate.SetSession(user.ID)
	log.Printf("Login: session started for user %s", user.ID)
	_ = h.render.JSON(w, http.StatusOK, SessionResponse{
		Authenticated: true,
		UserID:        user.ID,
		DemoMode:      h.gate.DemoMode(),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: error clearing session: %v", err)
	}
	h.gate.ClearSession()
	_ = h.render.JSON(w, http.StatusOK, SessionResponse{DemoMode: h.gate.DemoMode()})
}

// Session reports the current auth state, including whether a denied
// mutation asked for the login prompt.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionStore.GetUserID(r)
	_ = h.render.JSON(w, http.StatusOK, SessionResponse{
		Authenticated: userID != "",
		UserID:        userID,
		DemoMode:      h.gate.DemoMode(),
		PromptAuth:    h.gate.AuthPromptRequested(),
	})
}

func (h *AuthHandler) DismissAuthPrompt(w http.ResponseWriter, r *http.Request) {
	h.gate.DismissAuthPrompt()
	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"dismissed": true})
}
