package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/youssefhammani/file-rouge-final/internal/api/middleware"
	"github.com/youssefhammani/file-rouge-final/internal/api/types"
	"github.com/youssefhammani/file-rouge-final/internal/api/validators"
	"github.com/youssefhammani/file-rouge-final/internal/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := h.auth.Register(r.Context(), &services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.Auth(token, u.PublicView()))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeErrorStr(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	token, u, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.Auth(token, u.PublicView()))
}

// Me returns the full stored profile of the authenticated user, minus the
// password hash.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	u, err := h.auth.CurrentUser(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.Envelope{Success: true, User: u})
}
