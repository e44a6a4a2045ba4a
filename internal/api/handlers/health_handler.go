package handlers

import (
	"net/http"

	"github.com/youssefhammani/file-rouge-final/internal/api/types"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.OK(map[string]string{"status": "ok"}))
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.OK(map[string]string{"status": "ready"}))
}
