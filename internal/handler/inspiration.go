package handler

import (
	"log/slog"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/service"
)

type inspirationHandler struct {
	inspirationService *service.InspirationService
}

func NewInspirationHandler(inspirationService *service.InspirationService) *inspirationHandler {
	return &inspirationHandler{inspirationService: inspirationService}
}

func (h *inspirationHandler) Sets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.inspirationService.Sets()
	if err != nil {
		slog.Error("failed to load inspiration sets", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load inspiration")
		return
	}

	respondJSON(w, http.StatusOK, sets)
}

func (h *inspirationHandler) Set(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	set, err := h.inspirationService.Set(slug)
	if err != nil {
		respondError(w, http.StatusNotFound, "Inspiration set not found")
		return
	}

	respondJSON(w, http.StatusOK, set)
}

func (h *inspirationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.inspirationService.RandomQuote()
	if err != nil {
		respondError(w, http.StatusNotFound, "No quotes available")
		return
	}

	respondJSON(w, http.StatusOK, quote)
}
