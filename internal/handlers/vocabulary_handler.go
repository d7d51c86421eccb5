package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
)

// VocabularyService is the interface that wraps methods for learned-word business logic.
type VocabularyService interface {
	// Method List retrieves the user's learned words ordered by lesson.
	List(ctx context.Context, userID int) ([]models.VocabularyEntry, error)
}

// VocabularyHandler handles vocabulary HTTP requests
type VocabularyHandler struct {
	BaseHandler
	vocabularyService VocabularyService
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(vocabularyService VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		BaseHandler:       BaseHandler{logger: logger},
		vocabularyService: vocabularyService,
	}
}

// RegisterRoutes registers all vocabulary handler routes.
// Routes require the auth middleware.
func (h *VocabularyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/vocabulary", h.List)
}

// List handles GET /vocabulary
// @Summary List learned words
// @Tags vocabulary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.VocabularyEntry "Learned words ordered by lesson"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vocabulary [get]
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entries, err := h.vocabularyService.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list vocabulary", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to list vocabulary")
		return
	}
	if entries == nil {
		entries = []models.VocabularyEntry{}
	}

	h.respondJSON(w, http.StatusOK, entries)
}
