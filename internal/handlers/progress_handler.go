package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
)

// ProgressService is the interface that wraps methods for progression and placement business logic.
type ProgressService interface {
	// Method Get retrieves the user's stored progression.
	Get(ctx context.Context, userID int) (*models.ProgressResponse, error)
	// Method SyncProgress merges a progress value reported by the client with
	// the stored one and returns the resolved value.
	SyncProgress(ctx context.Context, userID, clientLevel int) (*models.ProgressResponse, error)
	// Method RecordAnswer records one placement test answer.
	RecordAnswer(ctx context.Context, userID int, correct bool, category models.AnswerCategory) error
	// Method FinishPlacement scores the recorded answers and assigns a level.
	FinishPlacement(ctx context.Context, userID int) (models.KazakhLevel, error)
}

// ProgressHandler handles progression and placement HTTP requests
type ProgressHandler struct {
	BaseHandler
	progressService ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     BaseHandler{logger: logger},
		progressService: progressService,
	}
}

// RegisterRoutes registers all progress handler routes.
// Routes require the auth middleware.
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/progress", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/sync", h.Sync)
	})
	r.Route("/placement", func(r chi.Router) {
		r.Post("/answers", h.RecordAnswer)
		r.Post("/finish", h.FinishPlacement)
	})
}

// Get handles GET /progress
// @Summary Get course progression
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProgressResponse "Stored progression"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress [get]
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	progress, err := h.progressService.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get progress", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to get progress")
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

type syncRequest struct {
	NumLevel int `json:"num_level"`
}

// Sync handles POST /progress/sync
// @Summary Sync course progression
// @Description Merge the device's progress with the stored one; the further of the two wins.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body syncRequest true "Device progress"
// @Success 200 {object} models.ProgressResponse "Resolved progression"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress/sync [post]
func (h *ProgressHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req syncRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	progress, err := h.progressService.SyncProgress(r.Context(), userID, req.NumLevel)
	if err != nil {
		h.logger.Error("failed to sync progress", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to sync progress")
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

type answerRequest struct {
	Correct  bool   `json:"correct"`
	Category string `json:"category"`
}

// RecordAnswer handles POST /placement/answers
// @Summary Record a placement test answer
// @Description Count one placement answer. Category is general or specialized; wrong answers are accepted but not counted.
// @Tags placement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body answerRequest true "Answer payload"
// @Success 204 "Answer recorded"
// @Failure 400 {object} map[string]string "Invalid request body or unknown category"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /placement/answers [post]
func (h *ProgressHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req answerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	category := models.AnswerCategory(req.Category)
	if category != models.AnswerCategoryGeneral && category != models.AnswerCategorySpecialized {
		h.respondError(w, http.StatusBadRequest, "category must be general or specialized")
		return
	}

	if err := h.progressService.RecordAnswer(r.Context(), userID, req.Correct, category); err != nil {
		h.logger.Error("failed to record answer", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to record answer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type placementResponse struct {
	Level models.KazakhLevel `json:"level"`
}

// FinishPlacement handles POST /placement/finish
// @Summary Finish the placement test
// @Description Score the recorded answers, store the assigned level and reset the counters.
// @Tags placement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} placementResponse "Assigned level"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /placement/finish [post]
func (h *ProgressHandler) FinishPlacement(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	level, err := h.progressService.FinishPlacement(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to finish placement", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to finish placement")
		return
	}

	h.respondJSON(w, http.StatusOK, placementResponse{Level: level})
}
