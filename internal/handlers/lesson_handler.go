package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/services"
)

// LessonService is the interface that wraps methods for course map business logic.
type LessonService interface {
	// Method List retrieves all course nodes with the user's unlock state.
	List(ctx context.Context, userID int) (*models.LessonListResponse, error)
	// Method Complete processes a finished lesson and returns the updated progression.
	Complete(ctx context.Context, userID, lessonID int) (*models.ProgressResponse, error)
}

// ContentService is the interface that wraps methods for lesson content loading.
type ContentService interface {
	// Method LoadContent returns lesson content for the given lesson and
	// language, from cache, generation or the bundled fallback.
	LoadContent(ctx context.Context, lessonID int, lang string) (models.GeneratedLessonContent, error)
}

// LessonHandler handles lesson-related HTTP requests
type LessonHandler struct {
	BaseHandler
	lessonService  LessonService
	contentService ContentService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService LessonService, contentService ContentService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler:    BaseHandler{logger: logger},
		lessonService:  lessonService,
		contentService: contentService,
	}
}

// RegisterRoutes registers all lesson handler routes.
// Routes require the auth middleware.
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}/content", h.Content)
		r.Post("/{id}/complete", h.Complete)
	})
}

// List handles GET /lessons
// @Summary List course lessons
// @Description All 11 course nodes with the requesting user's unlock state.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LessonListResponse "Course map"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons [get]
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	resp, err := h.lessonService.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list lessons", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to list lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Content handles GET /lessons/{id}/content
// @Summary Get lesson content
// @Description Slides, examples and quiz for one lesson. Served from cache when warm; falls back to bundled content when generation is unavailable.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson id (1-11)"
// @Param lang query string false "Explanation language, en or ru" default(en)
// @Success 200 {object} models.GeneratedLessonContent "Lesson content"
// @Failure 400 {object} map[string]string "Invalid lesson id"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/content [get]
func (h *LessonHandler) Content(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserID(r.Context()); !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang != "ru" {
		lang = "en"
	}

	content, err := h.contentService.LoadContent(r.Context(), lessonID, lang)
	if err != nil {
		if errors.Is(err, services.ErrLessonNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to load lesson content", zap.Error(err), zap.Int("lesson_id", lessonID))
		h.respondError(w, http.StatusInternalServerError, "failed to load lesson content")
		return
	}

	h.respondJSON(w, http.StatusOK, content)
}

// Complete handles POST /lessons/{id}/complete
// @Summary Complete a lesson
// @Description Record a finished lesson: the lesson's words join the user's vocabulary and the next lesson unlocks. Safe to repeat.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson id (1-11)"
// @Success 200 {object} models.ProgressResponse "Updated progression"
// @Failure 400 {object} map[string]string "Invalid lesson id"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/complete [post]
func (h *LessonHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	progress, err := h.lessonService.Complete(r.Context(), userID, lessonID)
	if err != nil {
		if errors.Is(err, services.ErrLessonNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to complete lesson", zap.Error(err),
			zap.Int("user_id", userID), zap.Int("lesson_id", lessonID))
		h.respondError(w, http.StatusInternalServerError, "failed to complete lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}
