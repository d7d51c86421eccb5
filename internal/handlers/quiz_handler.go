package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/repositories"
)

// QuizService is the interface that wraps methods for the admin question bank.
type QuizService interface {
	// Method ListByCategory retrieves questions for one answer category.
	ListByCategory(ctx context.Context, category models.AnswerCategory) ([]models.QuizQuestion, error)
	// Method Create validates and stores a new question.
	Create(ctx context.Context, question *models.QuizQuestion) (int, error)
	// Method Delete removes a question by id.
	Delete(ctx context.Context, id int) error
}

// QuizHandler handles quiz question HTTP requests
type QuizHandler struct {
	BaseHandler
	quizService QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: BaseHandler{logger: logger},
		quizService: quizService,
	}
}

// RegisterRoutes registers the user-facing quiz routes.
// Routes require the auth middleware.
func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Get("/quiz-questions", h.List)
}

// RegisterAdminRoutes registers the admin quiz routes.
// Routes require the API key middleware.
func (h *QuizHandler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/admin/quiz-questions", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /quiz-questions
// @Summary List quiz questions
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param category query string true "Question category, general or specialized"
// @Success 200 {array} models.QuizQuestion "Questions"
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quiz-questions [get]
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	category := models.AnswerCategory(r.URL.Query().Get("category"))
	if category != models.AnswerCategoryGeneral && category != models.AnswerCategorySpecialized {
		h.respondError(w, http.StatusBadRequest, "category must be general or specialized")
		return
	}

	questions, err := h.quizService.ListByCategory(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list quiz questions", zap.Error(err), zap.String("category", string(category)))
		h.respondError(w, http.StatusInternalServerError, "failed to list quiz questions")
		return
	}
	if questions == nil {
		questions = []models.QuizQuestion{}
	}

	h.respondJSON(w, http.StatusOK, questions)
}

// Create handles POST /admin/quiz-questions
// @Summary Create a quiz question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.QuizQuestion true "Question payload"
// @Success 201 {object} map[string]int "Created question id"
// @Failure 400 {object} map[string]string "Invalid question"
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/quiz-questions [post]
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var question models.QuizQuestion
	if !h.decodeJSON(w, r, &question) {
		return
	}

	id, err := h.quizService.Create(r.Context(), &question)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// Delete handles DELETE /admin/quiz-questions/{id}
// @Summary Delete a quiz question
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question id"
// @Success 204 "Question removed"
// @Failure 400 {object} map[string]string "Invalid question id"
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/quiz-questions/{id} [delete]
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	if err := h.quizService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrQuestionNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to delete quiz question", zap.Error(err), zap.Int("id", id))
		h.respondError(w, http.StatusInternalServerError, "failed to delete quiz question")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
