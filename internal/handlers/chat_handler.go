package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/services"
)

// ChatService is the interface that wraps methods for tutor chat business logic.
type ChatService interface {
	// Method Send processes one user message and produces the tutor's reply.
	//
	// Returns services.ErrQuotaExceeded when the user has used up the free message quota.
	Send(ctx context.Context, userID int, text, lang string) (string, error)
	// Method History retrieves the user's messages in chronological order.
	History(ctx context.Context, userID int) ([]models.ChatMessage, error)
	// Method Clear removes the user's entire conversation.
	Clear(ctx context.Context, userID int) error
}

// ChatHandler handles tutor chat HTTP requests
type ChatHandler struct {
	BaseHandler
	chatService ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: BaseHandler{logger: logger},
		chatService: chatService,
	}
}

// RegisterRoutes registers all chat handler routes.
// Routes require the auth middleware.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/chat/messages", func(r chi.Router) {
		r.Get("/", h.History)
		r.Post("/", h.Send)
		r.Delete("/", h.Clear)
	})
}

// History handles GET /chat/messages
// @Summary Get chat history
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChatMessage "Messages in chronological order"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat/messages [get]
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	messages, err := h.chatService.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load chat history", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to load chat history")
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	h.respondJSON(w, http.StatusOK, messages)
}

// Send handles POST /chat/messages
// @Summary Send a chat message
// @Description Send one message to the Kazakh tutor and receive the reply.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatSendRequest true "Message payload"
// @Success 200 {object} models.ChatSendResponse "Tutor reply"
// @Failure 400 {object} map[string]string "Invalid request body or empty text"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 429 {object} map[string]any "Message quota exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat/messages [post]
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ChatSendRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.chatService.Send(r.Context(), userID, req.Text, req.Lang)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuotaExceeded):
			h.respondJSON(w, http.StatusTooManyRequests, map[string]any{
				"error":          err.Error(),
				"quota_exceeded": true,
			})
		case errors.Is(err, services.ErrEmptyText):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to send chat message", zap.Error(err), zap.Int("user_id", userID))
			h.respondError(w, http.StatusInternalServerError, "failed to send chat message")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, models.ChatSendResponse{Reply: reply})
}

// Clear handles DELETE /chat/messages
// @Summary Clear chat history
// @Tags chat
// @Security BearerAuth
// @Success 204 "History removed"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat/messages [delete]
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.chatService.Clear(r.Context(), userID); err != nil {
		h.logger.Error("failed to clear chat history", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to clear chat history")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
