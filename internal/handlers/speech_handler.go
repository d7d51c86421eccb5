package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/clients/azuretts"
	"github.com/oyanquantum/oyan/internal/services"
)

// SpeechService is the interface that wraps methods for text-to-speech business logic.
type SpeechService interface {
	// Method Synthesize produces MP3 audio for the given Kazakh text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// SpeechHandler handles text-to-speech HTTP requests
type SpeechHandler struct {
	BaseHandler
	speechService SpeechService
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(speechService SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		BaseHandler:   BaseHandler{logger: logger},
		speechService: speechService,
	}
}

// RegisterRoutes registers all speech handler routes.
// Routes require the auth middleware.
func (h *SpeechHandler) RegisterRoutes(r chi.Router) {
	r.Post("/speech", h.Synthesize)
}

type speechRequest struct {
	Text string `json:"text"`
}

// Synthesize handles POST /speech
// @Summary Synthesize Kazakh speech
// @Description Produce MP3 audio for the given text. Lesson audio is immutable, so clients may cache it for a day.
// @Tags speech
// @Accept json
// @Produce audio/mpeg
// @Security BearerAuth
// @Param request body speechRequest true "Text to speak"
// @Success 200 {file} binary "MP3 audio"
// @Failure 400 {object} map[string]string "Invalid request body or empty text"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 502 {object} map[string]string "Speech upstream failure"
// @Router /speech [post]
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserID(r.Context()); !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req speechRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	audio, err := h.speechService.Synthesize(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusBadGateway, upstreamDetail(err))
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		h.logger.Error("failed to write audio response", zap.Error(err))
	}
}

// upstreamDetail formats an upstream failure for the client, truncating the
// upstream body so error pages do not leak into mobile alerts.
func upstreamDetail(err error) string {
	var statusErr *azuretts.StatusError
	if errors.As(err, &statusErr) {
		body := statusErr.Body
		if len(body) > 200 {
			body = body[:200]
		}
		return fmt.Sprintf("speech service error %d: %s", statusErr.Code, body)
	}
	return "speech service unavailable"
}
