package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/clients/azuretts"
)

// SpeechService turns Kazakh text into spoken audio
type SpeechService interface {
	// Method Synthesize produces MP3 audio for the given text.
	//
	// Returns ErrEmptyText for blank input. Upstream failures are passed
	// through so the handler can answer 502 with the upstream detail.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type speechService struct {
	tts    azuretts.Client
	logger *zap.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(tts azuretts.Client, logger *zap.Logger) SpeechService {
	return &speechService{
		tts:    tts,
		logger: logger,
	}
}

func (s *speechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		s.logger.Error("speech synthesis failed", zap.Error(err))
		return nil, err
	}
	return audio, nil
}
