// Package azuretts is a client for the Azure Cognitive Services
// text-to-speech REST endpoint.
package azuretts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oyanquantum/oyan/internal/config"
)

// OutputFormat is the audio container requested from Azure
const OutputFormat = "audio-16khz-128kbitrate-mono-mp3"

// ErrEmptyAudio is returned when the API answers 200 with no audio bytes
var ErrEmptyAudio = errors.New("azuretts: empty audio")

// StatusError is returned for non-2xx API responses
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("azuretts: status %d: %s", e.Code, e.Body)
}

// Client synthesizes Kazakh speech for a piece of text
type Client interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type client struct {
	endpoint   string
	key        string
	voice      string
	httpClient *http.Client
}

// NewClient creates an Azure TTS client from configuration
func NewClient(cfg config.SpeechConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		endpoint:   fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", cfg.Region),
		key:        cfg.Key,
		voice:      cfg.Voice,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ssml := fmt.Sprintf(
		"<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='kk-KZ'><voice name='%s'>%s</voice></speak>",
		c.voice, escapeXML(text),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("azuretts: failed to build request: %w", err)
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	httpReq.Header.Set("Content-Type", "application/ssml+xml")
	httpReq.Header.Set("X-Microsoft-OutputFormat", OutputFormat)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("azuretts: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("azuretts: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if len(body) == 0 {
		return nil, ErrEmptyAudio
	}
	return body, nil
}

// escapeXML escapes the characters that would break the SSML document
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
