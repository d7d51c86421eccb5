// Package kazllm is a client for the Hugging Face inference API, used to
// proofread Kazakh text produced by the content generator.
package kazllm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oyanquantum/oyan/internal/config"
)

// ErrEmptyResponse is returned when the API answers 200 with no generated text
var ErrEmptyResponse = errors.New("kazllm: empty response")

// StatusError is returned for non-2xx API responses
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kazllm: status %d: %s", e.Code, e.Body)
}

// Client runs a single text-in/text-out completion
type Client interface {
	Complete(ctx context.Context, prompt string, maxNewTokens int) (string, error)
}

type client struct {
	token      string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a Hugging Face inference client from configuration
func NewClient(cfg config.KazLLMConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		token:      cfg.Token,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type inferenceResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (c *client) Complete(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens:   maxNewTokens,
			Temperature:    0.1,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("kazllm: failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("kazllm: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("kazllm: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("kazllm: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	// The API returns either an array of generations or a single object
	var asList []inferenceResponse
	if err := json.Unmarshal(body, &asList); err == nil && len(asList) > 0 {
		if asList[0].GeneratedText == "" {
			return "", ErrEmptyResponse
		}
		return asList[0].GeneratedText, nil
	}

	var asObject inferenceResponse
	if err := json.Unmarshal(body, &asObject); err != nil {
		return "", fmt.Errorf("kazllm: failed to decode response: %w", err)
	}
	if asObject.GeneratedText == "" {
		return "", ErrEmptyResponse
	}
	return asObject.GeneratedText, nil
}
