// Package openai implements the generation ports over the OpenAI REST API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
	"github.com/comicjam/storyboard-api/internal/infrastructure/generator"
)

const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultImageModel = "dall-e-3"
	DefaultChatModel  = "gpt-4o"

	imageSize    = "1024x1024"
	imageQuality = "standard"
)

var _ ports.Generator = (*Client)(nil)

// Config configures Client. Zero values fall back to the defaults above.
type Config struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration
}

// Client calls /images/generations and /chat/completions.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultChatModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With().Str("provider", "openai").Logger(),
	}
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int32           `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// statusError is returned for non-2xx responses.
type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("openai: status %d: %s", e.code, e.msg)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= http.StatusInternalServerError
}

// GenerateImage returns the hosted URL of a DALL-E rendition of prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := imageRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  generator.ImagePrompt(prompt),
		N:       1,
		Size:    imageSize,
		Quality: imageQuality,
	}
	var resp imageResponse
	if err := c.do(ctx, "/images/generations", req, &resp); err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", errors.New("generate image: empty response")
	}
	return resp.Data[0].URL, nil
}

// SuggestCaption returns a short caption for prompt.
func (c *Client) SuggestCaption(ctx context.Context, prompt string) (string, error) {
	content, err := c.chat(ctx, chatRequest{
		Model: c.cfg.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: generator.CaptionSystemPrompt},
			{Role: "user", Content: generator.CaptionPrompt(prompt)},
		},
		MaxTokens: generator.CaptionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("suggest caption: %w", err)
	}
	return content, nil
}

// GenerateTheme asks for a JSON theme. Missing fields are left empty.
func (c *Client) GenerateTheme(ctx context.Context) (domain.ChallengeTheme, error) {
	content, err := c.chat(ctx, chatRequest{
		Model: c.cfg.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: generator.ThemeSystemPrompt},
			{Role: "user", Content: generator.ThemeUserPrompt},
		},
		MaxTokens:      generator.ThemeMaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.ChallengeTheme{}, fmt.Errorf("generate theme: %w", err)
	}
	return generator.ParseTheme(content)
}

func (c *Client) chat(ctx context.Context, req chatRequest) (string, error) {
	var resp chatResponse
	if err := c.do(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// do posts body to path and decodes the JSON answer into out, retrying
// rate limits, server errors and transport failures.
func (c *Client) do(ctx context.Context, path string, body, out any) error {
	if c.cfg.APIKey == "" {
		return errors.New("openai: API key not configured")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.Backoff << (attempt - 1)
			c.logger.Warn().Err(lastErr).Str("path", path).Int("attempt", attempt).
				Dur("delay", delay).Msg("retrying openai request")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = c.attempt(ctx, path, payload, out)
		if lastErr == nil {
			return nil
		}
		var se *statusError
		if errors.As(lastErr, &se) && !se.retryable() {
			return lastErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) attempt(ctx context.Context, path string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(data))
		var ae apiError
		if json.Unmarshal(data, &ae) == nil && ae.Error != nil {
			msg = ae.Error.Message
		}
		return &statusError{code: resp.StatusCode, msg: msg}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
