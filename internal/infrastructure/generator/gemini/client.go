// Package gemini implements the generation ports over Google's Gemini API.
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
	"github.com/comicjam/storyboard-api/internal/infrastructure/generator"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "imagen-4.0-generate-001"

	defaultImageMIME = "image/png"
)

var _ ports.Generator = (*Client)(nil)

// models is the subset of *genai.Models the client calls.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// Client generates images with Imagen and text with Gemini. Images are
// returned inline as data URLs.
type Client struct {
	models     models
	textModel  string
	imageModel string
	logger     zerolog.Logger
}

// NewClient creates a Gemini API client.
func NewClient(ctx context.Context, cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return newClient(gc.Models, cfg, logger), nil
}

func newClient(m models, cfg Config, logger zerolog.Logger) *Client {
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	return &Client{
		models:     m,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		logger:     logger.With().Str("provider", "gemini").Logger(),
	}
}

func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateImages(ctx, c.imageModel, generator.ImagePrompt(prompt), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: defaultImageMIME,
	})
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", errors.New("generate image: no image returned")
	}

	img := resp.GeneratedImages[0].Image
	if len(img.ImageBytes) == 0 {
		return "", errors.New("generate image: empty image")
	}
	mime := img.MIMEType
	if mime == "" {
		mime = defaultImageMIME
	}
	c.logger.Debug().Int("bytes", len(img.ImageBytes)).Str("mime", mime).Msg("image generated")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.ImageBytes), nil
}

func (c *Client) SuggestCaption(ctx context.Context, prompt string) (string, error) {
	text, err := c.text(ctx, generator.CaptionSystemPrompt, generator.CaptionPrompt(prompt), generator.CaptionMaxTokens, "")
	if err != nil {
		return "", fmt.Errorf("suggest caption: %w", err)
	}
	return text, nil
}

func (c *Client) GenerateTheme(ctx context.Context) (domain.ChallengeTheme, error) {
	text, err := c.text(ctx, generator.ThemeSystemPrompt, generator.ThemeUserPrompt, generator.ThemeMaxTokens, "application/json")
	if err != nil {
		return domain.ChallengeTheme{}, fmt.Errorf("generate theme: %w", err)
	}
	return generator.ParseTheme(text)
}

func (c *Client) text(ctx context.Context, system, user string, maxTokens int32, mime string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		MaxOutputTokens:   maxTokens,
		ResponseMIMEType:  mime,
	}
	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(user), cfg)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errors.New("empty response")
	}
	return strings.TrimSpace(resp.Text()), nil
}
