package ports

import (
	"context"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

// ImageGenerator turns a prompt into a URL identifying generated artwork.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// CaptionSuggester proposes a short caption for a panel prompt.
type CaptionSuggester interface {
	SuggestCaption(ctx context.Context, prompt string) (string, error)
}

// ThemeGenerator proposes a theme for a new challenge. Fields may come back
// empty; callers apply domain.ChallengeTheme.WithFallbacks.
type ThemeGenerator interface {
	GenerateTheme(ctx context.Context) (domain.ChallengeTheme, error)
}

// Generator bundles the three collaborators a provider implements.
type Generator interface {
	ImageGenerator
	CaptionSuggester
	ThemeGenerator
}

// GenerationCache stores generated results keyed by kind and prompt.
// A miss is reported as ok=false with a nil error.
type GenerationCache interface {
	Get(ctx context.Context, kind, prompt string) (value string, ok bool, err error)
	Set(ctx context.Context, kind, prompt, value string) error
}
