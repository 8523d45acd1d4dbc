// Package generator holds the prompt templates and response parsing shared by
// the provider adapters in its subpackages.
package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

const (
	CaptionSystemPrompt = "You are a creative comic book writer who excels at writing concise, engaging captions for comic panels. Keep captions short (under 100 characters) and impactful."

	ThemeSystemPrompt = "You are a creative director for comic book challenges. Generate engaging themes for collaborative comic strip creation."

	ThemeUserPrompt = "Generate a new challenge theme for a collaborative comic strip. Include a catchy title, brief description (1-2 sentences), 2-3 genre tags, and a main category (Sci-Fi, Fantasy, Horror, Adventure, Mystery, or Comedy). Format as JSON."
)

// Output token budgets per request.
const (
	CaptionMaxTokens int32 = 100
	ThemeMaxTokens   int32 = 250
)

// ImagePrompt steers the image model towards a comic panel look.
func ImagePrompt(prompt string) string {
	return fmt.Sprintf("Comic panel style illustration: %s. Detailed, colorful, with clear characters and action, suitable for a comic strip or storyboard. No text or speech bubbles in the image.", prompt)
}

// CaptionPrompt asks for a speech-bubble sized caption for prompt.
func CaptionPrompt(prompt string) string {
	return fmt.Sprintf("Based on this description of a comic panel, suggest a short caption or dialog text that would work well in a speech bubble: \"%s\"", prompt)
}

// ParseTheme decodes a model's JSON answer. Markdown code fences are
// tolerated; an empty answer yields a zero theme. Fallbacks are left to the
// caller.
func ParseTheme(raw string) (domain.ChallengeTheme, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.ChallengeTheme{}, nil
	}

	var theme domain.ChallengeTheme
	if err := json.Unmarshal([]byte(raw), &theme); err != nil {
		return domain.ChallengeTheme{}, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}
