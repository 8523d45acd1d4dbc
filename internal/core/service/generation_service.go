package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
	"github.com/comicjam/storyboard-api/internal/pkg/metrics"
)

// Generation kinds, used as cache namespaces and metric labels.
const (
	kindImage   = "image"
	kindCaption = "caption"
	kindTheme   = "theme"
)

// GenerationService fronts the external generator. Identical concurrent
// prompts share one upstream call, and image and caption results are cached
// when a cache is configured. Upstream failures are reported as
// domain.ErrGenerationFailed.
type GenerationService struct {
	gen    ports.Generator
	cache  ports.GenerationCache
	group  singleflight.Group
	logger zerolog.Logger
}

// NewGenerationService accepts a nil cache.
func NewGenerationService(gen ports.Generator, cache ports.GenerationCache, logger zerolog.Logger) *GenerationService {
	return &GenerationService{gen: gen, cache: cache, logger: logger}
}

func (s *GenerationService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return s.produce(ctx, kindImage, prompt, s.gen.GenerateImage)
}

func (s *GenerationService) SuggestCaption(ctx context.Context, prompt string) (string, error) {
	return s.produce(ctx, kindCaption, prompt, s.gen.SuggestCaption)
}

// GenerateTheme is never cached: every call should yield a fresh theme.
func (s *GenerationService) GenerateTheme(ctx context.Context) (domain.ChallengeTheme, error) {
	start := time.Now()
	theme, err := s.gen.GenerateTheme(ctx)
	metrics.GenerationDuration.WithLabelValues(kindTheme).Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.ChallengeTheme{}, s.fail(kindTheme, err)
	}
	metrics.GenerationRequestsTotal.WithLabelValues(kindTheme, "ok").Inc()
	return theme.WithFallbacks(), nil
}

func (s *GenerationService) produce(
	ctx context.Context,
	kind, prompt string,
	call func(context.Context, string) (string, error),
) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", domain.ErrInvalidPrompt
	}

	if v, ok := s.lookup(ctx, kind, prompt); ok {
		metrics.GenerationRequestsTotal.WithLabelValues(kind, "cache_hit").Inc()
		return v, nil
	}

	v, err, shared := s.group.Do(kind+"\x00"+prompt, func() (any, error) {
		// The flight outlives any single caller, so it must not inherit
		// one caller's cancellation.
		flightCtx := context.WithoutCancel(ctx)

		start := time.Now()
		out, err := call(flightCtx, prompt)
		metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		if err != nil {
			return "", err
		}
		if out == "" && kind == kindImage {
			return "", errors.New("empty image url")
		}
		s.remember(flightCtx, kind, prompt, out)
		return out, nil
	})
	if err != nil {
		return "", s.fail(kind, err)
	}

	result := "ok"
	if shared {
		result = "shared"
	}
	metrics.GenerationRequestsTotal.WithLabelValues(kind, result).Inc()
	return v.(string), nil
}

func (s *GenerationService) lookup(ctx context.Context, kind, prompt string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	v, ok, err := s.cache.Get(ctx, kind, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Str("kind", kind).Msg("generation cache lookup failed")
		return "", false
	}
	return v, ok
}

func (s *GenerationService) remember(ctx context.Context, kind, prompt, value string) {
	if s.cache == nil || value == "" {
		return
	}
	if err := s.cache.Set(ctx, kind, prompt, value); err != nil {
		s.logger.Warn().Err(err).Str("kind", kind).Msg("generation cache store failed")
	}
}

func (s *GenerationService) fail(kind string, err error) error {
	metrics.GenerationRequestsTotal.WithLabelValues(kind, "error").Inc()
	s.logger.Error().Err(err).Str("kind", kind).Msg("generation failed")
	return fmt.Errorf("%w: %s: %w", domain.ErrGenerationFailed, kind, err)
}
