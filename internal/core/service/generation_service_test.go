package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

func TestGenerateImage_BlankPromptRejected(t *testing.T) {
	gen := &stubGenerator{image: "https://img/1.png"}
	svc := NewGenerationService(gen, nil, zerolog.Nop())

	_, err := svc.GenerateImage(context.Background(), "   ")
	if !errors.Is(err, domain.ErrInvalidPrompt) || !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrInvalidPrompt, got %v", err)
	}
	if gen.calls.Load() != 0 {
		t.Error("generator must not be called for a blank prompt")
	}
}

func TestGenerateImage_CachesResult(t *testing.T) {
	gen := &stubGenerator{image: "https://img/1.png"}
	cache := newMapCache()
	svc := NewGenerationService(gen, cache, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		url, err := svc.GenerateImage(ctx, "a lighthouse")
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if url != "https://img/1.png" {
			t.Errorf("call %d: unexpected url %q", i, url)
		}
	}
	if gen.calls.Load() != 1 {
		t.Errorf("expected 1 upstream call, got %d", gen.calls.Load())
	}
	if _, ok, _ := cache.Get(ctx, kindImage, "a lighthouse"); !ok {
		t.Error("result should be cached under the image kind")
	}
}

func TestSuggestCaption_CacheErrorFallsThrough(t *testing.T) {
	gen := &stubGenerator{caption: "Look out!"}
	cache := newMapCache()
	cache.getErr = errors.New("connection refused")
	svc := NewGenerationService(gen, cache, zerolog.Nop())

	caption, err := svc.SuggestCaption(context.Background(), "a falling piano")
	if err != nil {
		t.Fatalf("cache failures must not fail the request: %v", err)
	}
	if caption != "Look out!" {
		t.Errorf("unexpected caption %q", caption)
	}
}

func TestGenerate_UpstreamErrorWrapped(t *testing.T) {
	boom := errors.New("upstream 500")
	cache := newMapCache()
	svc := NewGenerationService(&stubGenerator{err: boom}, cache, zerolog.Nop())

	_, err := svc.GenerateImage(context.Background(), "a storm")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("cause should stay inspectable, got %v", err)
	}
	if cache.sets != 0 {
		t.Error("failures must not be cached")
	}
}

func TestGenerateImage_EmptyURLIsFailure(t *testing.T) {
	svc := NewGenerationService(&stubGenerator{}, nil, zerolog.Nop())
	if _, err := svc.GenerateImage(context.Background(), "x"); !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateImage_ConcurrentIdenticalPromptsShareOneCall(t *testing.T) {
	gen := &stubGenerator{
		image:   "https://img/shared.png",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewGenerationService(gen, newMapCache(), zerolog.Nop())
	ctx := context.Background()

	const callers = 10
	results := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = svc.GenerateImage(ctx, "a parade")
	}()
	<-gen.started

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GenerateImage(ctx, "a parade")
		}(i)
	}
	// Let the followers reach the flight before the leader returns.
	time.Sleep(50 * time.Millisecond)
	close(gen.release)
	wg.Wait()

	for i := range results {
		if errs[i] != nil || results[i] != "https://img/shared.png" {
			t.Errorf("caller %d: got %q, %v", i, results[i], errs[i])
		}
	}
	// Callers either joined the flight or hit the cache it filled.
	if gen.calls.Load() != 1 {
		t.Errorf("expected 1 upstream call, got %d", gen.calls.Load())
	}
}

func TestGenerateTheme_AppliesFallbacksPerField(t *testing.T) {
	gen := &stubGenerator{theme: domain.ChallengeTheme{Title: "Robot Rebellion", Category: "Sci-Fi"}}
	svc := NewGenerationService(gen, newMapCache(), zerolog.Nop())

	theme, err := svc.GenerateTheme(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.Title != "Robot Rebellion" || theme.Category != "Sci-Fi" {
		t.Errorf("provided fields must be kept: %+v", theme)
	}
	if theme.Description != domain.FallbackThemeDescription {
		t.Errorf("expected fallback description, got %q", theme.Description)
	}
	if len(theme.Tags) != 2 || theme.Tags[0] != "Adventure" || theme.Tags[1] != "Mystery" {
		t.Errorf("expected fallback tags, got %v", theme.Tags)
	}
}

func TestGenerateTheme_NotCached(t *testing.T) {
	gen := &stubGenerator{theme: domain.ChallengeTheme{Title: "A"}}
	svc := NewGenerationService(gen, newMapCache(), zerolog.Nop())

	_, _ = svc.GenerateTheme(context.Background())
	_, _ = svc.GenerateTheme(context.Background())
	if gen.calls.Load() != 2 {
		t.Errorf("themes should always be fresh, got %d calls", gen.calls.Load())
	}
}
