package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/infrastructure/db/memory"
)

func TestChallengeService_CreateValidation(t *testing.T) {
	svc := NewChallengeService(memory.NewStore(), &stubGenerator{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), domain.NewChallenge{Title: " "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for blank title, got %v", err)
	}
	_, err = svc.Create(context.Background(), domain.NewChallenge{Title: "ok", TotalPanels: -1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for negative totalPanels, got %v", err)
	}
}

func TestChallengeService_CreateFromTheme(t *testing.T) {
	gen := &stubGenerator{theme: domain.ChallengeTheme{Title: "Pirate Radio", Tags: []string{"Comedy"}}}
	svc := NewChallengeService(memory.NewStore(), gen, zerolog.Nop())

	c, err := svc.CreateFromTheme(context.Background(), 8, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "Pirate Radio" || c.TotalPanels != 8 || !c.IsDaily {
		t.Errorf("unexpected challenge %+v", c)
	}
	if c.Description != domain.FallbackThemeDescription || c.Category != domain.FallbackThemeCategory {
		t.Errorf("missing theme fields should fall back: %+v", c)
	}
	if c.Status != domain.StatusActive || c.PanelCount != 0 {
		t.Errorf("new challenge should start active and empty: %+v", c)
	}
}

func TestChallengeService_CreateFromThemeError(t *testing.T) {
	boom := errors.New("no quota")
	store := memory.NewStore()
	svc := NewChallengeService(store, &stubGenerator{err: boom}, zerolog.Nop())

	if _, err := svc.CreateFromTheme(context.Background(), 0, false); !errors.Is(err, boom) {
		t.Fatalf("expected theme error, got %v", err)
	}
	if _, err := store.GetChallenge(context.Background(), 1); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Error("no challenge should be stored when the theme fails")
	}
}

func TestChallengeService_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewChallengeService(memory.NewStore(), &stubGenerator{}, zerolog.Nop())
	c, err := svc.Create(ctx, domain.NewChallenge{Title: "Original"})
	if err != nil {
		t.Fatal(err)
	}

	blank := ""
	if _, err := svc.Update(ctx, c.ID, domain.ChallengePatch{Title: &blank}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}

	status := domain.StatusCompleted
	updated, err := svc.Update(ctx, c.ID, domain.ChallengePatch{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusCompleted || updated.Title != "Original" {
		t.Errorf("unexpected update result %+v", updated)
	}

	if _, err := svc.Update(ctx, 99, domain.ChallengePatch{Status: &status}); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Errorf("expected ErrChallengeNotFound, got %v", err)
	}
}
