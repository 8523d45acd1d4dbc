package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/infrastructure/db/memory"
)

func seededStore(t *testing.T) (*memory.Store, time.Time) {
	t.Helper()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	log := zerolog.Nop()
	seeder := NewSeeder(
		NewUserService(store, log, WithHashCost(bcrypt.MinCost)),
		NewChallengeService(store, &stubGenerator{}, log),
		NewPanelService(store, log),
		log,
	)
	seeder.now = func() time.Time { return now }
	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store, now
}

func TestSeeder_DailyChallenge(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	daily, err := store.GetDailyChallenge(ctx)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if daily.ID != 1 || daily.PanelCount != 4 || daily.Contributors != 4 {
		t.Errorf("unexpected daily challenge %+v", daily)
	}

	panels, _ := store.ListPanelsByChallenge(ctx, daily.ID)
	if len(panels) != 4 || panels[0].Username != "SpaceWriter" || panels[3].Username != "AlienArtist" {
		t.Errorf("unexpected daily panels %+v", panels)
	}
}

func TestSeeder_CommunityPreviewsUseDerivedCounts(t *testing.T) {
	store, _ := seededStore(t)

	previews, err := store.ListCommunityChallengePreviews(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(previews) != 4 {
		t.Fatalf("expected 4 previews, got %d", len(previews))
	}
	wantStatus := []string{domain.StatusActive, domain.StatusActive, domain.StatusComingSoon, "Completed"}
	wantDays := []int{2, 5, 1, 3}
	for i, p := range previews {
		if p.Status != wantStatus[i] || p.DaysLeft != wantDays[i] {
			t.Errorf("preview %d: got status %q daysLeft %d", i, p.Status, p.DaysLeft)
		}
		if p.Contributors != 0 {
			t.Errorf("preview %d: contributors must reflect stored panels, got %d", i, p.Contributors)
		}
	}
}

func TestSeeder_CompletedStoryboards(t *testing.T) {
	store, now := seededStore(t)

	boards, err := store.ListCompletedStoryboards(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(boards) != 3 {
		t.Fatalf("expected 3 completed storyboards, got %d", len(boards))
	}

	wantTitles := []string{"Robot's Day Out", "The Last Sunset", "Haunted Memories"}
	wantAge := []time.Duration{2 * 24 * time.Hour, 5 * 24 * time.Hour, 7 * 24 * time.Hour}
	for i, b := range boards {
		if b.Title != wantTitles[i] || b.PanelCount != 6 {
			t.Errorf("storyboard %d: %+v", i, b)
		}
		if !b.CompletedAt.Equal(now.Add(-wantAge[i])) {
			t.Errorf("storyboard %d: completedAt %v", i, b.CompletedAt)
		}
		if len(b.Contributors) != 4 || b.Contributors[0] != "SpaceWriter" {
			t.Errorf("storyboard %d: contributors %v", i, b.Contributors)
		}
	}
}
