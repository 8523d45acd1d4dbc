package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// ChallengeService implements challenge and completed-storyboard use-cases.
type ChallengeService struct {
	store  ports.Storage
	themes ports.ThemeGenerator
	logger zerolog.Logger
}

func NewChallengeService(store ports.Storage, themes ports.ThemeGenerator, logger zerolog.Logger) *ChallengeService {
	return &ChallengeService{store: store, themes: themes, logger: logger}
}

func (s *ChallengeService) Daily(ctx context.Context) (*domain.Challenge, error) {
	return s.store.GetDailyChallenge(ctx)
}

func (s *ChallengeService) Get(ctx context.Context, id int64) (*domain.Challenge, error) {
	return s.store.GetChallenge(ctx, id)
}

func (s *ChallengeService) Community(ctx context.Context, id int64) (*domain.Challenge, error) {
	return s.store.GetCommunityChallenge(ctx, id)
}

func (s *ChallengeService) CommunityPreviews(ctx context.Context) ([]domain.CommunityChallenge, error) {
	return s.store.ListCommunityChallengePreviews(ctx)
}

func (s *ChallengeService) Create(ctx context.Context, in domain.NewChallenge) (*domain.Challenge, error) {
	if err := validateChallenge(in); err != nil {
		return nil, err
	}
	c, err := s.store.CreateChallenge(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("challenge_id", c.ID).Bool("daily", c.IsDaily).Msg("challenge created")
	return c, nil
}

func (s *ChallengeService) Update(ctx context.Context, id int64, patch domain.ChallengePatch) (*domain.Challenge, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be blank", domain.ErrValidation)
	}
	if patch.TotalPanels != nil && *patch.TotalPanels <= 0 {
		return nil, fmt.Errorf("%w: totalPanels must be positive", domain.ErrValidation)
	}
	c, err := s.store.UpdateChallenge(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("challenge_id", id).Str("status", c.Status).Msg("challenge updated")
	return c, nil
}

// CreateFromTheme asks the theme generator for a theme and stores it as a
// new challenge. Missing theme fields take their fallback values.
func (s *ChallengeService) CreateFromTheme(ctx context.Context, totalPanels int, isDaily bool) (*domain.Challenge, error) {
	theme, err := s.themes.GenerateTheme(ctx)
	if err != nil {
		return nil, err
	}
	theme = theme.WithFallbacks()

	return s.Create(ctx, domain.NewChallenge{
		Title:       theme.Title,
		Description: theme.Description,
		Tags:        theme.Tags,
		TotalPanels: totalPanels,
		IsDaily:     isDaily,
		Category:    theme.Category,
	})
}

func (s *ChallengeService) CompletedStoryboards(ctx context.Context) ([]domain.CompletedStoryboard, error) {
	return s.store.ListCompletedStoryboards(ctx)
}

func (s *ChallengeService) CompletedStoryboard(ctx context.Context, id int64) (*domain.CompletedStoryboard, error) {
	return s.store.GetCompletedStoryboard(ctx, id)
}

func validateChallenge(in domain.NewChallenge) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.TotalPanels < 0 {
		return fmt.Errorf("%w: totalPanels must not be negative", domain.ErrValidation)
	}
	return nil
}
