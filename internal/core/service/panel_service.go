package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
	"github.com/comicjam/storyboard-api/internal/pkg/metrics"
)

// PanelService implements panel creation and voting.
type PanelService struct {
	store  ports.Storage
	logger zerolog.Logger
}

func NewPanelService(store ports.Storage, logger zerolog.Logger) *PanelService {
	return &PanelService{store: store, logger: logger}
}

func (s *PanelService) ListByChallenge(ctx context.Context, challengeID int64) ([]*domain.Panel, error) {
	return s.store.ListPanelsByChallenge(ctx, challengeID)
}

func (s *PanelService) Get(ctx context.Context, id int64) (*domain.Panel, error) {
	return s.store.GetPanel(ctx, id)
}

// Create appends a panel to its challenge as userID.
func (s *PanelService) Create(ctx context.Context, in domain.NewPanel, userID int64) (*domain.Panel, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, domain.ErrInvalidPrompt
	}
	if in.ImageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", domain.ErrValidation)
	}

	p, err := s.store.CreatePanel(ctx, in, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("challenge_id", in.ChallengeID).Int64("user_id", userID).Msg("panel rejected")
		return nil, err
	}

	metrics.PanelsCreatedTotal.Inc()
	s.logger.Info().
		Int64("panel_id", p.ID).
		Int64("challenge_id", p.ChallengeID).
		Int("position", p.Position).
		Msg("panel created")
	return p, nil
}

// Vote records userID's vote for a panel. A second vote by the same user is
// rejected with domain.ErrDuplicateVote.
func (s *PanelService) Vote(ctx context.Context, in domain.NewVote, userID int64) (*domain.Vote, error) {
	v, err := s.store.CreateVote(ctx, in, userID)
	if err != nil {
		metrics.VotesRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		s.logger.Debug().Err(err).Int64("panel_id", in.PanelID).Int64("user_id", userID).Msg("vote rejected")
		return nil, err
	}

	metrics.VotesCastTotal.Inc()
	s.logger.Info().Int64("panel_id", v.PanelID).Int64("user_id", userID).Msg("vote recorded")
	return v, nil
}

func (s *PanelService) HasVoted(ctx context.Context, panelID, userID int64) (bool, error) {
	return s.store.HasUserVoted(ctx, panelID, userID)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateVote):
		return "duplicate"
	case errors.Is(err, domain.ErrPanelNotFound):
		return "panel_not_found"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	default:
		return "error"
	}
}
