package ports

import (
	"context"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

// UserService exposes user use-cases.
type UserService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in domain.NewUser) (*domain.User, error)
}

// ChallengeService exposes challenge and completed-storyboard use-cases.
type ChallengeService interface {
	Daily(ctx context.Context) (*domain.Challenge, error)
	Get(ctx context.Context, id int64) (*domain.Challenge, error)
	Community(ctx context.Context, id int64) (*domain.Challenge, error)
	CommunityPreviews(ctx context.Context) ([]domain.CommunityChallenge, error)
	Create(ctx context.Context, in domain.NewChallenge) (*domain.Challenge, error)
	Update(ctx context.Context, id int64, patch domain.ChallengePatch) (*domain.Challenge, error)
	CreateFromTheme(ctx context.Context, totalPanels int, isDaily bool) (*domain.Challenge, error)
	CompletedStoryboards(ctx context.Context) ([]domain.CompletedStoryboard, error)
	CompletedStoryboard(ctx context.Context, id int64) (*domain.CompletedStoryboard, error)
}

// PanelService exposes panel and voting use-cases.
type PanelService interface {
	ListByChallenge(ctx context.Context, challengeID int64) ([]*domain.Panel, error)
	Get(ctx context.Context, id int64) (*domain.Panel, error)
	Create(ctx context.Context, in domain.NewPanel, userID int64) (*domain.Panel, error)
	Vote(ctx context.Context, in domain.NewVote, userID int64) (*domain.Vote, error)
	HasVoted(ctx context.Context, panelID, userID int64) (bool, error)
}

// GenerationService exposes the external generation collaborators to the
// HTTP layer.
type GenerationService interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	SuggestCaption(ctx context.Context, prompt string) (string, error)
	GenerateTheme(ctx context.Context) (domain.ChallengeTheme, error)
}
