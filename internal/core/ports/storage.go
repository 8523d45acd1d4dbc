package ports

import (
	"context"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

// Storage is the only surface through which storyboard state is read or
// mutated. Lookups of absent entities return an error wrapping
// domain.ErrNotFound.
type Storage interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)

	GetChallenge(ctx context.Context, id int64) (*domain.Challenge, error)
	// GetDailyChallenge returns the first challenge that is daily and active.
	GetDailyChallenge(ctx context.Context) (*domain.Challenge, error)
	// GetCommunityChallenge returns the challenge only when it is not daily.
	GetCommunityChallenge(ctx context.Context, id int64) (*domain.Challenge, error)
	// ListCommunityChallengePreviews returns at most four non-daily challenges.
	ListCommunityChallengePreviews(ctx context.Context) ([]domain.CommunityChallenge, error)
	CreateChallenge(ctx context.Context, in domain.NewChallenge) (*domain.Challenge, error)
	UpdateChallenge(ctx context.Context, id int64, patch domain.ChallengePatch) (*domain.Challenge, error)

	// ListPanelsByChallenge returns the challenge's panels ordered by position.
	ListPanelsByChallenge(ctx context.Context, challengeID int64) ([]*domain.Panel, error)
	GetPanel(ctx context.Context, id int64) (*domain.Panel, error)
	// CreatePanel fails without storing anything when the challenge or the
	// user does not exist.
	CreatePanel(ctx context.Context, in domain.NewPanel, userID int64) (*domain.Panel, error)

	// CreateVote returns domain.ErrDuplicateVote when userID already voted
	// for the panel.
	CreateVote(ctx context.Context, in domain.NewVote, userID int64) (*domain.Vote, error)
	HasUserVoted(ctx context.Context, panelID, userID int64) (bool, error)

	// ListCompletedStoryboards returns at most three completed challenges.
	ListCompletedStoryboards(ctx context.Context) ([]domain.CompletedStoryboard, error)
	GetCompletedStoryboard(ctx context.Context, id int64) (*domain.CompletedStoryboard, error)
}
