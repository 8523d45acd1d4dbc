// Package memory provides the in-process implementation of ports.Storage.
// State is volatile and lives for the lifetime of the Store value.
package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
)

var _ ports.Storage = (*Store)(nil)

const (
	communityPreviewLimit = 4
	completedLimit        = 3
)

// Store keeps users, challenges, panels and votes in maps guarded by a
// single lock. Every mutation, including derived-field maintenance, runs
// under the write lock.
type Store struct {
	mu  sync.RWMutex
	seq sequence

	users      map[int64]*domain.User
	challenges map[int64]*domain.Challenge
	panels     map[int64]*domain.Panel
	votes      map[int64]*domain.Vote

	now   func() time.Time
	color func() string
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithAvatarPicker overrides how avatar colors are chosen for users that
// do not supply one.
func WithAvatarPicker(pick func() string) Option {
	return func(s *Store) { s.color = pick }
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		users:      make(map[int64]*domain.User),
		challenges: make(map[int64]*domain.Challenge),
		panels:     make(map[int64]*domain.Panel),
		votes:      make(map[int64]*domain.Vote),
		now:        func() time.Time { return time.Now().UTC() },
		color:      randomAvatarColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomAvatarColor() string {
	return domain.AvatarColors[rand.IntN(len(domain.AvatarColors))]
}

// --- Users ---

func (s *Store) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// GetUserByUsername returns the lowest-id user with the given name.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUserByUsername(username)
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *Store) findUserByUsername(username string) *domain.User {
	for _, id := range sortedKeys(s.users) {
		if u := s.users[id]; u.Username == username {
			return u
		}
	}
	return nil
}

func (s *Store) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserByUsername(in.Username) != nil {
		return nil, domain.ErrUserExists
	}

	color := in.AvatarColor
	if color == "" {
		color = s.color()
	}
	u := &domain.User{
		ID:          s.seq.next(kindUser),
		Username:    in.Username,
		Password:    in.Password,
		AvatarColor: color,
		CreatedAt:   s.now(),
	}
	s.users[u.ID] = u

	clone := *u
	return &clone, nil
}

// --- Challenges ---

func (s *Store) GetChallenge(_ context.Context, id int64) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	return c.Clone(), nil
}

func (s *Store) GetDailyChallenge(_ context.Context) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.challenges) {
		if c := s.challenges[id]; c.IsActiveDaily() {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrChallengeNotFound
}

func (s *Store) GetCommunityChallenge(_ context.Context, id int64) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok || c.IsDaily {
		return nil, domain.ErrChallengeNotFound
	}
	return c.Clone(), nil
}

func (s *Store) ListCommunityChallengePreviews(_ context.Context) ([]domain.CommunityChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CommunityChallenge, 0, communityPreviewLimit)
	for _, id := range sortedKeys(s.challenges) {
		c := s.challenges[id]
		if c.IsDaily {
			continue
		}
		out = append(out, domain.CommunityChallenge{
			ID:           c.ID,
			Title:        c.Title,
			Description:  c.Description,
			CoverImage:   deref(c.CoverImage),
			Status:       c.Status,
			Contributors: c.Contributors,
			DaysLeft:     c.DaysLeft,
		})
		if len(out) == communityPreviewLimit {
			break
		}
	}
	return out, nil
}

func (s *Store) CreateChallenge(_ context.Context, in domain.NewChallenge) (*domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.IsDaily && s.hasActiveDaily(0) {
		return nil, domain.ErrDailyChallengeExists
	}

	totalPanels := in.TotalPanels
	if totalPanels <= 0 {
		totalPanels = domain.DefaultTotalPanels
	}
	c := (&domain.Challenge{
		ID:            s.seq.next(kindChallenge),
		Title:         in.Title,
		Description:   in.Description,
		Tags:          in.Tags,
		Status:        domain.StatusActive,
		TotalPanels:   totalPanels,
		CoverImage:    in.CoverImage,
		TimeRemaining: domain.DefaultTimeRemaining,
		CreatedAt:     s.now(),
		IsDaily:       in.IsDaily,
		CreatedBy:     domain.DefaultUserID,
		Category:      in.Category,
		DaysLeft:      domain.DefaultDaysLeft,
	}).Clone()
	if c.Tags == nil {
		c.Tags = []string{}
	}
	s.challenges[c.ID] = c
	return c.Clone(), nil
}

// UpdateChallenge merges patch into the stored challenge.
func (s *Store) UpdateChallenge(_ context.Context, id int64, patch domain.ChallengePatch) (*domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.challenges[id]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	updated := c.Clone()
	patch.Apply(updated)
	if updated.IsActiveDaily() && s.hasActiveDaily(id) {
		return nil, domain.ErrDailyChallengeExists
	}
	s.challenges[id] = updated
	return updated.Clone(), nil
}

// hasActiveDaily reports whether a challenge other than except is daily and
// active. Callers hold the lock.
func (s *Store) hasActiveDaily(except int64) bool {
	for id, c := range s.challenges {
		if id != except && c.IsActiveDaily() {
			return true
		}
	}
	return false
}

// --- Panels ---

func (s *Store) ListPanelsByChallenge(_ context.Context, challengeID int64) ([]*domain.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	panels := s.panelsOf(challengeID)
	out := make([]*domain.Panel, len(panels))
	for i, p := range panels {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *Store) GetPanel(_ context.Context, id int64) (*domain.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.panels[id]
	if !ok {
		return nil, domain.ErrPanelNotFound
	}
	return p.Clone(), nil
}

func (s *Store) CreatePanel(_ context.Context, in domain.NewPanel, userID int64) (*domain.Panel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.insertPanel(in, userID)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// --- Votes ---

func (s *Store) CreateVote(_ context.Context, in domain.NewVote, userID int64) (*domain.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.insertVote(in, userID)
	if err != nil {
		return nil, err
	}
	clone := *v
	return &clone, nil
}

func (s *Store) HasUserVoted(_ context.Context, panelID, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasVoted(panelID, userID), nil
}

// --- Completed storyboards ---

func (s *Store) ListCompletedStoryboards(_ context.Context) ([]domain.CompletedStoryboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CompletedStoryboard, 0, completedLimit)
	for _, id := range sortedKeys(s.challenges) {
		c := s.challenges[id]
		if c.Status != domain.StatusCompleted {
			continue
		}
		out = append(out, s.storyboardOf(c))
		if len(out) == completedLimit {
			break
		}
	}
	return out, nil
}

// GetCompletedStoryboard projects any existing challenge, whatever its status.
func (s *Store) GetCompletedStoryboard(_ context.Context, id int64) (*domain.CompletedStoryboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok {
		return nil, domain.ErrStoryboardNotFound
	}
	sb := s.storyboardOf(c)
	return &sb, nil
}

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
