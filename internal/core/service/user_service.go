package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// UserService implements user lookup and registration.
type UserService struct {
	store  ports.Storage
	cost   int
	logger zerolog.Logger
}

// UserOption customises a UserService.
type UserOption func(*UserService)

// WithHashCost overrides the bcrypt cost used for new passwords.
func WithHashCost(cost int) UserOption {
	return func(s *UserService) { s.cost = cost }
}

func NewUserService(store ports.Storage, logger zerolog.Logger, opts ...UserOption) *UserService {
	s := &UserService{store: store, cost: bcrypt.DefaultCost, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

// Create hashes the password and stores the user. Usernames are unique.
func (s *UserService) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	in.Password = string(hash)

	u, err := s.store.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("user created")
	return u, nil
}
