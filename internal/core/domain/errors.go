package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every "entity is absent" error below.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrChallengeNotFound  = fmt.Errorf("challenge %w", ErrNotFound)
	ErrPanelNotFound      = fmt.Errorf("panel %w", ErrNotFound)
	ErrStoryboardNotFound = fmt.Errorf("storyboard %w", ErrNotFound)
)

var ErrDuplicateVote = errors.New("user has already voted for this panel")
var ErrUserExists = errors.New("user already exists")

// ErrDailyChallengeExists rejects a write that would leave two challenges
// both daily and active.
var ErrDailyChallengeExists = errors.New("an active daily challenge already exists")

// ErrValidation marks malformed input rejected before it reaches the store.
var ErrValidation = errors.New("validation failed")

var ErrInvalidPrompt = fmt.Errorf("%w: valid prompt is required", ErrValidation)
var ErrGenerationFailed = errors.New("generation failed")
