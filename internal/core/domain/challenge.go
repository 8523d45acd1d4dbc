package domain

import "time"

const (
	StatusActive     = "active"
	StatusCompleted  = "completed"
	StatusComingSoon = "Coming Soon"
)

const (
	DefaultTotalPanels = 6
	DefaultDaysLeft    = 3
	// DefaultTimeRemaining is 24 hours, in milliseconds.
	DefaultTimeRemaining int64 = 24 * 60 * 60 * 1000
)

// Challenge is a collaborative theme that accumulates panels.
// PanelCount and Contributors are derived from the stored panels.
type Challenge struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	TotalPanels   int        `json:"totalPanels"`
	PanelCount    int        `json:"panelCount"`
	Contributors  int        `json:"contributors"`
	CoverImage    *string    `json:"coverImage"`
	TimeRemaining int64      `json:"timeRemaining"`
	CreatedAt     time.Time  `json:"createdAt"`
	EndedAt       *time.Time `json:"endedAt"`
	IsDaily       bool       `json:"isDaily"`
	CreatedBy     int64      `json:"createdBy"`
	Category      string     `json:"category"`
	DaysLeft      int        `json:"daysLeft"`
}

// IsActiveDaily reports whether c is the current daily challenge candidate.
func (c *Challenge) IsActiveDaily() bool {
	return c.IsDaily && c.Status == StatusActive
}

// Clone returns a deep copy of c.
func (c *Challenge) Clone() *Challenge {
	out := *c
	out.Tags = append([]string(nil), c.Tags...)
	if c.CoverImage != nil {
		v := *c.CoverImage
		out.CoverImage = &v
	}
	if c.EndedAt != nil {
		v := *c.EndedAt
		out.EndedAt = &v
	}
	return &out
}

// NewChallenge carries the caller-supplied fields of a challenge.
type NewChallenge struct {
	Title       string
	Description string
	Tags        []string
	TotalPanels int
	CoverImage  *string
	IsDaily     bool
	Category    string
}

// ChallengePatch overwrites the non-nil fields of a stored challenge.
// It carries no derived counters.
type ChallengePatch struct {
	Title         *string
	Description   *string
	Tags          []string
	Status        *string
	TotalPanels   *int
	CoverImage    *string
	TimeRemaining *int64
	EndedAt       *time.Time
	IsDaily       *bool
	Category      *string
	DaysLeft      *int
}

// Apply writes the patch onto c.
func (p ChallengePatch) Apply(c *Challenge) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.TotalPanels != nil {
		c.TotalPanels = *p.TotalPanels
	}
	if p.CoverImage != nil {
		v := *p.CoverImage
		c.CoverImage = &v
	}
	if p.TimeRemaining != nil {
		c.TimeRemaining = *p.TimeRemaining
	}
	if p.EndedAt != nil {
		v := *p.EndedAt
		c.EndedAt = &v
	}
	if p.IsDaily != nil {
		c.IsDaily = *p.IsDaily
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.DaysLeft != nil {
		c.DaysLeft = *p.DaysLeft
	}
}

// CommunityChallenge is the preview shape of a non-daily challenge.
type CommunityChallenge struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CoverImage   string `json:"coverImage"`
	Status       string `json:"status"`
	Contributors int    `json:"contributors"`
	DaysLeft     int    `json:"daysLeft"`
}

// ChallengeTheme is a generated suggestion used to seed new challenges.
type ChallengeTheme struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

// Fallback theme values, substituted field by field.
const (
	FallbackThemeTitle       = "Mysterious Adventure"
	FallbackThemeDescription = "Embark on an exciting journey through the unknown."
	FallbackThemeCategory    = "Adventure"
)

var FallbackThemeTags = []string{"Adventure", "Mystery"}

// WithFallbacks fills every empty field of t with its fallback value.
func (t ChallengeTheme) WithFallbacks() ChallengeTheme {
	if t.Title == "" {
		t.Title = FallbackThemeTitle
	}
	if t.Description == "" {
		t.Description = FallbackThemeDescription
	}
	if len(t.Tags) == 0 {
		t.Tags = append([]string(nil), FallbackThemeTags...)
	}
	if t.Category == "" {
		t.Category = FallbackThemeCategory
	}
	return t
}
