package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
)

const samplePassword = "password123"

type samplePanel struct {
	prompt   string
	caption  string
	imageURL string
	author   int // index into sampleUsers
}

type sampleChallenge struct {
	in       domain.NewChallenge
	status   string
	daysLeft int
}

type sampleStoryboard struct {
	in      domain.NewChallenge
	endedAt time.Duration // before seeding time
}

var sampleUsers = []domain.NewUser{
	{Username: "SpaceWriter", Password: samplePassword, AvatarColor: "#6D28D9"},
	{Username: "CosmicTales", Password: samplePassword, AvatarColor: "#EC4899"},
	{Username: "StarGazer42", Password: samplePassword, AvatarColor: "#F59E0B"},
	{Username: "AlienArtist", Password: samplePassword, AvatarColor: "#10B981"},
}

var sampleDaily = domain.NewChallenge{
	Title:       "Space Explorer's First Contact",
	Description: "Today's theme invites you to continue the story of a space explorer who discovers something unexpected on a distant planet.",
	Tags:        []string{"Sci-Fi", "Adventure", "Mystery"},
	TotalPanels: 6,
	CoverImage:  strPtr(""),
	IsDaily:     true,
	Category:    "Sci-Fi",
}

var sampleDailyPanels = []samplePanel{
	{
		prompt:   "A space explorer preparing for a mission to a distant planet",
		caption:  "Captain Lisa prepares for her first solo mission to Planet Xyria.",
		imageURL: "https://images.unsplash.com/photo-1614728263952-84ea256f9679?w=600&h=600&fit=crop",
		author:   0,
	},
	{
		prompt:   "A spaceship landing on an alien world with strange terrain",
		caption:  "The landing was rougher than expected. Something interfered with the ship's systems.",
		imageURL: "https://images.unsplash.com/photo-1581822261290-991b38693d1b?w=600&h=600&fit=crop",
		author:   1,
	},
	{
		prompt:   "Discovering mysterious alien structures that glow with strange energy",
		caption:  "Lisa discovered strange structures that seemed to pulse with an inner light.",
		imageURL: "https://images.unsplash.com/photo-1543722530-d2c3201371e7?w=600&h=600&fit=crop",
		author:   2,
	},
	{
		prompt:   "A shadowy figure appearing in the distance, clearly not human",
		caption:  "A silhouette appeared against the horizon. Not human, but somehow... familiar.",
		imageURL: "https://images.unsplash.com/photo-1501862700950-18382cd41497?w=600&h=600&fit=crop",
		author:   3,
	},
}

var sampleCommunity = []sampleChallenge{
	{
		in: domain.NewChallenge{
			Title:       "Underwater Adventure",
			Description: "Create a story about deep-sea explorers",
			Tags:        []string{"Adventure", "Mystery", "Science"},
			Category:    "Adventure",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1518364538800-6bae3c2ea0f2?w=600&h=200&fit=crop"),
		},
		status:   domain.StatusActive,
		daysLeft: 2,
	},
	{
		in: domain.NewChallenge{
			Title:       "Ancient Mystery",
			Description: "Unravel secrets of a forgotten temple",
			Tags:        []string{"Mystery", "History", "Adventure"},
			Category:    "Mystery",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1523286877159-d9636545890c?w=600&h=200&fit=crop"),
		},
		status:   domain.StatusActive,
		daysLeft: 5,
	},
	{
		in: domain.NewChallenge{
			Title:       "Dream Jumper",
			Description: "A person who can jump through dreams",
			Tags:        []string{"Fantasy", "Surreal", "Adventure"},
			Category:    "Fantasy",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=600&h=200&fit=crop"),
		},
		status:   domain.StatusComingSoon,
		daysLeft: 1,
	},
	{
		in: domain.NewChallenge{
			Title:       "Time Detectives",
			Description: "Solve mysteries across different eras",
			Tags:        []string{"Sci-Fi", "Mystery", "History"},
			Category:    "Sci-Fi",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1560419015-7c427e8ae5ba?w=600&h=200&fit=crop"),
		},
		// Display label only; it is not the lowercase completed status.
		status:   "Completed",
		daysLeft: 3,
	},
}

var sampleStoryboards = []sampleStoryboard{
	{
		in: domain.NewChallenge{
			Title:       "Robot's Day Out",
			Description: "A heartwarming tale of a robot exploring human emotions",
			Tags:        []string{"Sci-Fi", "Comedy", "Heartwarming"},
			TotalPanels: 6,
			Category:    "Sci-Fi",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1566619893999-537a3ad11049?w=800&h=450&fit=crop"),
		},
		endedAt: 2 * 24 * time.Hour,
	},
	{
		in: domain.NewChallenge{
			Title:       "The Last Sunset",
			Description: "A group of friends witness the final sunset on Earth",
			Tags:        []string{"Fantasy", "Drama", "Apocalyptic"},
			TotalPanels: 6,
			Category:    "Fantasy",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1490730141103-6cac27aaab94?w=800&h=450&fit=crop"),
		},
		endedAt: 5 * 24 * time.Hour,
	},
	{
		in: domain.NewChallenge{
			Title:       "Haunted Memories",
			Description: "Exploring a house where memories come to life",
			Tags:        []string{"Horror", "Psychological", "Mystery"},
			TotalPanels: 6,
			Category:    "Horror",
			CoverImage:  strPtr("https://images.unsplash.com/photo-1482160549825-59d1b23cb208?w=800&h=450&fit=crop"),
		},
		endedAt: 7 * 24 * time.Hour,
	},
}

// Seeder loads a demo data set through the services. Panel counts and
// contributor figures are whatever the seeded panels produce.
type Seeder struct {
	users      ports.UserService
	challenges ports.ChallengeService
	panels     ports.PanelService
	now        func() time.Time
	logger     zerolog.Logger
}

func NewSeeder(users ports.UserService, challenges ports.ChallengeService, panels ports.PanelService, logger zerolog.Logger) *Seeder {
	return &Seeder{
		users:      users,
		challenges: challenges,
		panels:     panels,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Seed must run against an empty store.
func (s *Seeder) Seed(ctx context.Context) error {
	userIDs := make([]int64, 0, len(sampleUsers))
	for _, in := range sampleUsers {
		u, err := s.users.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", in.Username, err)
		}
		userIDs = append(userIDs, u.ID)
	}

	daily, err := s.challenges.Create(ctx, sampleDaily)
	if err != nil {
		return fmt.Errorf("seed daily challenge: %w", err)
	}
	for _, p := range sampleDailyPanels {
		in := domain.NewPanel{
			ChallengeID: daily.ID,
			Prompt:      p.prompt,
			Caption:     strPtr(p.caption),
			ImageURL:    p.imageURL,
		}
		if _, err := s.panels.Create(ctx, in, userIDs[p.author]); err != nil {
			return fmt.Errorf("seed daily panel: %w", err)
		}
	}

	for _, sc := range sampleCommunity {
		c, err := s.challenges.Create(ctx, sc.in)
		if err != nil {
			return fmt.Errorf("seed community challenge %q: %w", sc.in.Title, err)
		}
		status, daysLeft := sc.status, sc.daysLeft
		if _, err := s.challenges.Update(ctx, c.ID, domain.ChallengePatch{Status: &status, DaysLeft: &daysLeft}); err != nil {
			return fmt.Errorf("seed community challenge %q: %w", sc.in.Title, err)
		}
	}

	for _, sb := range sampleStoryboards {
		if err := s.seedStoryboard(ctx, sb, userIDs); err != nil {
			return err
		}
	}

	s.logger.Info().
		Int("users", len(sampleUsers)).
		Int("challenges", 1+len(sampleCommunity)+len(sampleStoryboards)).
		Msg("sample data seeded")
	return nil
}

func (s *Seeder) seedStoryboard(ctx context.Context, sb sampleStoryboard, userIDs []int64) error {
	c, err := s.challenges.Create(ctx, sb.in)
	if err != nil {
		return fmt.Errorf("seed storyboard %q: %w", sb.in.Title, err)
	}

	for i := 0; i < sb.in.TotalPanels; i++ {
		in := domain.NewPanel{
			ChallengeID: c.ID,
			Prompt:      fmt.Sprintf("Sample panel %d for %s", i+1, sb.in.Title),
			Caption:     strPtr(fmt.Sprintf("Caption for panel %d", i+1)),
			ImageURL:    *sb.in.CoverImage,
		}
		if _, err := s.panels.Create(ctx, in, userIDs[i%len(userIDs)]); err != nil {
			return fmt.Errorf("seed storyboard %q panel %d: %w", sb.in.Title, i+1, err)
		}
	}

	status := domain.StatusCompleted
	endedAt := s.now().Add(-sb.endedAt)
	if _, err := s.challenges.Update(ctx, c.ID, domain.ChallengePatch{Status: &status, EndedAt: &endedAt}); err != nil {
		return fmt.Errorf("seed storyboard %q: %w", sb.in.Title, err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
