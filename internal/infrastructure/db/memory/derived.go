package memory

import (
	"sort"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

// Derived-state maintenance. Every function here expects s.mu to be held.

// insertPanel resolves the panel's parents, assigns the next position and
// refreshes the challenge counters. Nothing is written when a parent is
// missing.
func (s *Store) insertPanel(in domain.NewPanel, userID int64) (*domain.Panel, error) {
	challenge, ok := s.challenges[in.ChallengeID]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	p := (&domain.Panel{
		ID:          s.seq.next(kindPanel),
		ChallengeID: in.ChallengeID,
		UserID:      userID,
		Prompt:      in.Prompt,
		Caption:     in.Caption,
		ImageURL:    in.ImageURL,
		Position:    s.countPanels(in.ChallengeID) + 1,
		CreatedAt:   s.now(),
		Username:    user.Username,
	}).Clone()
	s.panels[p.ID] = p

	updated := challenge.Clone()
	updated.PanelCount = challenge.PanelCount + 1
	updated.Contributors = s.countContributors(challenge.ID)
	s.challenges[challenge.ID] = updated

	return p, nil
}

// insertVote records a vote and bumps the panel's tally by one. Both the
// panel and the voter must exist.
func (s *Store) insertVote(in domain.NewVote, userID int64) (*domain.Vote, error) {
	if s.hasVoted(in.PanelID, userID) {
		return nil, domain.ErrDuplicateVote
	}
	panel, ok := s.panels[in.PanelID]
	if !ok {
		return nil, domain.ErrPanelNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return nil, domain.ErrUserNotFound
	}

	v := &domain.Vote{
		ID:        s.seq.next(kindVote),
		PanelID:   in.PanelID,
		UserID:    userID,
		CreatedAt: s.now(),
	}
	s.votes[v.ID] = v

	updated := panel.Clone()
	updated.Votes = panel.Votes + 1
	s.panels[panel.ID] = updated

	return v, nil
}

// hasVoted scans every vote. Linear, which is fine at this scale.
func (s *Store) hasVoted(panelID, userID int64) bool {
	for _, v := range s.votes {
		if v.PanelID == panelID && v.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Store) countPanels(challengeID int64) int {
	n := 0
	for _, p := range s.panels {
		if p.ChallengeID == challengeID {
			n++
		}
	}
	return n
}

// panelsOf returns the stored panels of a challenge ordered by position.
func (s *Store) panelsOf(challengeID int64) []*domain.Panel {
	var out []*domain.Panel
	for _, p := range s.panels {
		if p.ChallengeID == challengeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// countContributors recounts distinct authors from scratch so a repeat
// contributor never inflates the total.
func (s *Store) countContributors(challengeID int64) int {
	seen := make(map[int64]struct{})
	for _, p := range s.panels {
		if p.ChallengeID == challengeID {
			seen[p.UserID] = struct{}{}
		}
	}
	return len(seen)
}

// uniqueContributors lists author usernames in order of first appearance.
// Authors no longer resolvable to a user are skipped.
func (s *Store) uniqueContributors(challengeID int64) []string {
	names := []string{}
	seen := make(map[int64]struct{})
	for _, p := range s.panelsOf(challengeID) {
		if _, dup := seen[p.UserID]; dup {
			continue
		}
		seen[p.UserID] = struct{}{}
		if u, ok := s.users[p.UserID]; ok {
			names = append(names, u.Username)
		}
	}
	return names
}

func (s *Store) storyboardOf(c *domain.Challenge) domain.CompletedStoryboard {
	panels := s.panelsOf(c.ID)

	cover := ""
	if len(panels) > 0 {
		cover = panels[0].ImageURL
	}
	completedAt := c.CreatedAt
	if c.EndedAt != nil {
		completedAt = *c.EndedAt
	}

	return domain.CompletedStoryboard{
		ID:           c.ID,
		Title:        c.Title,
		Category:     c.Category,
		CoverImage:   cover,
		PanelCount:   len(panels),
		CompletedAt:  completedAt,
		Contributors: s.uniqueContributors(c.ID),
	}
}
