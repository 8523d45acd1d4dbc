package handler

import "github.com/comicjam/storyboard-api/internal/core/domain"

func (r createChallengeRequest) toDomain() domain.NewChallenge {
	return domain.NewChallenge{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		TotalPanels: r.TotalPanels,
		CoverImage:  r.CoverImage,
		IsDaily:     r.IsDaily,
		Category:    r.Category,
	}
}

func (r updateChallengeRequest) toDomain() domain.ChallengePatch {
	return domain.ChallengePatch{
		Title:         r.Title,
		Description:   r.Description,
		Tags:          r.Tags,
		Status:        r.Status,
		TotalPanels:   r.TotalPanels,
		CoverImage:    r.CoverImage,
		TimeRemaining: r.TimeRemaining,
		EndedAt:       r.EndedAt,
		IsDaily:       r.IsDaily,
		Category:      r.Category,
		DaysLeft:      r.DaysLeft,
	}
}

func (r createPanelRequest) toDomain() domain.NewPanel {
	return domain.NewPanel{
		ChallengeID: r.ChallengeID,
		Prompt:      r.Prompt,
		Caption:     r.Caption,
		ImageURL:    r.ImageURL,
	}
}

func (r createVoteRequest) toDomain() domain.NewVote {
	return domain.NewVote{PanelID: r.PanelID}
}
