package handler

import "time"

// --- Requests ---

type createChallengeRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"required,max=10,dive,required"`
	TotalPanels int      `json:"totalPanels" validate:"omitempty,gt=0"`
	CoverImage  *string  `json:"coverImage"`
	IsDaily     bool     `json:"isDaily"`
	Category    string   `json:"category" validate:"required"`
}

type updateChallengeRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description"`
	Tags          []string   `json:"tags" validate:"omitempty,max=10,dive,required"`
	Status        *string    `json:"status" validate:"omitempty,min=1"`
	TotalPanels   *int       `json:"totalPanels" validate:"omitempty,gt=0"`
	CoverImage    *string    `json:"coverImage"`
	TimeRemaining *int64     `json:"timeRemaining" validate:"omitempty,min=0"`
	EndedAt       *time.Time `json:"endedAt"`
	IsDaily       *bool      `json:"isDaily"`
	Category      *string    `json:"category" validate:"omitempty,min=1"`
	DaysLeft      *int       `json:"daysLeft" validate:"omitempty,min=0"`
}

type challengeFromThemeRequest struct {
	TotalPanels int  `json:"totalPanels" validate:"omitempty,gt=0"`
	IsDaily     bool `json:"isDaily"`
}

type createPanelRequest struct {
	ChallengeID int64   `json:"challengeId" validate:"required,gt=0"`
	Prompt      string  `json:"prompt" validate:"required"`
	Caption     *string `json:"caption"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
}

type generatePanelRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	ChallengeID int64  `json:"challengeId" validate:"required,gt=0"`
}

type createVoteRequest struct {
	PanelID int64 `json:"panelId" validate:"required,gt=0"`
}

type suggestCaptionRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// --- Responses ---

type generatePanelResponse struct {
	ImageURL string `json:"imageUrl"`
}

type suggestCaptionResponse struct {
	Caption string `json:"caption"`
}

type votedResponse struct {
	Voted bool `json:"voted"`
}

type messageResponse struct {
	Message string `json:"message"`
}
