package domain

import "time"

// CompletedStoryboard summarises a finished challenge.
type CompletedStoryboard struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	CoverImage   string    `json:"coverImage"`
	PanelCount   int       `json:"panelCount"`
	CompletedAt  time.Time `json:"completedAt"`
	Contributors []string  `json:"contributors"`
}
