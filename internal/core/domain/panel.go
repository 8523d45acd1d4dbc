package domain

import "time"

// Panel is one illustrated contribution to a challenge.
// Username is a snapshot of the author's name taken at creation.
type Panel struct {
	ID          int64     `json:"id"`
	ChallengeID int64     `json:"challengeId"`
	UserID      int64     `json:"userId"`
	Prompt      string    `json:"prompt"`
	Caption     *string   `json:"caption"`
	ImageURL    string    `json:"imageUrl"`
	Votes       int       `json:"votes"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	Username    string    `json:"username"`
}

// Clone returns a deep copy of p.
func (p *Panel) Clone() *Panel {
	out := *p
	if p.Caption != nil {
		v := *p.Caption
		out.Caption = &v
	}
	return &out
}

// NewPanel carries the caller-supplied fields of a panel.
type NewPanel struct {
	ChallengeID int64
	Prompt      string
	Caption     *string
	ImageURL    string
}

// Vote is a single user's endorsement of one panel.
type Vote struct {
	ID        int64     `json:"id"`
	PanelID   int64     `json:"panelId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewVote carries the caller-supplied fields of a vote.
type NewVote struct {
	PanelID int64
}
