package domain

import "time"

// DefaultUserID is the demo user every request acts as.
const DefaultUserID int64 = 1

// AvatarColors is the palette a user's avatar color is drawn from when none is given.
var AvatarColors = []string{"#6D28D9", "#EC4899", "#F59E0B", "#10B981", "#3B82F6", "#EF4444"}

// User models a storyboard contributor.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	AvatarColor string    `json:"avatarColor"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser carries the fields accepted when creating a user.
type NewUser struct {
	Username    string
	Password    string
	AvatarColor string
}
