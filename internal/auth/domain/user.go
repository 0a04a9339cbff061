package domain

import "time"

type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session makes a token revocable: a token only authenticates while its row
// is still present for the owning user.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
}

// Identity is what the authenticator hands to downstream handlers.
type Identity struct {
	UserID string
	Token  string
}
