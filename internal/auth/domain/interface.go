package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/Darrly207/Gemetry-BE/internal/auth/domain UserRepository,SessionRepository

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type SessionRepository interface {
	Store(ctx context.Context, session *Session) error
	DeleteByUserID(ctx context.Context, userID string) error
	Exists(ctx context.Context, userID, token string) (bool, error)
	Delete(ctx context.Context, userID, token string) error
}
