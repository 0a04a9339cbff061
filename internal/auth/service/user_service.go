package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Darrly207/Gemetry-BE/internal/auth/domain"
	"github.com/Darrly207/Gemetry-BE/internal/auth/dto"
	autherror "github.com/Darrly207/Gemetry-BE/internal/errors"
)

type UserService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	tokens   TokenGenerator
}

func NewUserService(users domain.UserRepository, sessions domain.SessionRepository, tokens TokenGenerator) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates the user and opens a session right away, so the returned
// token authenticates without a separate login.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	// Old sessions must be gone before the new row is written.
	if err := s.sessions.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	return s.sessions.Delete(ctx, userID, token)
}

func (s *UserService) openSession(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Store(ctx, session); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserOutput{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
	}, nil
}
