package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Darrly207/Gemetry-BE/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock stands in
// for it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements domain.UserRepository and domain.SessionRepository
// over Postgres.
type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *Repository) Store(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (id, user_id, token, created_at)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, session.ID, session.UserID, session.Token, session.CreatedAt)

	return err
}

func (r *Repository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)

	return err
}

func (r *Repository) Exists(ctx context.Context, userID, token string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sessions WHERE user_id = $1 AND token = $2
		);
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}

	return exists, nil
}

func (r *Repository) Delete(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1 AND token = $2`, userID, token)

	return err
}
