package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Darrly207/Gemetry-BE/internal/problem/domain"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock stands in
// for it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, problem *domain.SolvedProblem) error {
	query := `INSERT INTO solved_problems (id, user_id, image_url, problem_text, solution, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		problem.ID, problem.UserID, problem.ImageURL, problem.ProblemText, problem.Solution, problem.CreatedAt)

	return err
}

func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]domain.SolvedProblem, error) {
	query := `
		SELECT id, user_id, image_url, problem_text, solution, created_at
		FROM solved_problems
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solved problems: %w", err)
	}
	defer rows.Close()

	problems := make([]domain.SolvedProblem, 0)
	for rows.Next() {
		var p domain.SolvedProblem
		if err := rows.Scan(&p.ID, &p.UserID, &p.ImageURL, &p.ProblemText, &p.Solution, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solved problem: %w", err)
		}
		problems = append(problems, p)
	}

	return problems, rows.Err()
}
