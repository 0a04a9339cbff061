package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_problem.go -package=mocks github.com/Darrly207/Gemetry-BE/internal/problem/domain ProblemRepository,SolutionGenerator

type ProblemRepository interface {
	Insert(ctx context.Context, problem *SolvedProblem) error
	ListByUserID(ctx context.Context, userID string) ([]SolvedProblem, error)
}

// SolutionGenerator produces a worked solution for an image of a math
// problem. pkg/gemini is the production implementation.
type SolutionGenerator interface {
	GenerateFromImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error)
}
