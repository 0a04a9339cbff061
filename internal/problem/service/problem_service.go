package service

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Darrly207/Gemetry-BE/internal/problem/domain"
)

// SolvePrompt asks the model for a step-by-step, Markdown-formatted
// walkthrough in whatever language the problem is written in.
const SolvePrompt = "Please solve this math problem step by step and display by language in the image.\n" +
	"Show your work and explain each step clearly.\n" +
	"Format your response using Markdown:\n" +
	"- Use **bold** for emphasis\n" +
	"- Use bullet points for steps\n" +
	"- Use `code` blocks for equations\n" +
	"- Number each major step\n" +
	"\n" +
	"Example format:\n" +
	"\n" +
	"**Step 1: Understanding the problem**\n" +
	"* Given equation: `2x + 5 = 13`\n" +
	"* We need to solve for x\n" +
	"\n" +
	"**Step 2: Solving**\n" +
	"* Subtract 5 from both sides: `2x = 8`\n" +
	"* Divide both sides by 2: `x = 4`\n" +
	"\n" +
	"**Solution:** x = 4\n"

type ProblemService struct {
	problems  domain.ProblemRepository
	generator domain.SolutionGenerator
}

func NewProblemService(problems domain.ProblemRepository, generator domain.SolutionGenerator) *ProblemService {
	return &ProblemService{
		problems:  problems,
		generator: generator,
	}
}

// Solve reads the uploaded image from imagePath, asks the model for a
// solution, records it and returns the solution text. The upload is only
// needed for the model call and is removed once the row is written.
func (s *ProblemService) Solve(ctx context.Context, userID, imagePath, imageName, mimeType string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", err
	}

	solution, err := s.generator.GenerateFromImage(ctx, SolvePrompt, mimeType, data)
	if err != nil {
		return "", err
	}

	problem := &domain.SolvedProblem{
		ID:          uuid.New().String(),
		UserID:      userID,
		ImageURL:    imageName,
		ProblemText: SolvePrompt,
		Solution:    solution,
		CreatedAt:   time.Now(),
	}
	if err := s.problems.Insert(ctx, problem); err != nil {
		return "", err
	}

	if err := os.Remove(imagePath); err != nil {
		log.Printf("warn: failed to remove upload %s: %v", imagePath, err)
	}

	return solution, nil
}

func (s *ProblemService) History(ctx context.Context, userID string) ([]domain.SolvedProblem, error) {
	return s.problems.ListByUserID(ctx, userID)
}
