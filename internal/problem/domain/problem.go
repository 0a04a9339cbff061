package domain

import "time"

type SolvedProblem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ImageURL    string    `json:"image_url"`
	ProblemText string    `json:"problem_text"`
	Solution    string    `json:"solution"`
	CreatedAt   time.Time `json:"created_at"`
}
