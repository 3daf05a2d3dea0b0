package dto

import "time"

// AssessmentSubmitDTO is the request body for submitting a completed attempt.
// An empty Answers map is a valid submission and yields a zero-score attempt.
type AssessmentSubmitDTO struct {
	UserID  string         `json:"user_id" binding:"required"`
	Answers map[string]int `json:"answers"`
}

type AssessmentSubmitResultDTO struct {
	Success   bool   `json:"success"`
	AttemptID string `json:"attempt_id"`
}

// AttemptSummaryDTO is one row of a user's attempt history.
type AttemptSummaryDTO struct {
	ID             string    `json:"id"`
	AssessmentID   string    `json:"assessment_id"`
	Score          int       `json:"score"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	TotalAttempted int       `json:"total_attempted"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// QuestionResultDTO is one question of a graded attempt review.
// Verdict is "correct", "incorrect", or "unattempted".
type QuestionResultDTO struct {
	Question      QuestionFullDTO `json:"question"`
	SelectedIndex *int            `json:"selected_index,omitempty"`
	Verdict       string          `json:"verdict"`
}

// SubjectBreakdownDTO aggregates attempt results per subject tag.
type SubjectBreakdownDTO struct {
	Subject        string `json:"subject"`
	TotalQuestions int    `json:"total_questions"`
	Attempted      int    `json:"attempted"`
	Correct        int    `json:"correct"`
	Incorrect      int    `json:"incorrect"`
	Score          int    `json:"score"`
}

// AttemptReviewDTO is the full result-review payload for one attempt.
type AttemptReviewDTO struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	AssessmentID   string                `json:"assessment_id"`
	Score          int                   `json:"score"`
	CorrectCount   int                   `json:"correct_count"`
	IncorrectCount int                   `json:"incorrect_count"`
	TotalAttempted int                   `json:"total_attempted"`
	TotalQuestions int                   `json:"total_questions"`
	SubmittedAt    time.Time             `json:"submitted_at"`
	Results        []QuestionResultDTO   `json:"results"`
	Subjects       []SubjectBreakdownDTO `json:"subjects"`
}
