package model

import (
	"time"
)

// DailySolve records one user's attempts at the daily question for one UTC
// date. Once IsCorrect is set the day is locked; further submissions only
// bump Attempts.
type DailySolve struct {
	UserID      string    `gorm:"primarykey" json:"user_id"`
	Date        string    `gorm:"primarykey" json:"date"` // YYYY-MM-DD, UTC
	QuestionID  string    `json:"question_id" gorm:"not null"`
	IsCorrect   bool      `json:"is_correct"`
	Attempts    int       `json:"attempts"`
	SubmittedAt time.Time `json:"submitted_at"`
}
