package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt is the persisted, immutable record of one completed submission.
// Created exactly once per submission and never updated.
type Attempt struct {
	ID             string         `gorm:"primarykey" json:"id"`
	UserID         string         `json:"user_id" gorm:"not null;index"`
	AssessmentID   string         `json:"assessment_id" gorm:"not null;index"`
	Answers        map[string]int `json:"answers" gorm:"serializer:json;not null"`
	Score          int            `json:"score"`
	CorrectCount   int            `json:"correct_count"`
	IncorrectCount int            `json:"incorrect_count"`
	TotalAttempted int            `json:"total_attempted"`
	SubmittedAt    time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
