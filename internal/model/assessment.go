package model

import (
	"time"
)

// Assessment is a test definition: ordered sections over a flat, ordered list
// of question ids. Section boundaries are implied by the cumulative
// QuestionCount offsets. Never mutated once attempts exist.
type Assessment struct {
	ID              string    `gorm:"primarykey" json:"id"`
	Title           string    `json:"title" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	QuestionIDs     []string  `json:"question_ids" gorm:"serializer:json;not null"`
	Sections        []Section `json:"sections,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
