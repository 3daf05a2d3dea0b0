package model

import (
	"time"
)

// Question is immutable reference data. CorrectAnswers holds option indices;
// full-test grading uses only the first entry, the daily-question flow accepts
// any of them.
//
// DailySerial, where set, places the question in the daily-practice rotation.
type Question struct {
	ID             string    `gorm:"primarykey" json:"id"`
	Text           string    `json:"question_text" gorm:"type:text;not null"`
	Options        []string  `json:"options" gorm:"serializer:json;not null"`
	CorrectAnswers []int     `json:"correct_answers" gorm:"serializer:json;not null"`
	Subject        string    `json:"subject" gorm:"default:'General'"`
	Explanation    string    `json:"explanation,omitempty" gorm:"type:text"`
	DailySerial    *int      `json:"daily_serial,omitempty" gorm:"uniqueIndex"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
