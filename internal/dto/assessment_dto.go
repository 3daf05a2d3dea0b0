package dto

import "time"

// SectionCreateDTO is used within AssessmentCreateDTO for admin creation.
type SectionCreateDTO struct {
	Name                     string   `json:"name" binding:"required"`
	DurationMinutes          int      `json:"duration_minutes" binding:"required,gt=0"`
	QuestionCount            int      `json:"question_count" binding:"required,gt=0"`
	MarksPerQuestion         *float64 `json:"marks_per_question"`
	NegativeMarksPerQuestion *float64 `json:"negative_marks_per_question"`
}

// AssessmentCreateDTO is for admin to create a new assessment with its
// sections and ordered question ids.
type AssessmentCreateDTO struct {
	ID              string             `json:"id"`
	Title           string             `json:"title" binding:"required"`
	DurationMinutes int                `json:"duration_minutes" binding:"required,gt=0"`
	QuestionIDs     []string           `json:"question_ids" binding:"required,min=1"`
	Sections        []SectionCreateDTO `json:"sections" binding:"required,min=1,dive"`
}

type SectionDTO struct {
	Name                     string   `json:"name"`
	DurationMinutes          int      `json:"duration_minutes"`
	QuestionCount            int      `json:"question_count"`
	MarksPerQuestion         *float64 `json:"marks_per_question,omitempty"`
	NegativeMarksPerQuestion *float64 `json:"negative_marks_per_question,omitempty"`
	OrderIndex               int      `json:"order_index"`
}

// AssessmentSummaryDTO is used for listing assessments.
type AssessmentSummaryDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	SectionCount    int       `json:"section_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// AssessmentDetailDTO is what the exam view consumes: the full structure with
// questions stripped of correct answers and explanations.
type AssessmentDetailDTO struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	DurationMinutes int           `json:"duration_minutes"`
	QuestionIDs     []string      `json:"question_ids"`
	Sections        []SectionDTO  `json:"sections"`
	Questions       []QuestionDTO `json:"questions"`
	CreatedAt       time.Time     `json:"created_at"`
}
