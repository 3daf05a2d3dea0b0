package model

// Section is a timed sub-block of an assessment. Sections are ordered by
// OrderIndex; once a taker leaves a section it is permanently locked.
//
// MarksPerQuestion and NegativeMarksPerQuestion are declared at creation time
// but grading currently applies a single global scheme regardless of section.
type Section struct {
	ID                       uint     `gorm:"primarykey" json:"id"`
	AssessmentID             string   `json:"assessment_id" gorm:"not null;index"`
	Name                     string   `json:"name" gorm:"not null"`
	DurationMinutes          int      `json:"duration_minutes" gorm:"not null"`
	QuestionCount            int      `json:"question_count" gorm:"not null"`
	MarksPerQuestion         *float64 `json:"marks_per_question,omitempty"`
	NegativeMarksPerQuestion *float64 `json:"negative_marks_per_question,omitempty"`
	OrderIndex               int      `json:"order_index" gorm:"not null"`
}
