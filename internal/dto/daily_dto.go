package dto

// DailySubmitDTO is the request body for answering the daily question.
// SelectedOptionIndex is a pointer so that index 0 passes required binding.
type DailySubmitDTO struct {
	UserID              string `json:"user_id" binding:"required"`
	QuestionID          string `json:"question_id" binding:"required"`
	SelectedOptionIndex *int   `json:"selected_option_index" binding:"required"`
}

type DailySubmitResultDTO struct {
	Success       bool `json:"success"`
	IsCorrect     bool `json:"is_correct"`
	NewStreak     int  `json:"new_streak"`
	Attempts      int  `json:"attempts"`
	AlreadySolved bool `json:"already_solved,omitempty"`
}

// DailyQuestionDTO carries today's question (answer key stripped) together
// with the caller's solve state.
type DailyQuestionDTO struct {
	Question   QuestionDTO `json:"question"`
	HasSolved  bool        `json:"has_solved"`
	WasCorrect bool        `json:"was_correct"`
	Streak     int         `json:"streak"`
	Attempts   int         `json:"attempts"`
}

type StreakDTO struct {
	CurrentStreak int `json:"current_streak"`
}
