package dto

// QuestionDTO is the taker-facing shape: no correct answers, no explanation.
type QuestionDTO struct {
	ID      string   `json:"id"`
	Text    string   `json:"question_text"`
	Options []string `json:"options"`
	Subject string   `json:"subject"`
}

// QuestionFullDTO includes the answer key and explanation; served only on the
// review side, after an attempt exists.
type QuestionFullDTO struct {
	ID             string   `json:"id"`
	Text           string   `json:"question_text"`
	Options        []string `json:"options"`
	CorrectAnswers []int    `json:"correct_answers"`
	Subject        string   `json:"subject"`
	Explanation    string   `json:"explanation,omitempty"`
}
