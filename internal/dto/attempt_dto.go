package dto

import "time"

// AnswerSubmitDTO records the participant's choice for the question currently
// displayed and asks the state machine to advance. SelectedOption is a pointer
// so index 0 survives binding validation.
type AnswerSubmitDTO struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedOption *int   `json:"selected_option" binding:"required"`
}

// AttemptStateDTO is what a participant needs to render or resume an attempt.
type AttemptStateDTO struct {
	QuizID         string         `json:"quiz_id"`
	Status         string         `json:"status"`
	QuestionIndex  int            `json:"question_index"`
	TotalQuestions int            `json:"total_questions"`
	Answers        map[string]int `json:"answers"`
	StartedAt      time.Time      `json:"started_at"`
}

// AdvanceResultDTO reports the outcome of a Next action. Score fields are
// meaningful only when Finished is true.
type AdvanceResultDTO struct {
	Finished       bool `json:"finished"`
	NextIndex      int  `json:"next_index"`
	Score          int  `json:"score,omitempty"`
	TotalQuestions int  `json:"total_questions,omitempty"`
	Percentage     int  `json:"percentage,omitempty"`
}

// AnswerReviewDTO is one row of the per-question review on the result screen.
type AnswerReviewDTO struct {
	QuestionNumber int      `json:"question_number"`
	Title          string   `json:"title"`
	Options        []string `json:"options"`
	SelectedOption *int     `json:"selected_option,omitempty"` // nil when skipped
	CorrectOption  int      `json:"correct_option"`
	Correct        bool     `json:"correct"`
}

// ResultDTO is the completed-attempt view. Details are present only when the
// visibility policy allows them; otherwise Message explains why they are not.
type ResultDTO struct {
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Percentage     int               `json:"percentage"`
	TimeTaken      string            `json:"time_taken"`
	ShowDetails    bool              `json:"show_details"`
	Message        string            `json:"message,omitempty"`
	Details        []AnswerReviewDTO `json:"details,omitempty"`
}
