package model

import "time"

// Submission lifecycle statuses. Completed is terminal.
const (
	SubmissionInProgress = "in-progress"
	SubmissionCompleted  = "completed"
)

// Submission is one participant's progress/result record for one quiz, keyed
// by (quiz_id, user_id). The identity fields are a snapshot taken when the
// attempt starts, not a live reference.
type Submission struct {
	QuizID            string         `gorm:"primarykey" json:"quiz_id"`
	UserID            string         `gorm:"primarykey" json:"user_id"`
	UserName          string         `json:"user_name"`
	UserEmail         string         `json:"user_email"`
	Status            string         `json:"status" gorm:"not null;default:'in-progress'"`
	Answers           map[string]int `json:"answers" gorm:"serializer:json"` // question id -> selected option index
	LastQuestionIndex int            `json:"last_question_index"`
	Score             int            `json:"score"` // meaningful only once completed
	TotalQuestions    int            `json:"total_questions"`
	StartedAt         time.Time      `json:"started_at"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	TimeTaken         int            `json:"time_taken"` // whole seconds, fixed at completion
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Completed reports whether the submission reached its terminal state.
func (s *Submission) Completed() bool {
	return s.Status == SubmissionCompleted
}
