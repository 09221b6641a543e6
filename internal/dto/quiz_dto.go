package dto

import "time"

// QuestionUpsertDTO is used inside quiz create/update payloads. ID is
// optional; the service assigns one when it is omitted.
type QuestionUpsertDTO struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title" binding:"required"`
	Instruction        string   `json:"instruction" binding:"required"`
	Image              string   `json:"image"`
	Options            []string `json:"options" binding:"required,min=2"`
	CorrectOptionIndex int      `json:"correct_option_index" binding:"gte=0"`
}

// QuizCreateDTO is the admin payload for authoring a quiz. The quiz id is a
// slug derived from the title, never client-supplied.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	CoverImage  string              `json:"cover_image"`
	Status      string              `json:"status" binding:"omitempty,oneof=draft active completed"`
	Questions   []QuestionUpsertDTO `json:"questions" binding:"dive"`
}

// QuizUpdateDTO replaces a quiz's editable content. Identity and provenance
// fields (id, created_by, created_at) are immutable.
type QuizUpdateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	CoverImage  string              `json:"cover_image"`
	Status      string              `json:"status" binding:"omitempty,oneof=draft active completed"`
	Questions   []QuestionUpsertDTO `json:"questions" binding:"dive"`
}

// QuestionResponseDTO is the admin view of a question, correct index included.
type QuestionResponseDTO struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Instruction        string   `json:"instruction"`
	Image              string   `json:"image,omitempty"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Position           int      `json:"position"`
}

// QuizResponseDTO is the full admin view of a quiz.
type QuizResponseDTO struct {
	ID                string                `json:"id"`
	Title             string                `json:"title"`
	Description       string                `json:"description,omitempty"`
	CoverImage        string                `json:"cover_image,omitempty"`
	Status            string                `json:"status"`
	ShowAnswerDetails bool                  `json:"show_answer_details"`
	Questions         []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedBy         string                `json:"created_by"`
	CreatedAt         time.Time             `json:"created_at"`
}

// QuizSummaryDTO is used for listing quizzes.
type QuizSummaryDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CoverImage    string    `json:"cover_image,omitempty"`
	Status        string    `json:"status"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionViewDTO is the participant view of a question: no correct index.
type QuestionViewDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Instruction string   `json:"instruction"`
	Image       string   `json:"image,omitempty"`
	Options     []string `json:"options"`
	Position    int      `json:"position"`
}

// QuizDetailDTO is the participant view of a quiz.
type QuizDetailDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	CoverImage  string            `json:"cover_image,omitempty"`
	Status      string            `json:"status"`
	Questions   []QuestionViewDTO `json:"questions,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
