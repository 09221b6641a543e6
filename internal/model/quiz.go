package model

import "time"

// Quiz lifecycle statuses. Status governs participation eligibility and the
// default answer-visibility rule.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type Quiz struct {
	ID                string     `gorm:"primarykey" json:"id"` // slug derived from title, immutable
	Title             string     `json:"title" gorm:"not null"`
	Description       string     `json:"description,omitempty" gorm:"type:text"`
	CoverImage        string     `json:"cover_image,omitempty"`
	Status            string     `json:"status" gorm:"not null;default:'draft'"`
	ShowAnswerDetails bool       `json:"show_answer_details"` // admin override: force detailed review
	Questions         []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedBy         string     `json:"created_by" gorm:"not null"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
