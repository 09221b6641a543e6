package model

type Question struct {
	ID                 string   `gorm:"primarykey" json:"id"` // unique within its quiz, not globally
	QuizID             string   `gorm:"primarykey;index" json:"quiz_id"`
	Title              string   `json:"title" gorm:"not null"`
	Instruction        string   `json:"instruction" gorm:"type:text;not null"`
	Image              string   `json:"image,omitempty"`
	Options            []string `json:"options" gorm:"serializer:json;not null"`
	CorrectOptionIndex int      `json:"correct_option_index" gorm:"not null"`
	Position           int      `json:"position" gorm:"not null"` // question order is significant
}
