package seed

import (
	"time"

	"quizhub-backend/internal/model"
)

// Quizzes returns the fixed starter set inserted by the one-time seed. The
// slugs are stable so re-running the seed against a populated store can be
// detected and skipped.
func Quizzes() []model.Quiz {
	now := time.Now()
	return []model.Quiz{
		{
			ID:          "quiz-asl-basics",
			Title:       "ASL Basics: Alphabet & Numbers",
			Description: "Test your knowledge of the American Sign Language alphabet and basic numbers. Identify the signs shown in the images.",
			CoverImage:  "https://placehold.co/800x450/png?text=ASL+Basics+Cover",
			Status:      model.StatusActive,
			CreatedBy:   "admin-seed",
			CreatedAt:   now,
			Questions: []model.Question{
				{
					ID:                 "q1",
					QuizID:             "quiz-asl-basics",
					Title:              "Identify the Letter",
					Instruction:        "Which letter does this ASL sign represent? (Text Only Test)",
					Options:            []string{"A", "B", "M", "S"},
					CorrectOptionIndex: 0,
					Position:           0,
				},
				{
					ID:                 "q2",
					QuizID:             "quiz-asl-basics",
					Title:              "Identify the Letter",
					Instruction:        "Which letter does this ASL sign represent?",
					Image:              "https://placehold.co/800x450/png?text=Sign+L",
					Options:            []string{"V", "L", "D", "G"},
					CorrectOptionIndex: 1,
					Position:           1,
				},
				{
					ID:                 "q3",
					QuizID:             "quiz-asl-basics",
					Title:              "Identify the Number",
					Instruction:        "What number is being shown?",
					Image:              "https://placehold.co/800x450/png?text=Sign+5",
					Options:            []string{"3", "4", "5", "10"},
					CorrectOptionIndex: 2,
					Position:           2,
				},
			},
		},
		{
			ID:          "quiz-common-phrases",
			Title:       "Common Phrases - Daily Life",
			Description: "Challenge yourself with common daily phrases and greetings in ASL.",
			Status:      model.StatusActive,
			CreatedBy:   "admin-seed",
			CreatedAt:   now,
			Questions: []model.Question{
				{
					ID:                 "q1",
					QuizID:             "quiz-common-phrases",
					Title:              "Identify the Phrase",
					Instruction:        "What phrase is being signed?",
					Image:              "https://placehold.co/800x450/png?text=Sign+Hello",
					Options:            []string{"Goodbye", "Hello", "Thank You", "Please"},
					CorrectOptionIndex: 1,
					Position:           0,
				},
				{
					ID:                 "q2",
					QuizID:             "quiz-common-phrases",
					Title:              "Identify the Phrase",
					Instruction:        "What phrase is being signed?",
					Image:              "https://placehold.co/800x450/png?text=Sign+Thank+You",
					Options:            []string{"Sorry", "Yes", "No", "Thank You"},
					CorrectOptionIndex: 3,
					Position:           1,
				},
			},
		},
	}
}
