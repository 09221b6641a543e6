package scoring

import "quizhub-backend/internal/model"

// ShowAnswerDetails decides whether a participant may see per-question
// correctness after finishing: either the admin forced it on, or the quiz has
// been marked completed.
func ShowAnswerDetails(quiz *model.Quiz) bool {
	return quiz.ShowAnswerDetails || quiz.Status == model.StatusCompleted
}

// HiddenDetailsMessage is shown in place of the review when details are
// hidden. Active quizzes promise the review once the admin completes the quiz.
func HiddenDetailsMessage(quiz *model.Quiz) string {
	msg := "Detailed results are currently hidden."
	if quiz.Status == model.StatusActive {
		msg += " They will be available once the quiz is marked as completed by the admin."
	}
	return msg
}
