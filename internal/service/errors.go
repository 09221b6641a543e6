package service

import "errors"

var (
	// ErrQuizNotFound is returned when a quiz id resolves to nothing.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizExists is returned when a new quiz's slug collides with an existing one.
	ErrQuizExists = errors.New("quiz id already exists")
	// ErrQuizNotJoinable is returned when a participant tries to start a draft quiz.
	ErrQuizNotJoinable = errors.New("quiz is not open for participation")
	// ErrQuizEnded is returned when a completed quiz no longer accepts progress.
	ErrQuizEnded = errors.New("quiz is no longer accepting submissions")
	// ErrAttemptNotFound is returned when no submission exists for the user/quiz pair.
	ErrAttemptNotFound = errors.New("no attempt found for this quiz")
	// ErrAttemptNotCompleted is returned when a result is requested mid-attempt.
	ErrAttemptNotCompleted = errors.New("attempt is not completed yet")
	// ErrAlreadyCompleted is returned for write operations on a terminal submission.
	ErrAlreadyCompleted = errors.New("attempt already completed")
	// ErrAnswerRequired rejects advancing past a question with no recorded answer.
	ErrAnswerRequired = errors.New("an answer is required before advancing")
	// ErrQuestionMismatch rejects answers targeting anything but the current question.
	ErrQuestionMismatch = errors.New("answer does not target the current question")
	// ErrInvalidOption rejects option indexes outside the question's option list.
	ErrInvalidOption = errors.New("selected option is out of range")
	// ErrInvalidQuestion flags an authored question that violates the data model.
	ErrInvalidQuestion = errors.New("invalid question")
)
