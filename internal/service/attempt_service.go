package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/model"
	"quizhub-backend/internal/repository"
	"quizhub-backend/internal/scoring"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionNotifier receives a signal whenever a quiz's submission set
// changes, so live leaderboard viewers can be refreshed.
type SubmissionNotifier interface {
	SubmissionChanged(quizID string)
}

// AttemptService drives the per-user-per-quiz state machine:
// NotStarted -> InProgress -> Completed. Completed is terminal.
type AttemptService interface {
	StartOrResume(quizID string, user model.User) (*dto.AttemptStateDTO, error)
	Advance(quizID string, user model.User, req dto.AnswerSubmitDTO) (*dto.AdvanceResultDTO, error)
	Result(quizID string, user model.User) (*dto.ResultDTO, error)
}

type attemptService struct {
	quizRepo repository.QuizRepository
	subRepo  repository.SubmissionRepository
	notifier SubmissionNotifier
	now      func() time.Time
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	subRepo repository.SubmissionRepository,
	notifier SubmissionNotifier,
) AttemptService {
	return NewAttemptServiceWithClock(quizRepo, subRepo, notifier, time.Now)
}

// NewAttemptServiceWithClock allows deterministic timestamps in tests.
func NewAttemptServiceWithClock(
	quizRepo repository.QuizRepository,
	subRepo repository.SubmissionRepository,
	notifier SubmissionNotifier,
	now func() time.Time,
) AttemptService {
	return &attemptService{quizRepo: quizRepo, subRepo: subRepo, notifier: notifier, now: now}
}

func (s *attemptService) StartOrResume(quizID string, user model.User) (*dto.AttemptStateDTO, error) {
	quiz, err := s.loadQuiz(quizID)
	if err != nil {
		return nil, err
	}

	existing, err := s.subRepo.FindByQuizAndUser(quizID, user.UID)
	if err != nil {
		log.Error().Err(err).Str("quizID", quizID).Str("userID", user.UID).Msg("Failed to look up existing submission")
		return nil, fmt.Errorf("error checking submission: %w", err)
	}
	if existing != nil {
		// Any existing record, whatever its status, suppresses init.
		if !existing.Completed() && quiz.Status == model.StatusCompleted {
			return nil, ErrQuizEnded
		}
		return s.stateFor(quiz, existing), nil
	}

	switch quiz.Status {
	case model.StatusDraft:
		return nil, ErrQuizNotJoinable
	case model.StatusCompleted:
		return nil, ErrQuizEnded
	}

	sub := &model.Submission{
		QuizID:            quizID,
		UserID:            user.UID,
		UserName:          displayName(user),
		UserEmail:         displayEmail(user),
		Status:            model.SubmissionInProgress,
		Answers:           map[string]int{},
		LastQuestionIndex: 0,
		Score:             0,
		TotalQuestions:    len(quiz.Questions),
		StartedAt:         s.now(),
	}
	if err := s.subRepo.CreateIfAbsent(sub); err != nil {
		log.Error().Err(err).Str("quizID", quizID).Str("userID", user.UID).Msg("Failed to initialize submission")
		return nil, fmt.Errorf("error starting attempt: %w", err)
	}

	// Re-read so a racing init observes whichever write won.
	created, err := s.subRepo.FindByQuizAndUser(quizID, user.UID)
	if err != nil || created == nil {
		return nil, fmt.Errorf("error loading started attempt: %w", err)
	}
	s.notifyChanged(quizID)
	return s.stateFor(quiz, created), nil
}

func (s *attemptService) Advance(quizID string, user model.User, req dto.AnswerSubmitDTO) (*dto.AdvanceResultDTO, error) {
	quiz, err := s.loadQuiz(quizID)
	if err != nil {
		return nil, err
	}
	sub, err := s.subRepo.FindByQuizAndUser(quizID, user.UID)
	if err != nil {
		return nil, fmt.Errorf("error loading submission: %w", err)
	}
	if sub == nil {
		return nil, ErrAttemptNotFound
	}
	if sub.Completed() {
		return nil, ErrAlreadyCompleted
	}
	if quiz.Status == model.StatusCompleted {
		return nil, ErrQuizEnded
	}

	total := len(quiz.Questions)
	if total == 0 {
		return nil, ErrQuizNotJoinable
	}
	current := clampIndex(sub.LastQuestionIndex, total)
	question := quiz.Questions[current]

	// A participant cannot skip a question.
	if req.SelectedOption == nil {
		return nil, ErrAnswerRequired
	}
	if req.QuestionID != question.ID {
		return nil, ErrQuestionMismatch
	}
	if *req.SelectedOption < 0 || *req.SelectedOption >= len(question.Options) {
		return nil, ErrInvalidOption
	}

	// Only the current question's entry is overwritten.
	answers := make(map[string]int, len(sub.Answers)+1)
	for k, v := range sub.Answers {
		answers[k] = v
	}
	answers[question.ID] = *req.SelectedOption

	if err := s.subRepo.SaveProgress(quizID, user.UID, answers, current+1); err != nil {
		log.Error().Err(err).Str("quizID", quizID).Str("userID", user.UID).Msg("Progress save failed")
		return nil, fmt.Errorf("error saving progress: %w", err)
	}

	if current < total-1 {
		s.notifyChanged(quizID)
		return &dto.AdvanceResultDTO{Finished: false, NextIndex: current + 1}, nil
	}
	return s.finish(quiz, sub, answers)
}

// finish computes the final score and writes the terminal document. On a
// persistence failure the submission stays in-progress with its answers
// already saved, so the participant can retry without re-answering.
func (s *attemptService) finish(quiz *model.Quiz, sub *model.Submission, answers map[string]int) (*dto.AdvanceResultDTO, error) {
	total := len(quiz.Questions)
	score := scoring.Score(quiz.Questions, answers)
	now := s.now()
	timeTaken := int(math.Round(now.Sub(sub.StartedAt).Seconds()))

	sub.Answers = answers
	sub.Score = score
	sub.TotalQuestions = total
	sub.Status = model.SubmissionCompleted
	sub.LastQuestionIndex = total - 1
	sub.CompletedAt = &now
	sub.TimeTaken = timeTaken

	if err := s.subRepo.Complete(sub); err != nil {
		log.Error().Err(err).Str("quizID", quiz.ID).Str("userID", sub.UserID).Msg("Final submission write failed")
		return nil, fmt.Errorf("error submitting quiz: %w", err)
	}
	s.notifyChanged(quiz.ID)
	return &dto.AdvanceResultDTO{
		Finished:       true,
		NextIndex:      total - 1,
		Score:          score,
		TotalQuestions: total,
		Percentage:     scoring.Percentage(score, total),
	}, nil
}

func (s *attemptService) Result(quizID string, user model.User) (*dto.ResultDTO, error) {
	quiz, err := s.loadQuiz(quizID)
	if err != nil {
		return nil, err
	}
	sub, err := s.subRepo.FindByQuizAndUser(quizID, user.UID)
	if err != nil {
		return nil, fmt.Errorf("error loading submission: %w", err)
	}
	if sub == nil {
		return nil, ErrAttemptNotFound
	}
	if !sub.Completed() {
		return nil, ErrAttemptNotCompleted
	}

	total := len(quiz.Questions)
	res := &dto.ResultDTO{
		Score:          sub.Score,
		TotalQuestions: total,
		Percentage:     scoring.Percentage(sub.Score, total),
		TimeTaken:      scoring.FormatDuration(sub.TimeTaken),
		ShowDetails:    scoring.ShowAnswerDetails(quiz),
	}
	if !res.ShowDetails {
		res.Message = scoring.HiddenDetailsMessage(quiz)
		return res, nil
	}
	for i, q := range quiz.Questions {
		review := dto.AnswerReviewDTO{
			QuestionNumber: i + 1,
			Title:          q.Title,
			Options:        q.Options,
			CorrectOption:  q.CorrectOptionIndex,
		}
		if idx, ok := sub.Answers[q.ID]; ok {
			selected := idx
			review.SelectedOption = &selected
			review.Correct = idx == q.CorrectOptionIndex
		}
		res.Details = append(res.Details, review)
	}
	return res, nil
}

func (s *attemptService) loadQuiz(quizID string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", quizID).Msg("Failed to load quiz")
		return nil, fmt.Errorf("error fetching quiz: %w", err)
	}
	return quiz, nil
}

func (s *attemptService) stateFor(quiz *model.Quiz, sub *model.Submission) *dto.AttemptStateDTO {
	total := len(quiz.Questions)
	index := sub.LastQuestionIndex
	if !sub.Completed() {
		// A quiz edit may have removed questions since the last save.
		index = clampIndex(index, total)
	}
	return &dto.AttemptStateDTO{
		QuizID:         quiz.ID,
		Status:         sub.Status,
		QuestionIndex:  index,
		TotalQuestions: total,
		Answers:        sub.Answers,
		StartedAt:      sub.StartedAt,
	}
}

func (s *attemptService) notifyChanged(quizID string) {
	if s.notifier != nil {
		s.notifier.SubmissionChanged(quizID)
	}
}

func clampIndex(idx, total int) int {
	if total == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx > total-1 {
		return total - 1
	}
	return idx
}

func displayName(user model.User) string {
	if user.Name == "" {
		return "Anonymous"
	}
	return user.Name
}

func displayEmail(user model.User) string {
	if user.Email == "" {
		return "No Email"
	}
	return user.Email
}
