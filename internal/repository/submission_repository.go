package repository

import (
	"errors"

	"quizhub-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository interface {
	// FindByQuizAndUser returns (nil, nil) when no submission exists yet.
	FindByQuizAndUser(quizID, userID string) (*model.Submission, error)
	// CreateIfAbsent inserts the initial in-progress record; a concurrent or
	// repeated init is a no-op, never an overwrite.
	CreateIfAbsent(sub *model.Submission) error
	// SaveProgress merge-updates answers, position and status, leaving every
	// other field untouched.
	SaveProgress(quizID, userID string, answers map[string]int, lastIndex int) error
	// Complete writes the full terminal document.
	Complete(sub *model.Submission) error
	FindAllByQuiz(quizID string) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) FindByQuizAndUser(quizID, userID string) (*model.Submission, error) {
	var sub model.Submission
	err := r.db.First(&sub, "quiz_id = ? AND user_id = ?", quizID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepository) CreateIfAbsent(sub *model.Submission) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub).Error
}

func (r *submissionRepository) SaveProgress(quizID, userID string, answers map[string]int, lastIndex int) error {
	return r.db.Model(&model.Submission{}).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Select("answers", "last_question_index", "status").
		Updates(&model.Submission{
			Answers:           answers,
			LastQuestionIndex: lastIndex,
			Status:            model.SubmissionInProgress,
		}).Error
}

func (r *submissionRepository) Complete(sub *model.Submission) error {
	return r.db.Save(sub).Error
}

func (r *submissionRepository) FindAllByQuiz(quizID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.Where("quiz_id = ?", quizID).Find(&subs).Error
	return subs, err
}
