package repository

import (
	"quizhub-backend/internal/model"

	"gorm.io/gorm"
)

// maxBatchOps caps how many submission rows one delete statement may touch,
// mirroring the store's documented per-batch operation limit.
const maxBatchOps = 500

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	Exists(id string) (bool, error)
	FindByID(id string) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	UpdateFields(id string, fields map[string]interface{}) error
	DeleteWithSubmissions(id string) error
	Count() (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// Creates associated questions in the same insert.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *quizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).Order("quizzes.created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	// The question set is replaced wholesale: drop the old rows first, then
	// Save re-creates the new ordered set through the association.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Save(quiz).Error
	})
}

func (r *quizRepository) UpdateFields(id string, fields map[string]interface{}) error {
	res := r.db.Model(&model.Quiz{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithSubmissions removes a quiz together with every submission under
// it. Submissions go first, chunked at the batch limit, all inside one
// transaction: either everything is deleted or the quiz row survives intact.
func (r *quizRepository) DeleteWithSubmissions(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var userIDs []string
		if err := tx.Model(&model.Submission{}).
			Where("quiz_id = ?", id).
			Pluck("user_id", &userIDs).Error; err != nil {
			return err
		}
		for _, batch := range chunk(userIDs, maxBatchOps) {
			if err := tx.Where("quiz_id = ? AND user_id IN ?", id, batch).
				Delete(&model.Submission{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Quiz{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *quizRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Count(&count).Error
	return count, err
}

// chunk splits ids into slices of at most size elements.
func chunk(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	var batches [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
