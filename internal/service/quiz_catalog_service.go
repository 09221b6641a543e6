package service

import (
	"errors"
	"fmt"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/model"
	"quizhub-backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizCatalogService is the participant-facing read surface. Correct option
// indexes never leave this service.
type QuizCatalogService interface {
	ListQuizzes(includeDrafts bool) ([]dto.QuizSummaryDTO, error)
	GetQuizDetail(id string) (*dto.QuizDetailDTO, error)
}

type quizCatalogService struct {
	quizRepo repository.QuizRepository
}

func NewQuizCatalogService(quizRepo repository.QuizRepository) QuizCatalogService {
	return &quizCatalogService{quizRepo: quizRepo}
}

func (s *quizCatalogService) ListQuizzes(includeDrafts bool) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}
	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		if q.Status == model.StatusDraft && !includeDrafts {
			continue
		}
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			CoverImage:    q.CoverImage,
			Status:        q.Status,
			QuestionCount: len(q.Questions),
			CreatedAt:     q.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *quizCatalogService) GetQuizDetail(id string) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to load quiz detail")
		return nil, fmt.Errorf("error fetching quiz: %w", err)
	}
	// Drafts are invisible to participants, indistinguishable from missing.
	if quiz.Status == model.StatusDraft {
		return nil, ErrQuizNotFound
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizDetailDTO")
		return nil, fmt.Errorf("error preparing quiz detail: %w", err)
	}
	return &resp, nil
}
