package service

import (
	"errors"
	"fmt"
	"time"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/model"
	"quizhub-backend/internal/repository"
	"quizhub-backend/internal/seed"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizAdminService covers the authoring surface: create/edit/delete quizzes,
// lifecycle toggles and the one-time seed.
type QuizAdminService interface {
	CreateQuiz(req dto.QuizCreateDTO, createdBy string) (*dto.QuizResponseDTO, error)
	UpdateQuiz(id string, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(id string) error
	ToggleStatus(id string) (string, error)
	ToggleAnswerDetails(id string) (bool, error)
	GetQuiz(id string) (*dto.QuizResponseDTO, error)
	SeedInitialQuizzes() (int, error)
}

type quizAdminService struct {
	quizRepo repository.QuizRepository
}

func NewQuizAdminService(quizRepo repository.QuizRepository) QuizAdminService {
	return &quizAdminService{quizRepo: quizRepo}
}

func (s *quizAdminService) CreateQuiz(req dto.QuizCreateDTO, createdBy string) (*dto.QuizResponseDTO, error) {
	id := Slugify(req.Title)
	if id == "" {
		return nil, fmt.Errorf("%w: title produces an empty id", ErrInvalidQuestion)
	}

	// Pre-write existence check; a race between two creators of the same slug
	// is an accepted limitation, there is no store-level constraint beyond it.
	exists, err := s.quizRepo.Exists(id)
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to check quiz existence")
		return nil, fmt.Errorf("error checking quiz id: %w", err)
	}
	if exists {
		return nil, ErrQuizExists
	}

	questions, err := buildQuestions(id, req.Questions)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}
	quiz := model.Quiz{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Status:      status,
		Questions:   questions,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}
	return quizResponse(&quiz)
}

func (s *quizAdminService) UpdateQuiz(id string, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.load(id)
	if err != nil {
		return nil, err
	}
	questions, err := buildQuestions(id, req.Questions)
	if err != nil {
		return nil, err
	}

	// id, createdBy and createdAt are immutable; everything else is replaced.
	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.CoverImage = req.CoverImage
	if req.Status != "" {
		quiz.Status = req.Status
	}
	quiz.Questions = questions

	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to update quiz")
		return nil, fmt.Errorf("database error updating quiz: %w", err)
	}
	return quizResponse(quiz)
}

func (s *quizAdminService) DeleteQuiz(id string) error {
	err := s.quizRepo.DeleteWithSubmissions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrQuizNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Cascading quiz delete failed")
		return fmt.Errorf("error deleting quiz: %w", err)
	}
	return nil
}

func (s *quizAdminService) ToggleStatus(id string) (string, error) {
	quiz, err := s.load(id)
	if err != nil {
		return "", err
	}
	newStatus := model.StatusActive
	if quiz.Status == model.StatusActive {
		newStatus = model.StatusCompleted
	}
	if err := s.quizRepo.UpdateFields(id, map[string]interface{}{"status": newStatus}); err != nil {
		return "", fmt.Errorf("error toggling status: %w", err)
	}
	return newStatus, nil
}

func (s *quizAdminService) ToggleAnswerDetails(id string) (bool, error) {
	quiz, err := s.load(id)
	if err != nil {
		return false, err
	}
	newSetting := !quiz.ShowAnswerDetails
	if err := s.quizRepo.UpdateFields(id, map[string]interface{}{"show_answer_details": newSetting}); err != nil {
		return false, fmt.Errorf("error toggling answer details: %w", err)
	}
	return newSetting, nil
}

func (s *quizAdminService) GetQuiz(id string) (*dto.QuizResponseDTO, error) {
	quiz, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return quizResponse(quiz)
}

// SeedInitialQuizzes inserts the fixed starter set once. It is skipped
// entirely as soon as any quiz exists, making repeated calls harmless.
func (s *quizAdminService) SeedInitialQuizzes() (int, error) {
	count, err := s.quizRepo.Count()
	if err != nil {
		return 0, fmt.Errorf("error checking existing quizzes: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("Seed skipped, quizzes already present")
		return 0, nil
	}
	quizzes := seed.Quizzes()
	for i := range quizzes {
		if err := s.quizRepo.Create(&quizzes[i]); err != nil {
			return i, fmt.Errorf("error seeding quiz %q: %w", quizzes[i].ID, err)
		}
	}
	log.Info().Int("seeded", len(quizzes)).Msg("Initial quizzes seeded")
	return len(quizzes), nil
}

func (s *quizAdminService) load(id string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to load quiz")
		return nil, fmt.Errorf("error fetching quiz: %w", err)
	}
	return quiz, nil
}

// buildQuestions validates authored questions and assigns ids and positions.
// Order in the request defines question order.
func buildQuestions(quizID string, reqs []dto.QuestionUpsertDTO) ([]model.Question, error) {
	seen := make(map[string]bool, len(reqs))
	questions := make([]model.Question, 0, len(reqs))
	for i, q := range reqs {
		id := q.ID
		if id == "" {
			id = "q-" + uuid.NewString()
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuestion, id)
		}
		seen[id] = true
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d correct option index %d out of range",
				ErrInvalidQuestion, i+1, q.CorrectOptionIndex)
		}
		questions = append(questions, model.Question{
			ID:                 id,
			QuizID:             quizID,
			Title:              q.Title,
			Instruction:        q.Instruction,
			Image:              q.Image,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
			Position:           i,
		})
	}
	return questions, nil
}

func quizResponse(quiz *model.Quiz) (*dto.QuizResponseDTO, error) {
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}
