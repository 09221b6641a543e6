package service

import (
	"errors"
	"fmt"
	"time"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/model"
	"quizhub-backend/internal/repository"
	"quizhub-backend/internal/scoring"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Display timezone for leaderboard/export timestamps.
var displayZone = loadDisplayZone()

func loadDisplayZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Containers without tzdata still get correct IST offsets.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// AnalyticsService derives the leaderboard and per-question analytics from a
// quiz's current submission set. Both are pure functions of that set; the
// service only fetches and formats.
type AnalyticsService interface {
	Leaderboard(quizID string) (*dto.LeaderboardDTO, error)
	Analytics(quizID string) (*dto.AnalyticsDTO, error)
}

type analyticsService struct {
	quizRepo repository.QuizRepository
	subRepo  repository.SubmissionRepository
}

func NewAnalyticsService(quizRepo repository.QuizRepository, subRepo repository.SubmissionRepository) AnalyticsService {
	return &analyticsService{quizRepo: quizRepo, subRepo: subRepo}
}

func (s *analyticsService) Leaderboard(quizID string) (*dto.LeaderboardDTO, error) {
	quiz, subs, err := s.fetch(quizID)
	if err != nil {
		return nil, err
	}

	ranked := scoring.Rank(subs)
	rows := make([]dto.LeaderboardRowDTO, 0, len(ranked))
	for i, sub := range ranked {
		rows = append(rows, leaderboardRow(i+1, &sub, len(quiz.Questions)))
	}
	return &dto.LeaderboardDTO{QuizID: quizID, Rows: rows}, nil
}

func (s *analyticsService) Analytics(quizID string) (*dto.AnalyticsDTO, error) {
	quiz, subs, err := s.fetch(quizID)
	if err != nil {
		return nil, err
	}

	stats := scoring.QuestionStats(quiz.Questions, subs)
	statDTOs := make([]dto.QuestionStatDTO, 0, len(stats))
	for _, st := range stats {
		statDTOs = append(statDTOs, dto.QuestionStatDTO{
			Name:      st.Name,
			Title:     st.Title,
			Correct:   st.Correct,
			Incorrect: st.Incorrect,
			PassRate:  st.PassRate,
			Band:      st.Band,
		})
	}

	sum := scoring.Summarize(subs)
	return &dto.AnalyticsDTO{
		QuizID:           quizID,
		TotalSubmissions: sum.TotalSubmissions,
		AvgScore:         sum.AvgScore,
		AvgTime:          sum.AvgTimeLabel,
		QuestionStats:    statDTOs,
	}, nil
}

func (s *analyticsService) fetch(quizID string) (*model.Quiz, []model.Submission, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrQuizNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", quizID).Msg("Failed to load quiz for analytics")
		return nil, nil, fmt.Errorf("error fetching quiz: %w", err)
	}
	subs, err := s.subRepo.FindAllByQuiz(quizID)
	if err != nil {
		log.Error().Err(err).Str("quizID", quizID).Msg("Failed to load submissions for analytics")
		return nil, nil, fmt.Errorf("error fetching submissions: %w", err)
	}
	return quiz, subs, nil
}

// leaderboardRow formats one ranked submission for display or export. The
// question total comes from the current quiz definition, not the stored
// snapshot, which may have drifted after a quiz edit.
func leaderboardRow(rank int, sub *model.Submission, totalQuestions int) dto.LeaderboardRowDTO {
	row := dto.LeaderboardRowDTO{
		Rank:           rank,
		Student:        sub.UserName,
		Email:          sub.UserEmail,
		Score:          sub.Score,
		TotalQuestions: totalQuestions,
		StartTime:      "-",
		EndTime:        "-",
		TimeTaken:      "-",
	}
	if row.Student == "" {
		row.Student = "Anonymous"
	}
	if row.Email == "" {
		row.Email = "No Email"
	}
	if !sub.StartedAt.IsZero() {
		row.StartTime = sub.StartedAt.In(displayZone).Format("03:04 PM")
	}
	if sub.Completed() {
		row.Status = "COMPLETED"
		if sub.CompletedAt != nil {
			row.EndTime = sub.CompletedAt.In(displayZone).Format("03:04 PM")
		}
		row.TimeTaken = scoring.FormatDuration(sub.TimeTaken)
	} else {
		row.Status = fmt.Sprintf("In Progress (Q%d)", sub.LastQuestionIndex+1)
	}
	return row
}
