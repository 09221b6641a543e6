package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
)

var csvHeader = []string{
	"Rank", "Student", "Email", "Score", "Total Questions", "Status",
	"Start Time (IST)", "End Time (IST)", "Time Taken",
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ExportService renders the ranked leaderboard as a downloadable CSV.
type ExportService interface {
	// ExportCSV returns the suggested filename and the UTF-8 CSV bytes.
	ExportCSV(quizID string) (string, []byte, error)
}

type exportService struct {
	admin     QuizAdminService
	analytics AnalyticsService
}

func NewExportService(admin QuizAdminService, analytics AnalyticsService) ExportService {
	return &exportService{admin: admin, analytics: analytics}
}

func (s *exportService) ExportCSV(quizID string) (string, []byte, error) {
	quiz, err := s.admin.GetQuiz(quizID)
	if err != nil {
		return "", nil, err
	}
	lb, err := s.analytics.Leaderboard(quizID)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range lb.Rows {
		record := []string{
			strconv.Itoa(row.Rank),
			row.Student,
			row.Email,
			strconv.Itoa(row.Score),
			strconv.Itoa(row.TotalQuestions),
			row.Status,
			row.StartTime,
			row.EndTime,
			row.TimeTaken,
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("error flushing CSV: %w", err)
	}

	filename := ExportFilename(quiz.Title)
	log.Info().Str("quizID", quizID).Int("rows", len(lb.Rows)).Str("filename", filename).Msg("Leaderboard exported")
	// No trailing newline after the last row.
	return filename, bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ExportFilename derives the download name from the quiz title, collapsing
// whitespace runs to underscores.
func ExportFilename(title string) string {
	return whitespaceRuns.ReplaceAllString(title, "_") + "_results.csv"
}
