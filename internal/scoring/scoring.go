package scoring

import (
	"fmt"
	"math"
	"sort"

	"quizhub-backend/internal/model"
)

// missingTimeSentinel pushes submissions without a usable timeTaken below
// finished submissions with an equal score. A zero time counts as missing.
const missingTimeSentinel = 999999

// Score counts the questions whose recorded answer matches the correct option
// index exactly. Unanswered questions never match and therefore count as
// incorrect. No partial credit, no negative marking.
func Score(questions []model.Question, answers map[string]int) int {
	correct := 0
	for _, q := range questions {
		if idx, ok := answers[q.ID]; ok && idx == q.CorrectOptionIndex {
			correct++
		}
	}
	return correct
}

// Rank orders submissions for the leaderboard: score descending, then
// timeTaken ascending. The sort is stable so equal (score, time) pairs keep
// their input order. In-progress submissions rank with score 0 and the time
// sentinel; they are not hidden, only ranked as scoreless.
func Rank(subs []model.Submission) []model.Submission {
	ranked := make([]model.Submission, len(subs))
	copy(ranked, subs)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return rankTime(&ranked[i]) < rankTime(&ranked[j])
	})
	return ranked
}

func rankTime(s *model.Submission) int {
	if s.TimeTaken == 0 {
		return missingTimeSentinel
	}
	return s.TimeTaken
}

// Difficulty bands for a question's pass rate. The thresholds themselves
// (70 and 40) fall in the mid band.
const (
	BandHigh = "high"
	BandMid  = "mid"
	BandLow  = "low"
)

// BandFor classifies a pass rate percentage into a difficulty band.
func BandFor(passRate int) string {
	switch {
	case passRate > 70:
		return BandHigh
	case passRate < 40:
		return BandLow
	default:
		return BandMid
	}
}

// QuestionStat holds correctness statistics for a single question across all
// submissions, regardless of completion status.
type QuestionStat struct {
	Name      string // "Q1", "Q2", ...
	Title     string
	Correct   int
	Incorrect int
	PassRate  int // rounded percentage, 0 when there are no submissions
	Band      string
}

// QuestionStats derives per-question correctness stats. A submission with no
// answer for a question counts as incorrect for it, not excluded.
func QuestionStats(questions []model.Question, subs []model.Submission) []QuestionStat {
	stats := make([]QuestionStat, 0, len(questions))
	for i, q := range questions {
		correct := 0
		for _, sub := range subs {
			if idx, ok := sub.Answers[q.ID]; ok && idx == q.CorrectOptionIndex {
				correct++
			}
		}
		incorrect := len(subs) - correct
		passRate := 0
		if total := correct + incorrect; total > 0 {
			passRate = int(math.Round(float64(correct) / float64(total) * 100))
		}
		stats = append(stats, QuestionStat{
			Name:      fmt.Sprintf("Q%d", i+1),
			Title:     q.Title,
			Correct:   correct,
			Incorrect: incorrect,
			PassRate:  passRate,
			Band:      BandFor(passRate),
		})
	}
	return stats
}

// Summary aggregates the whole submission set, in-progress included.
type Summary struct {
	TotalSubmissions int
	AvgScore         float64
	AvgTimeSeconds   int
	AvgTimeLabel     string // "{minutes}m {seconds}s"
}

// Summarize computes the aggregate metrics. Submissions without a score
// contribute 0 to the average (unlike the leaderboard tie-break, which only
// sentinels missing time). Missing times also contribute 0 here.
func Summarize(subs []model.Submission) Summary {
	sum := Summary{TotalSubmissions: len(subs), AvgTimeLabel: "0m 0s"}
	if len(subs) == 0 {
		return sum
	}
	scoreTotal, timeTotal := 0, 0
	for _, s := range subs {
		scoreTotal += s.Score
		timeTotal += s.TimeTaken
	}
	sum.AvgScore = float64(scoreTotal) / float64(len(subs))
	sum.AvgTimeSeconds = int(math.Round(float64(timeTotal) / float64(len(subs))))
	sum.AvgTimeLabel = FormatDuration(sum.AvgTimeSeconds)
	return sum
}

// FormatDuration renders whole seconds as "Nm Ss", or "N/A" when the value is
// zero or negative (unknown time).
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// Percentage is the score fraction shown on the result screen, rounded.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
