package scoring

import (
	"testing"

	"quizhub-backend/internal/model"
)

func threeQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", CorrectOptionIndex: 0},
		{ID: "q2", CorrectOptionIndex: 1},
		{ID: "q3", CorrectOptionIndex: 2},
	}
}

func TestScoreCountsExactMatches(t *testing.T) {
	answers := map[string]int{"q1": 0, "q2": 1, "q3": 3}
	if got := Score(threeQuestions(), answers); got != 2 {
		t.Fatalf("expected score 2, got %d", got)
	}
}

func TestScoreUnansweredCountsIncorrect(t *testing.T) {
	if got := Score(threeQuestions(), map[string]int{"q2": 1}); got != 1 {
		t.Fatalf("expected score 1, got %d", got)
	}
	if got := Score(threeQuestions(), nil); got != 0 {
		t.Fatalf("expected score 0 for no answers, got %d", got)
	}
}

func TestRankOrdersByScoreThenTime(t *testing.T) {
	subs := []model.Submission{
		{UserID: "s1", Score: 8, TimeTaken: 120},
		{UserID: "s2", Score: 8, TimeTaken: 90},
		{UserID: "s3", Score: 9, TimeTaken: 300},
	}
	ranked := Rank(subs)
	want := []string{"s3", "s2", "s1"}
	for i, id := range want {
		if ranked[i].UserID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ranked[i].UserID)
		}
	}
	// Input slice order is untouched.
	if subs[0].UserID != "s1" {
		t.Fatalf("Rank mutated its input")
	}
}

func TestRankMissingTimeSortsLast(t *testing.T) {
	subs := []model.Submission{
		{UserID: "s4", Score: 5}, // no time recorded
		{UserID: "s5", Score: 5, TimeTaken: 500},
	}
	ranked := Rank(subs)
	if ranked[0].UserID != "s5" || ranked[1].UserID != "s4" {
		t.Fatalf("expected s5 before s4, got [%s %s]", ranked[0].UserID, ranked[1].UserID)
	}
}

func TestRankStableForEqualPairs(t *testing.T) {
	subs := []model.Submission{
		{UserID: "a", Score: 3, TimeTaken: 60},
		{UserID: "b", Score: 3, TimeTaken: 60},
		{UserID: "c", Score: 3, TimeTaken: 60},
	}
	ranked := Rank(subs)
	for i, id := range []string{"a", "b", "c"} {
		if ranked[i].UserID != id {
			t.Fatalf("stable order broken at %d: got %s", i, ranked[i].UserID)
		}
	}
}

func TestBandThresholds(t *testing.T) {
	cases := []struct {
		passRate int
		want     string
	}{
		{71, BandHigh},
		{70, BandMid},
		{40, BandMid},
		{39, BandLow},
		{0, BandLow},
		{100, BandHigh},
	}
	for _, c := range cases {
		if got := BandFor(c.passRate); got != c.want {
			t.Fatalf("passRate %d: expected %s, got %s", c.passRate, c.want, got)
		}
	}
}

func TestQuestionStatsAbsenceCountsIncorrect(t *testing.T) {
	questions := []model.Question{{ID: "q1", Title: "first", CorrectOptionIndex: 1}}
	subs := []model.Submission{
		{UserID: "u1", Answers: map[string]int{"q1": 1}},
		{UserID: "u2", Answers: map[string]int{"q1": 0}},
		{UserID: "u3"}, // never reached the question
	}
	stats := QuestionStats(questions, subs)
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat, got %d", len(stats))
	}
	s := stats[0]
	if s.Name != "Q1" || s.Correct != 1 || s.Incorrect != 2 {
		t.Fatalf("unexpected stat: %+v", s)
	}
	if s.PassRate != 33 || s.Band != BandLow {
		t.Fatalf("expected passRate 33 low band, got %d %s", s.PassRate, s.Band)
	}
}

func TestQuestionStatsNoSubmissions(t *testing.T) {
	stats := QuestionStats(threeQuestions(), nil)
	for _, s := range stats {
		if s.PassRate != 0 || s.Correct != 0 || s.Incorrect != 0 {
			t.Fatalf("expected zeroed stat, got %+v", s)
		}
	}
}

func TestSummarizeDefaultsMissingValues(t *testing.T) {
	subs := []model.Submission{
		{Score: 4, TimeTaken: 100, Status: model.SubmissionCompleted},
		{Status: model.SubmissionInProgress}, // no score, no time
	}
	sum := Summarize(subs)
	if sum.TotalSubmissions != 2 {
		t.Fatalf("expected 2 submissions, got %d", sum.TotalSubmissions)
	}
	if sum.AvgScore != 2.0 {
		t.Fatalf("expected avg score 2.0, got %f", sum.AvgScore)
	}
	if sum.AvgTimeSeconds != 50 {
		t.Fatalf("expected avg time 50s, got %d", sum.AvgTimeSeconds)
	}
	if sum.AvgTimeLabel != "0m 50s" {
		t.Fatalf("unexpected avg time label %q", sum.AvgTimeLabel)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.TotalSubmissions != 0 || sum.AvgScore != 0 || sum.AvgTimeLabel != "0m 0s" {
		t.Fatalf("unexpected empty summary: %+v", sum)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "N/A"},
		{-5, "N/A"},
		{59, "0m 59s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.seconds); got != c.want {
			t.Fatalf("%d seconds: expected %q, got %q", c.seconds, c.want, got)
		}
	}
}

func TestVisibilityMatrix(t *testing.T) {
	cases := []struct {
		override bool
		status   string
		want     bool
	}{
		{false, model.StatusActive, false},
		{false, model.StatusCompleted, true},
		{true, model.StatusActive, true},
		{true, model.StatusCompleted, true},
	}
	for _, c := range cases {
		quiz := &model.Quiz{ShowAnswerDetails: c.override, Status: c.status}
		if got := ShowAnswerDetails(quiz); got != c.want {
			t.Fatalf("override=%v status=%s: expected %v, got %v", c.override, c.status, c.want, got)
		}
	}
}

func TestHiddenDetailsMessageMentionsCompletionOnlyWhenActive(t *testing.T) {
	active := HiddenDetailsMessage(&model.Quiz{Status: model.StatusActive})
	if active == "Detailed results are currently hidden." {
		t.Fatalf("active quiz message should mention completion, got %q", active)
	}
	completed := HiddenDetailsMessage(&model.Quiz{Status: model.StatusCompleted})
	if completed != "Detailed results are currently hidden." {
		t.Fatalf("unexpected message for completed quiz: %q", completed)
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(2, 3); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	if got := Percentage(0, 0); got != 0 {
		t.Fatalf("expected 0 for empty quiz, got %d", got)
	}
}
