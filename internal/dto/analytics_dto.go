package dto

// LeaderboardRowDTO is one ranked row, already formatted for display/export.
type LeaderboardRowDTO struct {
	Rank           int    `json:"rank"`
	Student        string `json:"student"`
	Email          string `json:"email"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Status         string `json:"status"` // "COMPLETED" or "In Progress (Qn)"
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	TimeTaken      string `json:"time_taken"`
}

// LeaderboardDTO is the ranked view of a quiz's submissions.
type LeaderboardDTO struct {
	QuizID string              `json:"quiz_id"`
	Rows   []LeaderboardRowDTO `json:"rows"`
}

// QuestionStatDTO carries per-question correctness analytics.
type QuestionStatDTO struct {
	Name      string `json:"name"` // "Q1", "Q2", ...
	Title     string `json:"title"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	PassRate  int    `json:"pass_rate"`
	Band      string `json:"band"` // high | mid | low
}

// AnalyticsDTO is the admin dashboard payload for one quiz.
type AnalyticsDTO struct {
	QuizID           string            `json:"quiz_id"`
	TotalSubmissions int               `json:"total_submissions"`
	AvgScore         float64           `json:"avg_score"`
	AvgTime          string            `json:"avg_time"`
	QuestionStats    []QuestionStatDTO `json:"question_stats"`
}
