package service

import (
	"errors"
	"testing"

	"quizhub-backend/internal/model"
)

func TestListQuizzesHidesDraftsFromParticipants(t *testing.T) {
	repo := newFakeQuizRepo(newFakeSubmissionRepo())
	for _, q := range []*model.Quiz{
		{ID: "live", Title: "Live", Status: model.StatusActive,
			Questions: []model.Question{{ID: "q1", QuizID: "live"}}},
		{ID: "wip", Title: "WIP", Status: model.StatusDraft},
		{ID: "done", Title: "Done", Status: model.StatusCompleted},
	} {
		if err := repo.Create(q); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
	svc := NewQuizCatalogService(repo)

	visible, err := svc.ListQuizzes(false)
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("visible = %d, want 2", len(visible))
	}
	for _, q := range visible {
		if q.Status == model.StatusDraft {
			t.Errorf("draft quiz %q leaked to participants", q.ID)
		}
	}

	all, err := svc.ListQuizzes(true)
	if err != nil {
		t.Fatalf("ListQuizzes(drafts): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("with drafts = %d, want 3", len(all))
	}
}

func TestGetQuizDetailHidesCorrectAnswers(t *testing.T) {
	repo := newFakeQuizRepo(newFakeSubmissionRepo())
	if err := repo.Create(threeQuestionQuiz(model.StatusActive)); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	svc := NewQuizCatalogService(repo)

	detail, err := svc.GetQuizDetail("quiz-1")
	if err != nil {
		t.Fatalf("GetQuizDetail: %v", err)
	}
	if len(detail.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(detail.Questions))
	}
	if len(detail.Questions[0].Options) != 2 {
		t.Errorf("options = %d, want 2", len(detail.Questions[0].Options))
	}
}

func TestGetQuizDetailDraftIsNotFound(t *testing.T) {
	repo := newFakeQuizRepo(newFakeSubmissionRepo())
	if err := repo.Create(threeQuestionQuiz(model.StatusDraft)); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	svc := NewQuizCatalogService(repo)

	if _, err := svc.GetQuizDetail("quiz-1"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("draft detail err = %v, want ErrQuizNotFound", err)
	}
	if _, err := svc.GetQuizDetail("missing"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("missing detail err = %v, want ErrQuizNotFound", err)
	}
}
