package service

import (
	"errors"
	"strings"
	"testing"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/model"
)

func validCreateRequest() dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:       "ASL Basics: Alphabet & Numbers",
		Description: "Starter quiz",
		Status:      model.StatusActive,
		Questions: []dto.QuestionUpsertDTO{
			{Title: "Identify the Letter", Options: []string{"A", "B"}, CorrectOptionIndex: 0},
			{Title: "Identify the Number", Options: []string{"3", "5"}, CorrectOptionIndex: 1},
		},
	}
}

func newAdminFixture() (QuizAdminService, *fakeQuizRepo) {
	repo := newFakeQuizRepo(newFakeSubmissionRepo())
	return NewQuizAdminService(repo), repo
}

func TestCreateQuizDerivesSlugID(t *testing.T) {
	svc, _ := newAdminFixture()
	resp, err := svc.CreateQuiz(validCreateRequest(), "admin-1")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if resp.ID != "asl-basics-alphabet-numbers" {
		t.Errorf("id = %q, want asl-basics-alphabet-numbers", resp.ID)
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.ID == "" {
			t.Errorf("question %d has no generated id", i)
		}
		if q.Position != i {
			t.Errorf("question %d position = %d", i, q.Position)
		}
	}
}

func TestCreateQuizRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newAdminFixture()
	if _, err := svc.CreateQuiz(validCreateRequest(), "admin-1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateQuiz(validCreateRequest(), "admin-1"); !errors.Is(err, ErrQuizExists) {
		t.Errorf("duplicate create err = %v, want ErrQuizExists", err)
	}
}

func TestCreateQuizValidatesQuestions(t *testing.T) {
	svc, _ := newAdminFixture()

	req := validCreateRequest()
	req.Questions[0].CorrectOptionIndex = 2
	if _, err := svc.CreateQuiz(req, "admin-1"); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("out-of-range index err = %v, want ErrInvalidQuestion", err)
	}

	req = validCreateRequest()
	req.Questions[0].ID = "dup"
	req.Questions[1].ID = "dup"
	if _, err := svc.CreateQuiz(req, "admin-1"); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("duplicate id err = %v, want ErrInvalidQuestion", err)
	}

	req = validCreateRequest()
	req.Title = "!!!"
	if _, err := svc.CreateQuiz(req, "admin-1"); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("empty slug err = %v, want ErrInvalidQuestion", err)
	}
}

func TestCreateQuizDefaultsToDraft(t *testing.T) {
	svc, _ := newAdminFixture()
	req := validCreateRequest()
	req.Status = ""
	resp, err := svc.CreateQuiz(req, "admin-1")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if resp.Status != model.StatusDraft {
		t.Errorf("status = %q, want draft", resp.Status)
	}
}

func TestUpdateQuizReplacesQuestionSet(t *testing.T) {
	svc, _ := newAdminFixture()
	created, err := svc.CreateQuiz(validCreateRequest(), "admin-1")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	resp, err := svc.UpdateQuiz(created.ID, dto.QuizUpdateDTO{
		Title:       "Renamed Quiz",
		Description: "edited",
		Questions: []dto.QuestionUpsertDTO{
			{Title: "Only One", Options: []string{"X", "Y", "Z"}, CorrectOptionIndex: 2},
		},
	})
	if err != nil {
		t.Fatalf("UpdateQuiz: %v", err)
	}
	if resp.ID != created.ID {
		t.Errorf("id changed on update: %q", resp.ID)
	}
	if resp.Title != "Renamed Quiz" {
		t.Errorf("title = %q", resp.Title)
	}
	if len(resp.Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(resp.Questions))
	}
}

func TestToggleStatusCycle(t *testing.T) {
	svc, _ := newAdminFixture()
	created, err := svc.CreateQuiz(validCreateRequest(), "admin-1")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	// active -> completed -> active
	status, err := svc.ToggleStatus(created.ID)
	if err != nil || status != model.StatusCompleted {
		t.Fatalf("first toggle = %q, %v; want completed", status, err)
	}
	status, err = svc.ToggleStatus(created.ID)
	if err != nil || status != model.StatusActive {
		t.Fatalf("second toggle = %q, %v; want active", status, err)
	}
}

func TestToggleAnswerDetails(t *testing.T) {
	svc, _ := newAdminFixture()
	created, err := svc.CreateQuiz(validCreateRequest(), "admin-1")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	on, err := svc.ToggleAnswerDetails(created.ID)
	if err != nil || !on {
		t.Fatalf("first toggle = %v, %v; want true", on, err)
	}
	off, err := svc.ToggleAnswerDetails(created.ID)
	if err != nil || off {
		t.Fatalf("second toggle = %v, %v; want false", off, err)
	}
}

func TestDeleteQuizRemovesSubmissions(t *testing.T) {
	subs := newFakeSubmissionRepo()
	repo := newFakeQuizRepo(subs)
	svc := NewQuizAdminService(repo)

	created, err := svc.CreateQuiz(validCreateRequest(), "admin-1")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if err := subs.CreateIfAbsent(&model.Submission{QuizID: created.ID, UserID: "u1"}); err != nil {
		t.Fatalf("seeding submission: %v", err)
	}

	if err := svc.DeleteQuiz(created.ID); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	if _, err := svc.GetQuiz(created.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("get after delete err = %v, want ErrQuizNotFound", err)
	}
	left, _ := subs.FindAllByQuiz(created.ID)
	if len(left) != 0 {
		t.Errorf("submissions left after delete: %d", len(left))
	}

	if err := svc.DeleteQuiz(created.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("second delete err = %v, want ErrQuizNotFound", err)
	}
}

func TestSeedSkipsWhenAnyQuizExists(t *testing.T) {
	svc, _ := newAdminFixture()

	n, err := svc.SeedInitialQuizzes()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected seed to insert starter quizzes")
	}
	again, err := svc.SeedInitialQuizzes()
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if again != 0 {
		t.Errorf("second seed inserted %d quizzes, want 0", again)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"ASL Basics: Alphabet & Numbers": "asl-basics-alphabet-numbers",
		"  Trim  Me  ":                   "trim-me",
		"already-slugged":                "already-slugged",
		"Números! y señas":               "n-meros-y-se-as",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
	if got := Slugify("!!!"); got != "" {
		t.Errorf("Slugify(%q) = %q, want empty", "!!!", got)
	}
	if strings.Contains(Slugify("a  b"), "--") {
		t.Errorf("slug contains a double hyphen")
	}
}
