package service

import (
	"sort"
	"sync"

	"quizhub-backend/internal/model"

	"gorm.io/gorm"
)

// In-memory repository doubles. They implement the same contracts as the
// gorm-backed repositories, including the (nil, nil) miss convention and the
// insert-if-absent init.

type fakeQuizRepo struct {
	mu      sync.Mutex
	quizzes map[string]*model.Quiz
	subs    *fakeSubmissionRepo
}

func newFakeQuizRepo(subs *fakeSubmissionRepo) *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[string]*model.Quiz), subs: subs}
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// The seeded struct stays the backing store, so tests can mutate a quiz
	// (end it, trim questions) after creating it.
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) Exists(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.quizzes[id]
	return ok, nil
}

func (r *fakeQuizRepo) FindByID(id string) (*model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *quiz
	return &c, nil
}

func (r *fakeQuizRepo) FindAll() ([]model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Quiz, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeQuizRepo) Update(quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[quiz.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	c := *quiz
	r.quizzes[quiz.ID] = &c
	return nil
}

func (r *fakeQuizRepo) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["status"]; ok {
		quiz.Status = v.(string)
	}
	if v, ok := fields["show_answer_details"]; ok {
		quiz.ShowAnswerDetails = v.(bool)
	}
	return nil
}

func (r *fakeQuizRepo) DeleteWithSubmissions(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.quizzes, id)
	if r.subs != nil {
		r.subs.deleteByQuiz(id)
	}
	return nil
}

func (r *fakeQuizRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.quizzes)), nil
}

type subKey struct {
	quizID, userID string
}

type fakeSubmissionRepo struct {
	mu   sync.Mutex
	subs map[subKey]*model.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: make(map[subKey]*model.Submission)}
}

func (r *fakeSubmissionRepo) FindByQuizAndUser(quizID, userID string) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[subKey{quizID, userID}]
	if !ok {
		return nil, nil
	}
	c := *sub
	return &c, nil
}

func (r *fakeSubmissionRepo) CreateIfAbsent(sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := subKey{sub.QuizID, sub.UserID}
	if _, ok := r.subs[key]; ok {
		return nil
	}
	c := *sub
	r.subs[key] = &c
	return nil
}

func (r *fakeSubmissionRepo) SaveProgress(quizID, userID string, answers map[string]int, lastIndex int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[subKey{quizID, userID}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sub.Answers = answers
	sub.LastQuestionIndex = lastIndex
	sub.Status = model.SubmissionInProgress
	return nil
}

func (r *fakeSubmissionRepo) Complete(sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *sub
	r.subs[subKey{sub.QuizID, sub.UserID}] = &c
	return nil
}

func (r *fakeSubmissionRepo) FindAllByQuiz(quizID string) ([]model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Submission
	for key, sub := range r.subs {
		if key.quizID == quizID {
			out = append(out, *sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *fakeSubmissionRepo) deleteByQuiz(quizID string) {
	for key := range r.subs {
		if key.quizID == quizID {
			delete(r.subs, key)
		}
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	signals []string
}

func (n *recordingNotifier) SubmissionChanged(quizID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.signals = append(n.signals, quizID)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.signals)
}
