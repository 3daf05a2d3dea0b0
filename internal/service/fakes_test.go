package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lakshya-prep/lakshya/internal/model"
)

// In-memory repository fakes shared by the service tests.

type fakeQuestionRepo struct {
	questions map[string]model.Question
	batches   [][]string // records every FindByIDs call
	failReads bool
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: map[string]model.Question{}}
	for _, q := range questions {
		r.questions[q.ID] = q
	}
	return r
}

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) FindByID(id string) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []string) ([]model.Question, error) {
	if r.failReads {
		return nil, errors.New("storage unavailable")
	}
	r.batches = append(r.batches, append([]string(nil), ids...))
	var out []model.Question
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) CountDailyEligible() (int64, error) {
	var count int64
	for _, q := range r.questions {
		if q.DailySerial != nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeQuestionRepo) FindByDailySerial(serial int) (*model.Question, error) {
	for _, q := range r.questions {
		if q.DailySerial != nil && *q.DailySerial == serial {
			out := q
			return &out, nil
		}
	}
	return nil, errors.New("record not found")
}

func mcq(id, subject string, optionCount int, correct ...int) model.Question {
	options := make([]string, optionCount)
	for i := range options {
		options[i] = fmt.Sprintf("option %d", i)
	}
	return model.Question{
		ID:             id,
		Text:           "text for " + id,
		Options:        options,
		CorrectAnswers: correct,
		Subject:        subject,
	}
}

type fakeAssessmentRepo struct {
	assessments map[string]model.Assessment
}

func newFakeAssessmentRepo(assessments ...model.Assessment) *fakeAssessmentRepo {
	r := &fakeAssessmentRepo{assessments: map[string]model.Assessment{}}
	for _, a := range assessments {
		r.assessments[a.ID] = a
	}
	return r
}

func (r *fakeAssessmentRepo) Create(a *model.Assessment) error {
	r.assessments[a.ID] = *a
	return nil
}

func (r *fakeAssessmentRepo) FindByID(id string) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &a, nil
}

func (r *fakeAssessmentRepo) FindByIDWithSections(id string) (*model.Assessment, error) {
	return r.FindByID(id)
}

func (r *fakeAssessmentRepo) FindAll() ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range r.assessments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeAttemptRepo struct {
	attempts  []model.Attempt
	failWrite bool
}

func (r *fakeAttemptRepo) Create(a *model.Attempt) error {
	if r.failWrite {
		return errors.New("storage unavailable")
	}
	if a.ID == "" {
		a.ID = "attempt-1"
	}
	r.attempts = append(r.attempts, *a)
	return nil
}

func (r *fakeAttemptRepo) FindByID(id string) (*model.Attempt, error) {
	for _, a := range r.attempts {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeAttemptRepo) FindAllByAssessmentAndUser(assessmentID, userID string) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range r.attempts {
		if a.AssessmentID == assessmentID && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) FindRecentByUser(userID string, limit int) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range r.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeStreakRepo honors the version-guarded write contract and can simulate
// a racing writer by rejecting a configured number of conditional writes.
type fakeStreakRepo struct {
	rows      map[string]model.UserStreak
	conflicts int // number of writes to reject before accepting
	writes    int
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{rows: map[string]model.UserStreak{}}
}

func (r *fakeStreakRepo) Find(userID string) (*model.UserStreak, error) {
	row, ok := r.rows[userID]
	if !ok {
		return nil, nil
	}
	out := row
	return &out, nil
}

func (r *fakeStreakRepo) Insert(streak *model.UserStreak) (bool, error) {
	r.writes++
	if r.conflicts > 0 {
		r.conflicts--
		// A concurrent writer created the row; simulate its state.
		r.rows[streak.UserID] = model.UserStreak{
			UserID:         streak.UserID,
			StreakCount:    streak.StreakCount,
			LastStreakDate: streak.LastStreakDate,
			Version:        1,
		}
		return false, nil
	}
	if _, exists := r.rows[streak.UserID]; exists {
		return false, nil
	}
	streak.Version = 1
	r.rows[streak.UserID] = *streak
	return true, nil
}

func (r *fakeStreakRepo) UpdateConditional(streak *model.UserStreak, expectedVersion int64) (bool, error) {
	r.writes++
	if r.conflicts > 0 {
		r.conflicts--
		row := r.rows[streak.UserID]
		row.Version++
		r.rows[streak.UserID] = row
		return false, nil
	}
	row, ok := r.rows[streak.UserID]
	if !ok || row.Version != expectedVersion {
		return false, nil
	}
	r.rows[streak.UserID] = model.UserStreak{
		UserID:         streak.UserID,
		StreakCount:    streak.StreakCount,
		LastStreakDate: streak.LastStreakDate,
		Version:        expectedVersion + 1,
	}
	return true, nil
}

type fakeSolveRepo struct {
	solves map[string]model.DailySolve // key: userID+"|"+date
}

func newFakeSolveRepo() *fakeSolveRepo {
	return &fakeSolveRepo{solves: map[string]model.DailySolve{}}
}

func (r *fakeSolveRepo) Find(userID, date string) (*model.DailySolve, error) {
	solve, ok := r.solves[userID+"|"+date]
	if !ok {
		return nil, nil
	}
	out := solve
	return &out, nil
}

func (r *fakeSolveRepo) Save(solve *model.DailySolve) error {
	r.solves[solve.UserID+"|"+solve.Date] = *solve
	return nil
}
