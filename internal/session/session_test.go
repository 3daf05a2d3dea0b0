package session

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/lakshya-prep/lakshya/internal/model"
)

type fakeSubmitter struct {
	answers  map[string]int
	calls    int
	failNext bool
	onSubmit func(answers map[string]int)
}

func (f *fakeSubmitter) SubmitAttempt(_ context.Context, answers map[string]int) (string, error) {
	f.calls++
	if f.onSubmit != nil {
		f.onSubmit(answers)
	}
	if f.failNext {
		f.failNext = false
		return "", errors.New("grading service unavailable")
	}
	f.answers = answers
	return "attempt-1", nil
}

// twoSectionExam: 10 questions q0..q9 split into two 5-question, 10-minute
// sections.
func twoSectionExam() *model.Assessment {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("q%d", i)
	}
	return &model.Assessment{
		ID:              "mock-1",
		Title:           "Mock Test 1",
		DurationMinutes: 20,
		QuestionIDs:     ids,
		Sections: []model.Section{
			{Name: "Section A", DurationMinutes: 10, QuestionCount: 5},
			{Name: "Section B", DurationMinutes: 10, QuestionCount: 5},
		},
	}
}

func mustSession(t *testing.T, assessment *model.Assessment, submitter Submitter) *Session {
	t.Helper()
	s, err := New(assessment, submitter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	if _, err := New(&model.Assessment{ID: "empty"}, &fakeSubmitter{}); err == nil {
		t.Error("expected error for assessment without questions")
	}

	bad := twoSectionExam()
	bad.Sections[1].QuestionCount = 4
	if _, err := New(bad, &fakeSubmitter{}); err == nil {
		t.Error("expected error when sections do not cover the question list")
	}
}

func TestNewWithoutSectionsSpansEverything(t *testing.T) {
	assessment := &model.Assessment{
		ID:              "flat",
		Title:           "Flat Test",
		DurationMinutes: 30,
		QuestionIDs:     []string{"q0", "q1", "q2"},
	}
	s := mustSession(t, assessment, &fakeSubmitter{})

	if s.SectionCount() != 1 {
		t.Fatalf("section count = %d, want 1", s.SectionCount())
	}
	if start, end := s.SectionRange(); start != 0 || end != 3 {
		t.Errorf("section range = [%d,%d), want [0,3)", start, end)
	}
	if s.RemainingSeconds() != 30*60 {
		t.Errorf("remaining = %d, want %d", s.RemainingSeconds(), 30*60)
	}
}

func TestVisitStatusNeverReverts(t *testing.T) {
	s := mustSession(t, twoSectionExam(), &fakeSubmitter{})

	// Mounting lands on q0 and visits it.
	if got := s.Status("q0"); got != StatusNotAnswered {
		t.Errorf("q0 status = %s, want not_answered on entry", got)
	}
	if got := s.Status("q1"); got != StatusNotVisited {
		t.Errorf("q1 status = %s, want not_visited before entry", got)
	}

	if err := s.Navigate(1); err != nil {
		t.Fatalf("Navigate(1): %v", err)
	}
	if err := s.Navigate(0); err != nil {
		t.Fatalf("Navigate(0): %v", err)
	}
	// Visiting and leaving q1 must not reset it.
	if got := s.Status("q1"); got != StatusNotAnswered {
		t.Errorf("q1 status after visit = %s, want not_answered", got)
	}
}

func TestSelectClearAndMark(t *testing.T) {
	s := mustSession(t, twoSectionExam(), &fakeSubmitter{})

	if err := s.SelectOption(-1); !errors.Is(err, ErrNoSelection) {
		t.Errorf("SelectOption(-1) err = %v, want ErrNoSelection", err)
	}

	if err := s.SelectOption(2); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if got := s.Status("q0"); got != StatusAnswered {
		t.Errorf("q0 status = %s, want answered", got)
	}
	if got := s.Answers(); got["q0"] != 2 {
		t.Errorf("answers = %v, want q0:2", got)
	}

	if err := s.ClearResponse(); err != nil {
		t.Fatalf("ClearResponse: %v", err)
	}
	if got := s.Status("q0"); got != StatusNotAnswered {
		t.Errorf("q0 status after clear = %s, want not_answered", got)
	}
	if _, ok := s.Answers()["q0"]; ok {
		t.Error("cleared answer still in map")
	}

	// Mark flags the question and auto-advances within the section.
	if err := s.MarkForReview(); err != nil {
		t.Fatalf("MarkForReview: %v", err)
	}
	if got := s.Status("q0"); got != StatusMarkedReview {
		t.Errorf("q0 status = %s, want marked_review", got)
	}
	if s.CurrentQuestion() != 1 {
		t.Errorf("cursor = %d, want auto-advanced to 1", s.CurrentQuestion())
	}

	// Leaving a marked question keeps the mark.
	s.Navigate(0)
	s.Navigate(1)
	if got := s.Status("q0"); got != StatusMarkedReview {
		t.Errorf("q0 status after revisit = %s, want marked_review kept", got)
	}

	// Marking the last question of the section has nowhere to advance.
	s.Navigate(4)
	if err := s.MarkForReview(); err != nil {
		t.Fatalf("MarkForReview at section end: %v", err)
	}
	if s.CurrentQuestion() != 4 {
		t.Errorf("cursor = %d, want pinned at 4", s.CurrentQuestion())
	}
}

func TestNavigateSectionLocking(t *testing.T) {
	s := mustSession(t, twoSectionExam(), &fakeSubmitter{})

	// Questions in the future section are out of reach.
	if err := s.Navigate(5); !errors.Is(err, ErrSectionLocked) {
		t.Errorf("Navigate(5) err = %v, want ErrSectionLocked", err)
	}

	if err := s.AdvanceSection(); err != nil {
		t.Fatalf("AdvanceSection: %v", err)
	}
	if s.CurrentSection() != 1 || s.CurrentQuestion() != 5 {
		t.Errorf("position = section %d question %d, want 1/5", s.CurrentSection(), s.CurrentQuestion())
	}
	if s.RemainingSeconds() != 10*60 {
		t.Errorf("remaining = %d, want fresh %d", s.RemainingSeconds(), 10*60)
	}

	// The previous section is locked for good.
	if err := s.Navigate(0); !errors.Is(err, ErrSectionLocked) {
		t.Errorf("Navigate(0) err = %v, want ErrSectionLocked", err)
	}

	if err := s.AdvanceSection(); !errors.Is(err, ErrLastSection) {
		t.Errorf("AdvanceSection on last err = %v, want ErrLastSection", err)
	}
}

func TestTickCountdownAndTransitions(t *testing.T) {
	s := mustSession(t, twoSectionExam(), &fakeSubmitter{})

	if got := s.Tick(); got != TickNone {
		t.Errorf("first tick = %v, want TickNone", got)
	}
	if s.RemainingSeconds() != 10*60-1 {
		t.Errorf("remaining = %d, want %d", s.RemainingSeconds(), 10*60-1)
	}

	// Drain the first section's clock.
	for s.RemainingSeconds() > 1 {
		s.Tick()
	}
	outcome := s.Tick()
	if outcome != TickSectionAdvanced {
		t.Fatalf("expiry tick = %v, want TickSectionAdvanced", outcome)
	}
	if s.CurrentSection() != 1 || s.CurrentQuestion() != 5 {
		t.Errorf("position = section %d question %d, want 1/5", s.CurrentSection(), s.CurrentQuestion())
	}
	if s.RemainingSeconds() != 10*60 {
		t.Errorf("remaining = %d, want fresh section budget", s.RemainingSeconds())
	}

	// Drain the last section: expiry is reported, not acted on.
	for s.RemainingSeconds() > 1 {
		s.Tick()
	}
	if got := s.Tick(); got != TickExpired {
		t.Errorf("final expiry tick = %v, want TickExpired", got)
	}
	if s.Closed() {
		t.Error("expiry closed the session before Submit")
	}
	// Repeated ticks at zero keep reporting expiry.
	if got := s.Tick(); got != TickExpired {
		t.Errorf("tick after expiry = %v, want TickExpired", got)
	}
}

func TestSubmitOnlyFromLastSection(t *testing.T) {
	s := mustSession(t, twoSectionExam(), &fakeSubmitter{})

	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrNotLastSection) {
		t.Fatalf("Submit err = %v, want ErrNotLastSection", err)
	}

	s.AdvanceSection()
	attemptID, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attemptID != "attempt-1" {
		t.Errorf("attempt id = %s", attemptID)
	}
	if !s.Closed() {
		t.Error("session not closed after successful submit")
	}

	// A closed session rejects every event.
	if err := s.Navigate(6); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Navigate after close err = %v, want ErrSessionClosed", err)
	}
	if err := s.SelectOption(0); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("SelectOption after close err = %v, want ErrSessionClosed", err)
	}
	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Submit after close err = %v, want ErrSessionClosed", err)
	}
	if got := s.Tick(); got != TickNone {
		t.Errorf("Tick after close = %v, want TickNone", got)
	}
}

func TestSubmitFailureIsRetryable(t *testing.T) {
	submitter := &fakeSubmitter{failNext: true}
	s := mustSession(t, twoSectionExam(), submitter)

	s.SelectOption(1)
	s.AdvanceSection()

	if _, err := s.Submit(context.Background()); err == nil {
		t.Fatal("expected first submit to fail")
	}
	if s.Closed() {
		t.Fatal("failed submit closed the session")
	}

	// Retry with the same state succeeds and carries the same answers.
	attemptID, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if attemptID != "attempt-1" {
		t.Errorf("attempt id = %s", attemptID)
	}
	if submitter.calls != 2 {
		t.Errorf("submitter called %d times, want 2", submitter.calls)
	}
	if submitter.answers["q0"] != 1 {
		t.Errorf("submitted answers = %v, want q0:1", submitter.answers)
	}
}

func TestSubmitInFlightSuppressed(t *testing.T) {
	submitter := &fakeSubmitter{}
	s := mustSession(t, twoSectionExam(), submitter)
	s.AdvanceSection()

	// Re-entrant events while the submitter is running must be suppressed.
	var reentrantErr error
	var tickOutcome TickOutcome
	submitter.onSubmit = func(map[string]int) {
		_, reentrantErr = s.Submit(context.Background())
		tickOutcome = s.Tick()
	}

	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !errors.Is(reentrantErr, ErrSubmitInFlight) {
		t.Errorf("re-entrant submit err = %v, want ErrSubmitInFlight", reentrantErr)
	}
	if tickOutcome != TickNone {
		t.Errorf("tick during submit = %v, want TickNone", tickOutcome)
	}
	if submitter.calls != 1 {
		t.Errorf("submitter called %d times, want 1", submitter.calls)
	}
}

// The end-to-end flow: answer five questions in section A, let section B
// expire untouched, submit. The answer map must carry exactly the section A
// selections.
func TestFullAttemptFlow(t *testing.T) {
	submitter := &fakeSubmitter{}
	s := mustSession(t, twoSectionExam(), submitter)

	selections := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 0}
	for q := 0; q < 5; q++ {
		if err := s.Navigate(q); err != nil {
			t.Fatalf("Navigate(%d): %v", q, err)
		}
		if err := s.SelectOption(selections[q]); err != nil {
			t.Fatalf("SelectOption: %v", err)
		}
	}

	// Section A expires; the session moves on without confirmation.
	for s.CurrentSection() == 0 {
		s.Tick()
	}

	// Section B runs out with nothing answered.
	var outcome TickOutcome
	for outcome != TickExpired {
		outcome = s.Tick()
	}
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := map[string]int{"q0": 0, "q1": 1, "q2": 2, "q3": 3, "q4": 0}
	if !reflect.DeepEqual(submitter.answers, want) {
		t.Errorf("submitted answers = %v, want %v", submitter.answers, want)
	}
	for q := 5; q < 10; q++ {
		id := fmt.Sprintf("q%d", q)
		if got := s.Status(id); got == StatusAnswered {
			t.Errorf("%s status = %s, expired section cannot hold answers", id, got)
		}
	}
}
