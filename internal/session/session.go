// Package session implements the client-side state machine for one
// assessment attempt: question statuses, navigation, section locking, and
// the countdown that forces section transitions and the final submit.
//
// A Session is single-threaded by design. All mutations happen through
// discrete events (user operations and Tick); callers must serialize them on
// one goroutine, UI event-loop style. Nothing here takes a lock.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/lakshya-prep/lakshya/internal/model"
)

type QuestionStatus string

const (
	StatusNotVisited   QuestionStatus = "not_visited"
	StatusNotAnswered  QuestionStatus = "not_answered"
	StatusAnswered     QuestionStatus = "answered"
	StatusMarkedReview QuestionStatus = "marked_review"
)

var (
	// Precondition violations the UI silently swallows rather than showing
	// an error, to avoid disrupting exam flow.
	ErrSectionLocked  = errors.New("target question is outside the active section")
	ErrNotLastSection = errors.New("submit is only available from the last section")
	ErrLastSection    = errors.New("no further section to advance to")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrSessionClosed  = errors.New("session already submitted")
	ErrNoSelection    = errors.New("option index must not be negative")
)

// Submitter sends the accumulated answer map to the grading service. A
// failed call must leave the session usable for a retry, so implementations
// never partially consume the map.
type Submitter interface {
	SubmitAttempt(ctx context.Context, answers map[string]int) (attemptID string, err error)
}

// sectionPlan is one timed block: the half-open question index range
// [start, end) and its time budget.
type sectionPlan struct {
	name            string
	start, end      int
	durationSeconds int
}

// TickOutcome reports what a one-second tick did beyond counting down.
type TickOutcome int

const (
	// TickNone: time remains, nothing else happened.
	TickNone TickOutcome = iota
	// TickSectionAdvanced: the active section expired and the session moved
	// to the next one. Not cancelable, never an error.
	TickSectionAdvanced
	// TickExpired: the last section expired. The caller must invoke Submit,
	// which is now permitted regardless of user confirmation.
	TickExpired
)

// Session is the transient working state of an in-progress attempt. It is
// created when the exam view mounts and discarded once Submit succeeds; it
// is never persisted.
type Session struct {
	questionIDs []string
	sections    []sectionPlan

	sectionIdx  int
	questionIdx int
	answers     map[string]int
	status      map[string]QuestionStatus
	remaining   int

	submitter  Submitter
	submitting bool
	closed     bool
}

// New builds a session from an assessment definition. Sections must exactly
// cover the flat question list; an assessment with no declared sections is
// treated as a single section spanning everything with the total duration.
func New(assessment *model.Assessment, submitter Submitter) (*Session, error) {
	if len(assessment.QuestionIDs) == 0 {
		return nil, errors.New("assessment has no questions")
	}

	var plans []sectionPlan
	if len(assessment.Sections) == 0 {
		plans = []sectionPlan{{
			name:            assessment.Title,
			start:           0,
			end:             len(assessment.QuestionIDs),
			durationSeconds: assessment.DurationMinutes * 60,
		}}
	} else {
		offset := 0
		for _, sec := range assessment.Sections {
			plans = append(plans, sectionPlan{
				name:            sec.Name,
				start:           offset,
				end:             offset + sec.QuestionCount,
				durationSeconds: sec.DurationMinutes * 60,
			})
			offset += sec.QuestionCount
		}
		if offset != len(assessment.QuestionIDs) {
			return nil, fmt.Errorf("sections cover %d questions, assessment has %d", offset, len(assessment.QuestionIDs))
		}
	}

	s := &Session{
		questionIDs: assessment.QuestionIDs,
		sections:    plans,
		answers:     make(map[string]int),
		status:      make(map[string]QuestionStatus, len(assessment.QuestionIDs)),
		remaining:   plans[0].durationSeconds,
		submitter:   submitter,
	}
	for _, id := range assessment.QuestionIDs {
		s.status[id] = StatusNotVisited
	}
	// Mounting the exam view lands on the first question.
	s.enter(0)
	return s, nil
}

// enter moves the cursor to index and applies the visit rule: a not_visited
// question becomes not_answered the moment it is shown. Once visited, a
// question never returns to not_visited.
func (s *Session) enter(index int) {
	s.questionIdx = index
	id := s.questionIDs[index]
	if s.status[id] == StatusNotVisited {
		s.status[id] = StatusNotAnswered
	}
}

// leave applies the departure rule: an unanswered question keeps
// marked_review if set, otherwise it is pinned at not_answered.
func (s *Session) leave() {
	id := s.questionIDs[s.questionIdx]
	if _, answered := s.answers[id]; !answered && s.status[id] != StatusMarkedReview {
		s.status[id] = StatusNotAnswered
	}
}

// Navigate jumps to another question within the active section. Questions in
// locked (past) or future sections are unreachable.
func (s *Session) Navigate(target int) error {
	if s.closed {
		return ErrSessionClosed
	}
	sec := s.sections[s.sectionIdx]
	if target < sec.start || target >= sec.end {
		return ErrSectionLocked
	}
	if target == s.questionIdx {
		return nil
	}
	s.leave()
	s.enter(target)
	return nil
}

// SelectOption records an answer for the current question and marks it
// answered. The answer map stays authoritative independently of status.
func (s *Session) SelectOption(index int) error {
	if s.closed {
		return ErrSessionClosed
	}
	if index < 0 {
		return ErrNoSelection
	}
	id := s.questionIDs[s.questionIdx]
	s.answers[id] = index
	s.status[id] = StatusAnswered
	return nil
}

// ClearResponse removes the current question's answer.
func (s *Session) ClearResponse() error {
	if s.closed {
		return ErrSessionClosed
	}
	id := s.questionIDs[s.questionIdx]
	delete(s.answers, id)
	s.status[id] = StatusNotAnswered
	return nil
}

// MarkForReview flags the current question and auto-advances to the next
// question in the section when one exists. The flag does not encode whether
// an answer is stored.
func (s *Session) MarkForReview() error {
	if s.closed {
		return ErrSessionClosed
	}
	id := s.questionIDs[s.questionIdx]
	s.status[id] = StatusMarkedReview
	if next := s.questionIdx + 1; next < s.sections[s.sectionIdx].end {
		s.enter(next)
	}
	return nil
}

// AdvanceSection moves to the next section, permanently locking the current
// one. The caller is responsible for the user-facing confirmation dialog;
// the session only enforces ordering. The next section's timer starts fresh,
// whatever was left on this one is void.
func (s *Session) AdvanceSection() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.sectionIdx >= len(s.sections)-1 {
		return ErrLastSection
	}
	s.forceAdvance()
	return nil
}

func (s *Session) forceAdvance() {
	s.leave()
	s.sectionIdx++
	next := s.sections[s.sectionIdx]
	s.remaining = next.durationSeconds
	s.enter(next.start)
}

// Tick consumes one second of the active section's clock. At zero it forces
// the section transition, or reports expiry on the last section so the owner
// can trigger the submit.
func (s *Session) Tick() TickOutcome {
	if s.closed || s.submitting {
		return TickNone
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 {
		return TickNone
	}
	if s.sectionIdx < len(s.sections)-1 {
		s.forceAdvance()
		return TickSectionAdvanced
	}
	return TickExpired
}

// Submit sends the accumulated answers. Valid only from the last section
// (timer expiry lands there by construction). A submit while another is in
// flight is suppressed; a failed submit leaves the session intact so the
// user can retry with the same answer map.
func (s *Session) Submit(ctx context.Context) (string, error) {
	if s.closed {
		return "", ErrSessionClosed
	}
	if s.submitting {
		return "", ErrSubmitInFlight
	}
	if s.sectionIdx != len(s.sections)-1 {
		return "", ErrNotLastSection
	}

	s.leave()
	s.submitting = true

	answers := make(map[string]int, len(s.answers))
	for id, idx := range s.answers {
		answers[id] = idx
	}

	attemptID, err := s.submitter.SubmitAttempt(ctx, answers)
	if err != nil {
		// Recoverable: the session keeps its state for a manual retry.
		s.submitting = false
		return "", fmt.Errorf("submission failed: %w", err)
	}

	s.closed = true
	return attemptID, nil
}

// --- read accessors ---

func (s *Session) CurrentSection() int       { return s.sectionIdx }
func (s *Session) CurrentQuestion() int      { return s.questionIdx }
func (s *Session) CurrentQuestionID() string { return s.questionIDs[s.questionIdx] }
func (s *Session) RemainingSeconds() int     { return s.remaining }
func (s *Session) SectionCount() int         { return len(s.sections) }
func (s *Session) Closed() bool              { return s.closed }

// SectionRange returns the active section's half-open question index range.
func (s *Session) SectionRange() (start, end int) {
	sec := s.sections[s.sectionIdx]
	return sec.start, sec.end
}

func (s *Session) Status(questionID string) QuestionStatus {
	return s.status[questionID]
}

// Answers returns a copy of the answer map.
func (s *Session) Answers() map[string]int {
	out := make(map[string]int, len(s.answers))
	for id, idx := range s.answers {
		out[id] = idx
	}
	return out
}
