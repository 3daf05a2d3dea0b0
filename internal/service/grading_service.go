package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

// Global marking scheme. Sections declare their own marks fields but grading
// applies these constants regardless of section.
const (
	pointsCorrect = 4
	pointsWrong   = 1
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidOption      = errors.New("selected option index out of range")
)

// GradingService grades submitted answer maps and persists Attempt records.
// Each invocation is stateless; concurrent submissions for different attempts
// are safe.
type GradingService interface {
	SubmitAssessment(ctx context.Context, assessmentID, userID string, answers map[string]int) (string, error)
	EvaluateDailyAnswer(question *model.Question, selectedIndex int) (bool, error)
}

type gradingService struct {
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
	lookup         QuestionLookup
}

func NewGradingService(
	assessmentRepo repository.AssessmentRepository,
	attemptRepo repository.AttemptRepository,
	lookup QuestionLookup,
) GradingService {
	return &gradingService{
		assessmentRepo: assessmentRepo,
		attemptRepo:    attemptRepo,
		lookup:         lookup,
	}
}

// SubmitAssessment grades answers against the assessment's question bank and
// persists exactly one Attempt. The attempt is written only after grading
// completes in full; a lookup failure leaves no partial state behind.
func (s *gradingService) SubmitAssessment(ctx context.Context, assessmentID, userID string, answers map[string]int) (string, error) {
	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		log.Warn().Err(err).Str("assessmentID", assessmentID).Msg("SubmitAssessment: assessment lookup failed")
		return "", fmt.Errorf("%w: %s", ErrAssessmentNotFound, assessmentID)
	}

	if answers == nil {
		answers = map[string]int{}
	}

	attempt := model.Attempt{
		UserID:       userID,
		AssessmentID: assessmentID,
		Answers:      answers,
		SubmittedAt:  time.Now().UTC(),
	}

	// A submission with no answers is a valid degenerate case: persist a
	// zero-score attempt without touching the question bank.
	if len(answers) > 0 {
		ids := make([]string, 0, len(answers))
		for id := range answers {
			ids = append(ids, id)
		}
		questions, err := s.lookup.Resolve(ctx, ids)
		if err != nil {
			log.Error().Err(err).Str("assessmentID", assessmentID).Msg("SubmitAssessment: question resolution failed")
			return "", fmt.Errorf("failed to resolve questions for grading: %w", err)
		}

		correct, incorrect := 0, 0
		for id, selected := range answers {
			q, ok := questions[id]
			if !ok || len(q.CorrectAnswers) == 0 {
				// Deleted or unknown questions are excluded from both
				// counts rather than failing the whole submission.
				continue
			}
			if selected == q.CorrectAnswers[0] {
				correct++
			} else {
				incorrect++
			}
		}

		attempt.CorrectCount = correct
		attempt.IncorrectCount = incorrect
		attempt.TotalAttempted = correct + incorrect
		attempt.Score = correct*pointsCorrect - incorrect*pointsWrong
	}

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Str("userID", userID).Msg("SubmitAssessment: failed to persist attempt")
		return "", fmt.Errorf("failed to save attempt: %w", err)
	}

	log.Info().
		Str("attemptID", attempt.ID).
		Str("assessmentID", assessmentID).
		Str("userID", userID).
		Int("score", attempt.Score).
		Int("attempted", attempt.TotalAttempted).
		Msg("Attempt graded and saved")
	return attempt.ID, nil
}

// EvaluateDailyAnswer checks one selected option against a daily-practice
// question. Unlike full-assessment grading, any declared correct index is
// accepted. An out-of-range index is a validation error.
func (s *gradingService) EvaluateDailyAnswer(question *model.Question, selectedIndex int) (bool, error) {
	if selectedIndex < 0 || selectedIndex >= len(question.Options) {
		return false, fmt.Errorf("%w: %d of %d options", ErrInvalidOption, selectedIndex, len(question.Options))
	}
	for _, idx := range question.CorrectAnswers {
		if idx == selectedIndex {
			return true, nil
		}
	}
	return false, nil
}
