package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	VerdictCorrect     = "correct"
	VerdictIncorrect   = "incorrect"
	VerdictUnattempted = "unattempted"
)

var ErrAttemptNotFound = errors.New("attempt not found")

// ResultService reconstructs graded attempts for display. Pure read side: it
// never mutates an Attempt.
type ResultService interface {
	GetAttemptReview(ctx context.Context, attemptID string) (*dto.AttemptReviewDTO, error)
	GetUserAttempts(assessmentID, userID string) ([]dto.AttemptSummaryDTO, error)
	GetRecentAttempts(userID string, limit int) ([]dto.AttemptSummaryDTO, error)
}

type resultService struct {
	attemptRepo    repository.AttemptRepository
	assessmentRepo repository.AssessmentRepository
	lookup         QuestionLookup
}

func NewResultService(
	attemptRepo repository.AttemptRepository,
	assessmentRepo repository.AssessmentRepository,
	lookup QuestionLookup,
) ResultService {
	return &resultService{
		attemptRepo:    attemptRepo,
		assessmentRepo: assessmentRepo,
		lookup:         lookup,
	}
}

// GetAttemptReview loads an attempt plus its assessment's questions (chunked
// lookup, assessment order) and derives a per-question verdict and a
// per-subject breakdown from the stored answer map.
func (s *resultService) GetAttemptReview(ctx context.Context, attemptID string) (*dto.AttemptReviewDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		log.Warn().Err(err).Str("attemptID", attemptID).Msg("GetAttemptReview: attempt lookup failed")
		return nil, fmt.Errorf("%w: %s", ErrAttemptNotFound, attemptID)
	}

	assessment, err := s.assessmentRepo.FindByID(attempt.AssessmentID)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", attempt.AssessmentID).Msg("GetAttemptReview: assessment lookup failed")
		return nil, fmt.Errorf("%w: %s", ErrAssessmentNotFound, attempt.AssessmentID)
	}

	questions, err := s.lookup.Resolve(ctx, assessment.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve questions for review: %w", err)
	}

	review := dto.AttemptReviewDTO{
		TotalQuestions: len(assessment.QuestionIDs),
	}
	if err := copier.Copy(&review, attempt); err != nil {
		return nil, fmt.Errorf("error preparing review response: %w", err)
	}

	review.Results = buildQuestionResults(assessment.QuestionIDs, questions, attempt.Answers)
	review.Subjects = buildSubjectBreakdown(review.Results)
	return &review, nil
}

// buildQuestionResults walks the assessment's question order; ids that no
// longer resolve are skipped, matching grading's best-effort policy.
func buildQuestionResults(orderedIDs []string, questions map[string]model.Question, answers map[string]int) []dto.QuestionResultDTO {
	results := make([]dto.QuestionResultDTO, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		q, ok := questions[id]
		if !ok {
			continue
		}

		res := dto.QuestionResultDTO{Verdict: VerdictUnattempted}
		copier.Copy(&res.Question, &q)
		if res.Question.Subject == "" {
			res.Question.Subject = "General"
		}

		if selected, attempted := answers[id]; attempted {
			sel := selected
			res.SelectedIndex = &sel
			if len(q.CorrectAnswers) > 0 && selected == q.CorrectAnswers[0] {
				res.Verdict = VerdictCorrect
			} else {
				res.Verdict = VerdictIncorrect
			}
		}
		results = append(results, res)
	}
	return results
}

func buildSubjectBreakdown(results []dto.QuestionResultDTO) []dto.SubjectBreakdownDTO {
	bySubject := map[string]*dto.SubjectBreakdownDTO{}
	for _, res := range results {
		subject := res.Question.Subject
		agg, ok := bySubject[subject]
		if !ok {
			agg = &dto.SubjectBreakdownDTO{Subject: subject}
			bySubject[subject] = agg
		}
		agg.TotalQuestions++
		switch res.Verdict {
		case VerdictCorrect:
			agg.Attempted++
			agg.Correct++
		case VerdictIncorrect:
			agg.Attempted++
			agg.Incorrect++
		}
	}

	out := make([]dto.SubjectBreakdownDTO, 0, len(bySubject))
	for _, agg := range bySubject {
		agg.Score = agg.Correct*pointsCorrect - agg.Incorrect*pointsWrong
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

func (s *resultService) GetUserAttempts(assessmentID, userID string) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByAssessmentAndUser(assessmentID, userID)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Str("userID", userID).Msg("GetUserAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts for assessment %s: %w", assessmentID, err)
	}
	return toSummaries(attempts), nil
}

func (s *resultService) GetRecentAttempts(userID string, limit int) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindRecentByUser(userID, limit)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetRecentAttempts: repository error")
		return nil, fmt.Errorf("error fetching recent attempts: %w", err)
	}
	return toSummaries(attempts), nil
}

func toSummaries(attempts []model.Attempt) []dto.AttemptSummaryDTO {
	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Str("attemptID", attempt.ID).Msg("Error copying attempt to summary DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
