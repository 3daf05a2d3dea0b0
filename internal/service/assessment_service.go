package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

// AssessmentService serves the assessment catalogue: listing, the exam view
// (answer keys stripped), and the review-side full question set.
type AssessmentService interface {
	GetAllAssessments() ([]dto.AssessmentSummaryDTO, error)
	GetAssessmentDetails(ctx context.Context, assessmentID string) (*dto.AssessmentDetailDTO, error)
	GetAssessmentQuestions(ctx context.Context, assessmentID string) ([]dto.QuestionFullDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	lookup         QuestionLookup
}

func NewAssessmentService(assessmentRepo repository.AssessmentRepository, lookup QuestionLookup) AssessmentService {
	return &assessmentService{assessmentRepo: assessmentRepo, lookup: lookup}
}

func (s *assessmentService) GetAllAssessments() ([]dto.AssessmentSummaryDTO, error) {
	assessments, err := s.assessmentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assessments from repository")
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}

	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for _, a := range assessments {
		summaries = append(summaries, dto.AssessmentSummaryDTO{
			ID:              a.ID,
			Title:           a.Title,
			DurationMinutes: a.DurationMinutes,
			QuestionCount:   len(a.QuestionIDs),
			SectionCount:    len(a.Sections),
			CreatedAt:       a.CreatedAt,
		})
	}
	return summaries, nil
}

// GetAssessmentDetails returns the structure the exam view needs. Questions
// come back in assessment order with correct answers and explanations
// stripped; ids that no longer resolve are dropped from the list.
func (s *assessmentService) GetAssessmentDetails(ctx context.Context, assessmentID string) (*dto.AssessmentDetailDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithSections(assessmentID)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", assessmentID).Msg("GetAssessmentDetails: not found")
		return nil, fmt.Errorf("%w: %s", ErrAssessmentNotFound, assessmentID)
	}

	questions, err := s.lookup.Resolve(ctx, assessment.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve questions for assessment %s: %w", assessmentID, err)
	}

	var detail dto.AssessmentDetailDTO
	if err := copier.Copy(&detail, assessment); err != nil {
		return nil, fmt.Errorf("error preparing assessment details: %w", err)
	}

	detail.Questions = make([]dto.QuestionDTO, 0, len(assessment.QuestionIDs))
	for _, id := range assessment.QuestionIDs {
		q, ok := questions[id]
		if !ok {
			log.Warn().Str("questionID", id).Str("assessmentID", assessmentID).Msg("Assessment references a missing question")
			continue
		}
		detail.Questions = append(detail.Questions, toSafeQuestion(q))
	}
	return &detail, nil
}

func (s *assessmentService) GetAssessmentQuestions(ctx context.Context, assessmentID string) ([]dto.QuestionFullDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssessmentNotFound, assessmentID)
	}

	questions, err := s.lookup.Resolve(ctx, assessment.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve questions for assessment %s: %w", assessmentID, err)
	}

	out := make([]dto.QuestionFullDTO, 0, len(assessment.QuestionIDs))
	for _, id := range assessment.QuestionIDs {
		q, ok := questions[id]
		if !ok {
			continue
		}
		var full dto.QuestionFullDTO
		copier.Copy(&full, &q)
		if full.Subject == "" {
			full.Subject = "General"
		}
		out = append(out, full)
	}
	return out, nil
}

// toSafeQuestion strips the answer key and explanation for taker-facing
// payloads.
func toSafeQuestion(q model.Question) dto.QuestionDTO {
	subject := q.Subject
	if subject == "" {
		subject = "General"
	}
	return dto.QuestionDTO{
		ID:      q.ID,
		Text:    q.Text,
		Options: q.Options,
		Subject: subject,
	}
}
