package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrInvalidAssessment = errors.New("invalid assessment definition")

type AdminAssessmentService interface {
	CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AssessmentSummaryDTO, error)
}

type adminAssessmentService struct {
	assessmentRepo repository.AssessmentRepository
}

func NewAdminAssessmentService(assessmentRepo repository.AssessmentRepository) AdminAssessmentService {
	return &adminAssessmentService{assessmentRepo: assessmentRepo}
}

// CreateAssessment validates that the declared sections exactly cover the
// flat question-id list and persists the assessment with its sections.
// Per-section marks fields are stored as declared; grading applies the
// global scheme regardless.
func (s *adminAssessmentService) CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AssessmentSummaryDTO, error) {
	covered := 0
	sectionMinutes := 0
	for _, sec := range req.Sections {
		covered += sec.QuestionCount
		sectionMinutes += sec.DurationMinutes
	}
	if covered != len(req.QuestionIDs) {
		return nil, fmt.Errorf("%w: sections cover %d questions but %d ids were given",
			ErrInvalidAssessment, covered, len(req.QuestionIDs))
	}
	if sectionMinutes > req.DurationMinutes {
		return nil, fmt.Errorf("%w: section durations total %d minutes, exceeding the %d minute limit",
			ErrInvalidAssessment, sectionMinutes, req.DurationMinutes)
	}

	seen := make(map[string]bool, len(req.QuestionIDs))
	for _, id := range req.QuestionIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate question id %s", ErrInvalidAssessment, id)
		}
		seen[id] = true
	}

	assessment := model.Assessment{
		ID:              req.ID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		QuestionIDs:     req.QuestionIDs,
	}
	if assessment.ID == "" {
		assessment.ID = uuid.NewString()
	}
	for i, sec := range req.Sections {
		section := model.Section{OrderIndex: i}
		copier.Copy(&section, &sec)
		assessment.Sections = append(assessment.Sections, section)
	}

	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateAssessment: failed to persist")
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	log.Info().Str("assessmentID", assessment.ID).Int("questions", len(assessment.QuestionIDs)).Int("sections", len(assessment.Sections)).Msg("Assessment created")
	return &dto.AssessmentSummaryDTO{
		ID:              assessment.ID,
		Title:           assessment.Title,
		DurationMinutes: assessment.DurationMinutes,
		QuestionCount:   len(assessment.QuestionIDs),
		SectionCount:    len(assessment.Sections),
		CreatedAt:       assessment.CreatedAt,
	}, nil
}
