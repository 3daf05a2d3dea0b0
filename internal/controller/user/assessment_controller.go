package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakshya-prep/lakshya/internal/controller"
	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/service"
	"github.com/rs/zerolog/log"
)

const recentAttemptsLimit = 20

type AssessmentController struct {
	assessmentService service.AssessmentService
	gradingService    service.GradingService
	resultService     service.ResultService
}

func NewAssessmentController(
	assessmentService service.AssessmentService,
	gradingService service.GradingService,
	resultService service.ResultService,
) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
		gradingService:    gradingService,
		resultService:     resultService,
	}
}

// GetAllAssessments godoc
// @Summary List all available assessments
// @Tags Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments [get]
func (c *AssessmentController) GetAllAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentService.GetAllAssessments()
	if err != nil {
		log.Error().Err(err).Msg("GetAllAssessments: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve assessments"})
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// GetAssessmentDetails godoc
// @Summary Get an assessment for the exam view
// @Description Full structure with sections and questions; correct answers and explanations are stripped.
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id} [get]
func (c *AssessmentController) GetAssessmentDetails(ctx *gin.Context) {
	detail, err := c.assessmentService.GetAssessmentDetails(ctx.Request.Context(), ctx.Param("assessment_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrAssessmentNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetAssessmentQuestions godoc
// @Summary Get an assessment's questions including answer keys
// @Description Review-side payload used when reconstructing graded attempts.
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {array} dto.QuestionFullDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/questions [get]
func (c *AssessmentController) GetAssessmentQuestions(ctx *gin.Context) {
	questions, err := c.assessmentService.GetAssessmentQuestions(ctx.Request.Context(), ctx.Param("assessment_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrAssessmentNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitAssessment godoc
// @Summary Submit a completed attempt for grading
// @Description The caller's verified identity must match the body's user_id. An empty answer map is valid and yields a zero-score attempt.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Param submission body dto.AssessmentSubmitDTO true "User id and answer map"
// @Success 200 {object} dto.AssessmentSubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/submit [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	var req dto.AssessmentSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	caller := controller.CallerID(ctx)
	if caller == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}
	if caller != req.UserID {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Forbidden"})
		return
	}

	assessmentID := ctx.Param("assessment_id")
	log.Info().Str("assessmentID", assessmentID).Str("userID", req.UserID).Int("answerCount", len(req.Answers)).Msg("Received attempt submission")

	attemptID, err := c.gradingService.SubmitAssessment(ctx.Request.Context(), assessmentID, req.UserID, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("SubmitAssessment: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit the assessment"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AssessmentSubmitResultDTO{Success: true, AttemptID: attemptID})
}

// GetMyAttempts godoc
// @Summary List the caller's attempts for an assessment
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/my-attempts [get]
func (c *AssessmentController) GetMyAttempts(ctx *gin.Context) {
	caller := controller.CallerID(ctx)
	if caller == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	attempts, err := c.resultService.GetUserAttempts(ctx.Param("assessment_id"), caller)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts"})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttemptReview godoc
// @Summary Get the graded review of one attempt
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptReviewDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id} [get]
func (c *AssessmentController) GetAttemptReview(ctx *gin.Context) {
	review, err := c.resultService.GetAttemptReview(ctx.Request.Context(), ctx.Param("attempt_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrAttemptNotFound) || errors.Is(err, service.ErrAssessmentNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// GetRecentAttempts godoc
// @Summary List the caller's most recent attempts across assessments
// @Tags Attempts
// @Produce json
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /attempts/recent [get]
func (c *AssessmentController) GetRecentAttempts(ctx *gin.Context) {
	caller := controller.CallerID(ctx)
	if caller == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	attempts, err := c.resultService.GetRecentAttempts(caller, recentAttemptsLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve recent attempts"})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
