package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminAssessmentController struct {
	adminService service.AdminAssessmentService
}

func NewAdminAssessmentController(adminService service.AdminAssessmentService) *AdminAssessmentController {
	return &AdminAssessmentController{adminService: adminService}
}

// CreateAssessment godoc
// @Summary (Admin) Create an assessment with sections and question ids
// @Tags Admin
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentCreateDTO true "Assessment definition"
// @Success 201 {object} dto.AssessmentSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/assessments [post]
func (c *AdminAssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	summary, err := c.adminService.CreateAssessment(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAssessment) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("title", req.Title).Msg("CreateAssessment: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create assessment"})
		return
	}
	ctx.JSON(http.StatusCreated, summary)
}
