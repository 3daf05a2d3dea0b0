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

type DailyController struct {
	dailyService  service.DailyQuestionService
	streakService service.StreakService
}

func NewDailyController(dailyService service.DailyQuestionService, streakService service.StreakService) *DailyController {
	return &DailyController{dailyService: dailyService, streakService: streakService}
}

// GetDailyQuestion godoc
// @Summary Get today's practice question
// @Description Answer key is stripped. For authenticated callers the payload includes solve state and current streak.
// @Tags Daily Practice
// @Produce json
// @Success 200 {object} dto.DailyQuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /daily-question [get]
func (c *DailyController) GetDailyQuestion(ctx *gin.Context) {
	question, err := c.dailyService.TodayQuestion(controller.CallerID(ctx))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNoDailyQuestions) || errors.Is(err, service.ErrQuestionNotFound) {
			status = http.StatusNotFound
		}
		log.Error().Err(err).Msg("GetDailyQuestion: service error")
		ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// SubmitDailyAnswer godoc
// @Summary Submit an answer for today's practice question
// @Description A correct answer advances the caller's streak at most once per UTC day. A wrong answer never breaks the streak and may be retried.
// @Tags Daily Practice
// @Accept json
// @Produce json
// @Param submission body dto.DailySubmitDTO true "User id, question id and selected option"
// @Success 200 {object} dto.DailySubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /daily-question/submit [post]
func (c *DailyController) SubmitDailyAnswer(ctx *gin.Context) {
	var req dto.DailySubmitDTO
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

	result, err := c.streakService.SubmitDailyAnswer(req.UserID, req.QuestionID, *req.SelectedOptionIndex)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOption):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Str("userID", req.UserID).Msg("SubmitDailyAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit the answer"})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUserStreak godoc
// @Summary Get a user's current daily streak
// @Description Only the user themselves may read it. The streak counts as active only when the last correct solve was today or yesterday (UTC).
// @Tags Daily Practice
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.StreakDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/{user_id}/streak [get]
func (c *DailyController) GetUserStreak(ctx *gin.Context) {
	caller := controller.CallerID(ctx)
	if caller == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}
	userID := ctx.Param("user_id")
	if caller != userID {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Forbidden"})
		return
	}

	streak, err := c.streakService.CurrentStreak(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserStreak: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch streak"})
		return
	}
	ctx.JSON(http.StatusOK, dto.StreakDTO{CurrentStreak: streak})
}
