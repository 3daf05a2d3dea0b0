package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lakshya-prep/lakshya/config"
	"github.com/lakshya-prep/lakshya/database"
	_ "github.com/lakshya-prep/lakshya/docs" // Swagger docs
	"github.com/lakshya-prep/lakshya/internal/cache"
	adminctrl "github.com/lakshya-prep/lakshya/internal/controller/admin"
	userctrl "github.com/lakshya-prep/lakshya/internal/controller/user"
	"github.com/lakshya-prep/lakshya/internal/logger"
	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/lakshya-prep/lakshya/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Lakshya Assessment API
// @version 1.0
// @description Timed, sectioned assessment lifecycle: grading, attempt review, and daily-practice streaks.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewRedisClient,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewStreakRepository,
			repository.NewDailySolveRepository,
		),

		fx.Provide(
			service.NewQuestionLookup,
			service.NewGradingService,
			service.NewStreakService,
			service.NewDailyQuestionService,
			service.NewResultService,
			service.NewAssessmentService,
			service.NewAdminAssessmentService,
		),

		fx.Provide(
			userctrl.NewAssessmentController,
			userctrl.NewDailyController,
			adminctrl.NewAdminAssessmentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	redisClient *cache.RedisClient,
	assessmentCtrl *userctrl.AssessmentController,
	dailyCtrl *userctrl.DailyController,
	adminCtrl *adminctrl.AdminAssessmentController,
) {
	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/assessments", adminCtrl.CreateAssessment)
	}

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/assessments", assessmentCtrl.GetAllAssessments)
		apiGroup.GET("/assessments/:assessment_id", assessmentCtrl.GetAssessmentDetails)
		apiGroup.GET("/assessments/:assessment_id/questions", assessmentCtrl.GetAssessmentQuestions)
		apiGroup.POST("/assessments/:assessment_id/submit", assessmentCtrl.SubmitAssessment)
		apiGroup.GET("/assessments/:assessment_id/my-attempts", assessmentCtrl.GetMyAttempts)

		apiGroup.GET("/attempts/recent", assessmentCtrl.GetRecentAttempts)
		apiGroup.GET("/attempts/:attempt_id", assessmentCtrl.GetAttemptReview)

		apiGroup.GET("/daily-question", dailyCtrl.GetDailyQuestion)
		apiGroup.POST("/daily-question/submit", dailyCtrl.SubmitDailyAnswer)
		apiGroup.GET("/users/:user_id/streak", dailyCtrl.GetUserStreak)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := redisClient.Close(); err != nil {
				log.Warn().Err(err).Msg("Error closing redis client")
			}
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Assessment{},
		&model.Section{},
		&model.Question{},
		&model.Attempt{},
		&model.UserStreak{},
		&model.DailySolve{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
