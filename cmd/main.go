package main

import (
	"context"
	"net/http"
	"time"

	"quizhub-backend/config"
	"quizhub-backend/database"
	_ "quizhub-backend/docs" // Swagger docs - auto-generated
	adminctrl "quizhub-backend/internal/controller/admin"
	userctrl "quizhub-backend/internal/controller/user"
	"quizhub-backend/internal/logger"
	"quizhub-backend/internal/middleware"
	"quizhub-backend/internal/model"
	"quizhub-backend/internal/realtime"
	"quizhub-backend/internal/repository"
	"quizhub-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizHub API
// @version 1.0
// @description Quiz hosting API with admin-authored quizzes, resumable attempts, leaderboards and analytics.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			realtime.NewHub,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewSubmissionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuizAdminService,
			service.NewQuizCatalogService,
			service.NewAnalyticsService,
			service.NewExportService,
			// The hub doubles as the submission notifier, feeding the live
			// leaderboard websocket.
			func(
				quizRepo repository.QuizRepository,
				subRepo repository.SubmissionRepository,
				hub *realtime.Hub,
			) service.AttemptService {
				return service.NewAttemptService(quizRepo, subRepo, hub)
			},
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewQuizAdminController,
			userctrl.NewQuizController,
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
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-Id", "X-User-Name", "X-User-Email", "X-User-Admin"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Identity())

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizAdminCtrl *adminctrl.QuizAdminController,
	quizCtrl *userctrl.QuizController,
) {
	// Admin routes respond 404 to non-admins, indistinguishable from
	// missing routes.
	adminGroup := router.Group("/api/v1/admin", middleware.RequireAdmin())
	{
		quizzes := adminGroup.Group("/quizzes")
		quizzes.POST("", quizAdminCtrl.CreateQuiz)
		quizzes.GET("/:id", quizAdminCtrl.GetQuiz)
		quizzes.PUT("/:id", quizAdminCtrl.UpdateQuiz)
		quizzes.DELETE("/:id", quizAdminCtrl.DeleteQuiz)
		quizzes.PATCH("/:id/status", quizAdminCtrl.ToggleStatus)
		quizzes.PATCH("/:id/answer-details", quizAdminCtrl.ToggleAnswerDetails)
		quizzes.GET("/:id/leaderboard", quizAdminCtrl.Leaderboard)
		quizzes.GET("/:id/analytics", quizAdminCtrl.Analytics)
		quizzes.GET("/:id/export", quizAdminCtrl.ExportResults)

		adminGroup.POST("/seed", quizAdminCtrl.SeedQuizzes)
	}

	userGroup := router.Group("/api/v1")
	{
		userGroup.GET("/quizzes", quizCtrl.ListQuizzes)
		userGroup.GET("/quizzes/:id", quizCtrl.GetQuizDetail)
		userGroup.GET("/quizzes/:id/leaderboard/live", quizCtrl.LiveLeaderboard)

		attempts := userGroup.Group("", middleware.RequireUser())
		attempts.POST("/quizzes/:id/attempt", quizCtrl.StartAttempt)
		attempts.POST("/quizzes/:id/attempt/answer", quizCtrl.SubmitAnswer)
		attempts.GET("/quizzes/:id/result", quizCtrl.GetResult)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
