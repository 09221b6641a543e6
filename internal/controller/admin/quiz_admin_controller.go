package admin

import (
	"fmt"
	"net/http"

	"quizhub-backend/internal/controller"
	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/middleware"
	"quizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizAdminController struct {
	adminService     service.QuizAdminService
	analyticsService service.AnalyticsService
	exportService    service.ExportService
}

func NewQuizAdminController(
	adminService service.QuizAdminService,
	analyticsService service.AnalyticsService,
	exportService service.ExportService,
) *QuizAdminController {
	return &QuizAdminController{
		adminService:     adminService,
		analyticsService: analyticsService,
		exportService:    exportService,
	}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz
// @Description Admin creates a quiz with its questions. The quiz id is a slug derived from the title.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz creation data including questions"
// @Success 201 {object} dto.QuizResponseDTO "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "A quiz with the same title already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *QuizAdminController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	createdBy := ""
	if user, ok := middleware.CurrentUser(ctx); ok {
		createdBy = user.UID
	}
	quizResp, err := c.adminService.CreateQuiz(req, createdBy)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateQuiz: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quizResp)
}

// UpdateQuiz godoc
// @Summary (Admin) Update an existing quiz
// @Description Replaces the quiz's editable content, the question set included. Id, creator and creation time are immutable.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz_data body dto.QuizUpdateDTO true "Updated quiz content"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{id} [put]
func (c *QuizAdminController) UpdateQuiz(ctx *gin.Context) {
	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quizResp, err := c.adminService.UpdateQuiz(ctx.Param("id"), req)
	if err != nil {
		log.Error().Err(err).Str("quizID", ctx.Param("id")).Msg("Admin UpdateQuiz: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizResp)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with correct answers
// @Description Full admin view of a quiz, correct option indexes included.
// @Tags Admin - Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id} [get]
func (c *QuizAdminController) GetQuiz(ctx *gin.Context) {
	quizResp, err := c.adminService.GetQuiz(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizResp)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz
// @Description Deletes the quiz with its questions and every submission under it.
// @Tags Admin - Quizzes
// @Param id path string true "Quiz ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{id} [delete]
func (c *QuizAdminController) DeleteQuiz(ctx *gin.Context) {
	if err := c.adminService.DeleteQuiz(ctx.Param("id")); err != nil {
		log.Error().Err(err).Str("quizID", ctx.Param("id")).Msg("Admin DeleteQuiz: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ToggleStatus godoc
// @Summary (Admin) Toggle a quiz's lifecycle status
// @Description Flips the quiz between active and completed. Draft quizzes become active.
// @Tags Admin - Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/status [patch]
func (c *QuizAdminController) ToggleStatus(ctx *gin.Context) {
	status, err := c.adminService.ToggleStatus(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: status})
}

// ToggleAnswerDetails godoc
// @Summary (Admin) Toggle early answer visibility
// @Description Flips whether participants may review correct answers while the quiz is still active.
// @Tags Admin - Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/answer-details [patch]
func (c *QuizAdminController) ToggleAnswerDetails(ctx *gin.Context) {
	enabled, err := c.adminService.ToggleAnswerDetails(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"show_answer_details": enabled})
}

// Leaderboard godoc
// @Summary (Admin) Ranked leaderboard for a quiz
// @Description Submissions ranked by score, ties broken by completion time. In-progress attempts rank below completed ones with equal scores.
// @Tags Admin - Analytics
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.LeaderboardDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/leaderboard [get]
func (c *QuizAdminController) Leaderboard(ctx *gin.Context) {
	lb, err := c.analyticsService.Leaderboard(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lb)
}

// Analytics godoc
// @Summary (Admin) Per-question analytics for a quiz
// @Description Correct/incorrect counts, pass rates and difficulty bands per question, plus aggregate averages.
// @Tags Admin - Analytics
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.AnalyticsDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/analytics [get]
func (c *QuizAdminController) Analytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.Analytics(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}

// ExportResults godoc
// @Summary (Admin) Export quiz results as CSV
// @Description Downloads the ranked leaderboard as a CSV attachment.
// @Tags Admin - Analytics
// @Produce text/csv
// @Param id path string true "Quiz ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/export [get]
func (c *QuizAdminController) ExportResults(ctx *gin.Context) {
	filename, data, err := c.exportService.ExportCSV(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// SeedQuizzes godoc
// @Summary (Admin) Seed the starter quizzes
// @Description Inserts the fixed starter quiz set. Skipped when any quiz already exists.
// @Tags Admin - Quizzes
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/seed [post]
func (c *QuizAdminController) SeedQuizzes(ctx *gin.Context) {
	n, err := c.adminService.SeedInitialQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Admin SeedQuizzes: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"seeded": n})
}
