package user

import (
	"net/http"

	"quizhub-backend/internal/controller"
	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/middleware"
	"quizhub-backend/internal/realtime"
	"quizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	catalogService   service.QuizCatalogService
	attemptService   service.AttemptService
	analyticsService service.AnalyticsService
	hub              *realtime.Hub
}

func NewQuizController(
	catalogService service.QuizCatalogService,
	attemptService service.AttemptService,
	analyticsService service.AnalyticsService,
	hub *realtime.Hub,
) *QuizController {
	return &QuizController{
		catalogService:   catalogService,
		attemptService:   attemptService,
		analyticsService: analyticsService,
		hub:              hub,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Identity comes from trusted proxy headers, not cookies, so
	// cross-origin websocket opens are safe to accept.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ListQuizzes godoc
// @Summary (User) List available quizzes
// @Description Lists quizzes visible to participants. Drafts are excluded.
// @Tags User - Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.catalogService.ListQuizzes(false)
	if err != nil {
		log.Error().Err(err).Msg("User ListQuizzes: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetail godoc
// @Summary (User) Get a quiz for taking
// @Description Quiz content without correct answers. Draft quizzes respond 404.
// @Tags User - Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuizDetail(ctx *gin.Context) {
	detail, err := c.catalogService.GetQuizDetail(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// StartAttempt godoc
// @Summary (User) Start or resume an attempt
// @Description Initializes an attempt on first call, resumes the saved state on later ones. Ended quizzes cannot be started or resumed, though completed attempts stay readable.
// @Tags User - Attempts
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.AttemptStateDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Quiz not open for participation"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz has ended"
// @Router /quizzes/{id}/attempt [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	state, err := c.attemptService.StartOrResume(ctx.Param("id"), user)
	if err != nil {
		log.Warn().Err(err).Str("quizID", ctx.Param("id")).Str("userID", user.UID).Msg("User StartAttempt rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitAnswer godoc
// @Summary (User) Answer the current question and advance
// @Description Records the answer for the currently displayed question and moves to the next. Answering the last question completes and scores the attempt.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param answer body dto.AnswerSubmitDTO true "Answer for the current question"
// @Success 200 {object} dto.AdvanceResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid answer"
// @Failure 404 {object} dto.ErrorResponse "No attempt in progress"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed or quiz ended"
// @Router /quizzes/{id}/attempt/answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, _ := middleware.CurrentUser(ctx)
	result, err := c.attemptService.Advance(ctx.Param("id"), user, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary (User) Result of a completed attempt
// @Description Score summary for the caller's completed attempt. Per-question review is included only when the visibility policy allows it.
// @Tags User - Attempts
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.ResultDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz or attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not completed yet"
// @Router /quizzes/{id}/result [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	result, err := c.attemptService.Result(ctx.Param("id"), user)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// LiveLeaderboard godoc
// @Summary (User) Live leaderboard stream
// @Description Upgrades to a websocket and pushes the full leaderboard on connect and after every submission change.
// @Tags User - Quizzes
// @Param id path string true "Quiz ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/leaderboard/live [get]
func (c *QuizController) LiveLeaderboard(ctx *gin.Context) {
	quizID := ctx.Param("id")

	// Validate the quiz before committing to the upgrade.
	lb, err := c.analyticsService.Leaderboard(quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("quizID", quizID).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	signals, cancel := c.hub.Subscribe(quizID)
	defer cancel()

	// Reader goroutine only detects the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(lb); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			lb, err := c.analyticsService.Leaderboard(quizID)
			if err != nil {
				log.Error().Err(err).Str("quizID", quizID).Msg("Live leaderboard refresh failed")
				return
			}
			if err := conn.WriteJSON(lb); err != nil {
				return
			}
		}
	}
}
