package controller

import (
	"errors"
	"net/http"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatusFor maps service sentinel errors to HTTP status codes. Anything
// unrecognized is an internal error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrQuizExists),
		errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrAttemptNotCompleted),
		errors.Is(err, service.ErrQuizEnded):
		return http.StatusConflict
	case errors.Is(err, service.ErrQuizNotJoinable):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAnswerRequired),
		errors.Is(err, service.ErrQuestionMismatch),
		errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, service.ErrInvalidQuestion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the mapped status with a JSON error body. Internal
// errors get a generic message so storage details never leak to clients.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	c.JSON(status, dto.ErrorResponse{Message: msg})
}
