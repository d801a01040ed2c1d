// Package httputil implements shared helpers for HTTP handlers.
package httputil

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the amount must be zero or positive"`
}

// NewError writes a JSON error response.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// Status returns the HTTP status appropriate for an error coming out of
// the models package.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrUsernameEmpty),
		errors.Is(err, models.ErrAmountNegative),
		errors.Is(err, models.ErrBudgetNegative):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// LogUnexpected logs errors that have no user-actionable cause together
// with the request ID, so server admins can find them.
func LogUnexpected(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
}
