package app_error

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New builds an error carrying the HTTP status it should map to.
func New(status int, format string, args ...any) error {
	return statusError{error: fmt.Errorf(format, args...), status: status}
}

// Status returns the status attached to err, or fallback when none is.
func Status(err error, fallback int) int {
	var withStatus statusError
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	return fallback
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}
