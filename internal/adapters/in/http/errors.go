package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"freight/internal/pkg/errs"
)

// statusOf maps engine error kinds to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrResourceUnavailable),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrMissingAssignment):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail answers with the mapped status. Internal errors are logged and not
// echoed back to the client.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
