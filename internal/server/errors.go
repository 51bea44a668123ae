package server

import (
	"errors"
	"log/slog"
	"net/http"

	"gaming-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusOf maps service errors to HTTP codes. Not found is checked first since
// updating a missing product also counts as a validation failure.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, service.ErrImportFormat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status = statusOf(err)
			body   = errorResponse{Error: err.Error()}
			he     *echo.HTTPError
			verr   *service.ValidationError
		)
		switch {
		case errors.As(err, &he):
			status = he.Code
			body.Error = http.StatusText(he.Code)
			if msg, ok := he.Message.(string); ok {
				body.Error = msg
			}
		case errors.As(err, &verr):
			body.Field = verr.Field
		case status == http.StatusInternalServerError:
			log.ErrorContext(c.Request().Context(), "unhandled request error", "err", err)
			body.Error = http.StatusText(status)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.ErrorContext(c.Request().Context(), "write error response", "err", err)
		}
	}
}
