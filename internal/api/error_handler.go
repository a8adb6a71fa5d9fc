package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

// errorResponse is the error envelope for failures that escape a
// handler (middleware rejections, unexpected errors). The auth
// endpoints respond with their own result envelope and never reach
// this path on expected failures.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrRegistrationFailed):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrProviderMismatch):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidProviderToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrUnsupportedProvider):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
