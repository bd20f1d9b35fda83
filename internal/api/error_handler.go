package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
	"github.com/careercharma/learnhub-api/internal/core/domain"
)

const fallbackMessage = "Internal Server Error"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns the single place error responses are written:
//   - *domain.Error renders its own status and message.
//   - *echo.HTTPError (unknown route, bad method, body limit) keeps its code.
//   - Anything else is a 500 carrying the error text.
//
// The body is always {"success": false, "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err)
		metrics.ErrorResponsesTotal.WithLabelValues(strconv.Itoa(code)).Inc()

		ev := log.Debug()
		if code >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Int("status", code).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("request failed")

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error) (int, string) {
	if de, ok := domain.AsError(err); ok {
		return de.Status, de.Message
	}

	// Echo's own errors (bind failures, 404 from router, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			if de, ok := domain.AsError(he.Internal); ok {
				return de.Status, de.Message
			}
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if err == nil || err.Error() == "" {
		return http.StatusInternalServerError, fallbackMessage
	}
	return http.StatusInternalServerError, err.Error()
}
