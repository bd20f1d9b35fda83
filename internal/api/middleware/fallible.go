package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

const stackSize = 4 << 10

// Fallible guarantees every handler ends in either a response or an error
// for the central error handler. Returned errors pass through untouched;
// panics are recovered into an internal *domain.Error.
func Fallible(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				cause, ok := r.(error)
				if !ok {
					cause = fmt.Errorf("%v", r)
				}

				stack := make([]byte, stackSize)
				stack = stack[:runtime.Stack(stack, false)]
				log.Error().
					Err(cause).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Bytes("stack", stack).
					Msg("handler panic recovered")

				err = domain.Wrap(domain.KindInternal, cause, cause.Error())
			}()

			return next(c)
		}
	}
}
