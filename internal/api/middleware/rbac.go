package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// UserFinder is the persistence lookup used by RequireRole. It returns
// domain.ErrNotFound when the user does not exist.
type UserFinder interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// RequireRole lets the request through only when the stored role of the
// token subject equals role. The role is read from the store on every
// request, never from the token, so demotions apply immediately.
func RequireRole(users UserFinder, role domain.Role) echo.MiddlewareFunc {
	forbidden := domain.Errorf(domain.KindForbidden, "Only %s Can Access this Route", role)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || claims.UserID == 0 {
				metrics.RoleGateDecisionsTotal.WithLabelValues("no_claims").Inc()
				return domain.NewError(domain.KindAuthMissing, domain.MsgLoginFirst)
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if errors.Is(err, domain.ErrNotFound) {
				metrics.RoleGateDecisionsTotal.WithLabelValues("unknown_subject").Inc()
				return domain.NewError(domain.KindNotFound, domain.MsgInvalidSubjectID).WithStatus(http.StatusUnauthorized)
			}
			if err != nil {
				return fmt.Errorf("role gate lookup: %w", err)
			}

			if user.Role != role {
				metrics.RoleGateDecisionsTotal.WithLabelValues("forbidden").Inc()
				return forbidden
			}

			metrics.RoleGateDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
