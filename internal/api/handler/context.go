package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/api/middleware"
	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Authenticate middleware.
// A zero subject means the token was structurally valid but carries no
// usable identity.
func ctxClaims(c echo.Context) (*domain.AuthClaims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.UserID == 0 {
		return nil, domain.NewError(domain.KindAuthMissing, "User not authenticated")
	}
	return claims, nil
}

// intParam parses a numeric path parameter, answering 400 with msg when it
// is not an integer.
func intParam(c echo.Context, name, msg string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domain.Wrap(domain.KindValidation, err, msg)
	}
	return v, nil
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type dataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}
