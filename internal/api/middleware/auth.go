package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// ClaimsKey is the echo context key holding *domain.AuthClaims.
const ClaimsKey = "auth_claims"

// AuthConfig configures Authenticate.
type AuthConfig struct {
	// Secret is the HS256 signing key shared with the token issuer.
	Secret string
	// Skipper bypasses verification entirely, e.g. ExemptionFilter.Skipper.
	Skipper echomiddleware.Skipper
}

// Authenticate verifies the bearer token and stores its claims in the
// context. A missing token answers 403; any verification failure (bad
// signature, wrong algorithm, malformed payload, expired) answers 401 with
// the same message.
func Authenticate(cfg AuthConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = echomiddleware.DefaultSkipper
	}
	secret := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}

			scheme, token := splitAuthorization(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return domain.NewError(domain.KindAuthMissing, domain.MsgNoToken).WithStatus(http.StatusForbidden)
			}

			claims := &domain.AuthClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return secret, nil
			}, jwt.WithExpirationRequired())
			if !strings.EqualFold(scheme, "bearer") || err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
				return domain.Wrap(domain.KindAuthInvalid, err, domain.MsgInvalidToken)
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Authenticate.
func ClaimsFrom(c echo.Context) (*domain.AuthClaims, bool) {
	claims, ok := c.Get(ClaimsKey).(*domain.AuthClaims)
	return claims, ok && claims != nil
}

// splitAuthorization splits "<scheme> <token>". The token is empty when the
// header is absent or has no second part.
func splitAuthorization(header string) (scheme, token string) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
