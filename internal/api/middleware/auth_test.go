package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

const testSecret = "secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims(userID int) *domain.AuthClaims {
	return &domain.AuthClaims{
		UserID:   userID,
		Email:    "alice@example.com",
		UserName: "alice",
		PhoneNo:  "5550001",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func runAuth(t *testing.T, cfg AuthConfig, method, path, authorization string) (bool, *domain.AuthClaims, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	var seen *domain.AuthClaims
	err := Authenticate(cfg)(func(c echo.Context) error {
		called = true
		seen, _ = ClaimsFrom(c)
		return c.NoContent(http.StatusOK)
	})(c)
	return called, seen, err
}

func expectDomainError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	de, ok := domain.AsError(err)
	if !ok {
		t.Fatalf("expected *domain.Error, got %v", err)
	}
	if de.Status != status || de.Message != msg {
		t.Fatalf("expected %d %q, got %d %q", status, msg, de.Status, de.Message)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(7))

	called, claims, err := runAuth(t, AuthConfig{Secret: testSecret}, http.MethodGet, "/api/topic/get-all-topic", "Bearer "+token)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if claims == nil || claims.UserID != 7 || claims.UserName != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	called, _, err := runAuth(t, AuthConfig{Secret: testSecret}, http.MethodGet, "/api/topic/get-all-topic", "")
	if called {
		t.Fatalf("should not reach next")
	}
	expectDomainError(t, err, http.StatusForbidden, domain.MsgNoToken)
}

func TestAuthenticate_SchemeWithoutToken(t *testing.T) {
	called, _, err := runAuth(t, AuthConfig{Secret: testSecret}, http.MethodGet, "/x", "Bearer")
	if called {
		t.Fatalf("should not reach next")
	}
	expectDomainError(t, err, http.StatusForbidden, domain.MsgNoToken)
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	expired := validClaims(7)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims(7)
	noExpiry.ExpiresAt = nil

	cases := map[string]string{
		"garbage":        "Bearer not-a-token",
		"wrong secret":   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims(7)),
		"wrong algo":     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(7)),
		"expired":        "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"no expiry":      "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
		"wrong scheme":   "Token " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(7)),
		"unsigned token": "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims(7)),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			called, _, err := runAuth(t, AuthConfig{Secret: testSecret}, http.MethodGet, "/x", header)
			if called {
				t.Fatalf("should not reach next")
			}
			expectDomainError(t, err, http.StatusUnauthorized, domain.MsgInvalidToken)
		})
	}
}

func TestAuthenticate_SkipperBypassesVerification(t *testing.T) {
	filter := NewExemptionFilter(ExemptionRule{Path: "/api/user/login", Methods: []string{http.MethodPost}})
	cfg := AuthConfig{Secret: testSecret, Skipper: filter.Skipper()}

	called, claims, err := runAuth(t, cfg, http.MethodPost, "/api/user/login", "Bearer garbage")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("exempt request should reach next")
	}
	if claims != nil {
		t.Fatalf("exempt request must not carry claims")
	}

	called, _, err = runAuth(t, cfg, http.MethodGet, "/api/user/login", "")
	if called {
		t.Fatalf("method mismatch should not be exempt")
	}
	expectDomainError(t, err, http.StatusForbidden, domain.MsgNoToken)
}

func TestClaimsFrom_Empty(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if _, ok := ClaimsFrom(c); ok {
		t.Fatalf("expected no claims")
	}
}
