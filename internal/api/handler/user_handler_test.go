package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/api/middleware"
	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type stubUserService struct {
	registerFn       func(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error)
	loginFn          func(ctx context.Context, email, password string) (string, *domain.User, error)
	verifyFn         func(ctx context.Context, userName, code string) error
	updatePasswordFn func(ctx context.Context, email, oldPassword, newPassword string) (*domain.User, error)
	getFn            func(ctx context.Context, id int) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) VerifyEmail(ctx context.Context, userName, code string) error {
	return s.verifyFn(ctx, userName, code)
}

func (s *stubUserService) UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) (*domain.User, error) {
	return s.updatePasswordFn(ctx, email, oldPassword, newPassword)
}

func (s *stubUserService) ListUsers(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: 1, FullName: "Alice"}}, nil
}

func (s *stubUserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) DeleteUser(context.Context, int) error { return nil }

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func expectKind(t *testing.T, err error, status int, msg string) {
	t.Helper()
	de, ok := domain.AsError(err)
	if !ok {
		t.Fatalf("expected *domain.Error, got %v", err)
	}
	if de.Status != status || de.Message != msg {
		t.Fatalf("expected %d %q, got %d %q", status, msg, de.Status, de.Message)
	}
}

const registerBody = `{"fullName":"Alice Doe","userName":"alice","countryCode":"+1","phoneNo":"5550001",` +
	`"email":"alice@example.com","dob":"1995-04-12","gender":0,"password":"s3cret"}`

func TestUserHandler_Register_Created(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
			if in.UserName != "alice" || in.Gender != 0 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.Dob.Equal(time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected dob: %v", in.Dob)
			}
			return &ports.RegisterResult{User: &domain.User{FullName: in.FullName}, Created: true}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/user/register", registerBody)

	if err := NewUserHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["message"] != "Welcome, Alice Doe" || resp["success"] != true {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_Register_Refreshed(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{User: &domain.User{FullName: "Old Name"}, Created: false}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/user/register", registerBody)

	if err := NewUserHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["message"] != "Welcome Back, Old Name" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.RegisterResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/user/register", `{"userName":"alice"}`)

	err := NewUserHandler(stub).Register(c)
	expectKind(t, err, http.StatusBadRequest, "All fields are required")
}

func TestUserHandler_Register_BadDob(t *testing.T) {
	body := strings.Replace(registerBody, "1995-04-12", "12/04/1995", 1)
	c, _ := newJSONContext(http.MethodPost, "/api/user/register", body)

	err := NewUserHandler(&stubUserService{}).Register(c)
	expectKind(t, err, http.StatusBadRequest, "Invalid date of birth")
}

func TestUserHandler_Login(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "tok", &domain.User{FullName: "Alice Doe"}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/user/login", `{"email":"alice@example.com","password":"s3cret"}`)

	if err := NewUserHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["token"] != "tok" || resp["message"] != "Welcome back, Alice Doe" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_Login_PropagatesServiceError(t *testing.T) {
	want := domain.NewError(domain.KindAuthInvalid, "Invalid password")
	stub := &stubUserService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) { return "", nil, want },
	}
	c, _ := newJSONContext(http.MethodPost, "/api/user/login", `{"email":"a@b.c","password":"x"}`)

	if err := NewUserHandler(stub).Login(c); err != want {
		t.Fatalf("expected service error, got %v", err)
	}
}

func TestUserHandler_UpdatePassword_UsesTokenEmail(t *testing.T) {
	stub := &stubUserService{
		updatePasswordFn: func(_ context.Context, email, oldPassword, newPassword string) (*domain.User, error) {
			if email != "alice@example.com" || oldPassword != "old" || newPassword != "new" {
				t.Fatalf("unexpected args: %s %s %s", email, oldPassword, newPassword)
			}
			return &domain.User{FullName: "Alice Doe"}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPut, "/api/user/update-password", `{"oldPassword":"old","newPassword":"new"}`)
	c.Set(middleware.ClaimsKey, &domain.AuthClaims{UserID: 1, Email: "alice@example.com"})

	if err := NewUserHandler(stub).UpdatePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode(t, rec); resp["message"] != "password updated successfully, Alice Doe" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_UpdatePassword_NoClaims(t *testing.T) {
	c, _ := newJSONContext(http.MethodPut, "/api/user/update-password", `{"oldPassword":"old","newPassword":"new"}`)

	err := NewUserHandler(&stubUserService{}).UpdatePassword(c)
	expectKind(t, err, http.StatusUnauthorized, "User not authenticated")
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/api/user/get-user/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := NewUserHandler(&stubUserService{}).Get(c)
	expectKind(t, err, http.StatusBadRequest, "Invalid Id")
}

func TestUserHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getFn: func(_ context.Context, id int) (*domain.User, error) {
			return &domain.User{ID: id, FullName: "Alice Doe", PasswordHash: "hashed"}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/api/user/get-user/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := NewUserHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "hashed") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
	user, ok := decode(t, rec)["user"].(map[string]any)
	if !ok || user["id"] != float64(4) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
