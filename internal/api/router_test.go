package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
	"github.com/careercharma/learnhub-api/internal/infrastructure/db/postgres"
	"github.com/careercharma/learnhub-api/internal/infrastructure/queue"
	"github.com/careercharma/learnhub-api/internal/infrastructure/security"
)

const routerSecret = "router-test-secret"

type outbox struct {
	mu   sync.Mutex
	sent []ports.VerificationEmail
}

func (o *outbox) SendVerificationCode(_ context.Context, msg ports.VerificationEmail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) last(t *testing.T) ports.VerificationEmail {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.sent, "no verification e-mail sent")
	return o.sent[len(o.sent)-1]
}

type bucket struct{}

func (bucket) Upload(_ context.Context, folder string, f *ports.UploadFile) (ports.StoredObject, error) {
	key := folder + "/" + f.Name
	return ports.StoredObject{URL: "https://storage.googleapis.com/test/" + key, Key: key}, nil
}

type testApp struct {
	e      *echo.Echo
	db     *gorm.DB
	hasher *security.BcryptHasher
	mail   *outbox
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(context.Background(), db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	pool := queue.NewPool(2, zerolog.Nop())
	pool.Start()
	t.Cleanup(pool.Stop)
	hasher := security.NewBcryptHasher(pool, bcrypt.MinCost)

	mail := &outbox{}
	e := NewRouter(Dependencies{
		DB:          db,
		Redis:       rdb,
		Storage:     bucket{},
		Mailer:      mail,
		Hasher:      hasher,
		Logger:      zerolog.Nop(),
		JWTSecret:   routerSecret,
		TokenTTL:    time.Hour,
		CodeTTL:     time.Minute,
		BodyLimit:   "1M",
		CORSOrigins: []string{"http://localhost:3000"},
	})
	return &testApp{e: e, db: db, hasher: hasher, mail: mail}
}

func (a *testApp) do(t *testing.T, method, target, token string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return a.serve(t, req)
}

func (a *testApp) serve(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var resp map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	}
	return rec.Code, resp
}

// seedUser stores a verified account directly and returns its id.
func (a *testApp) seedUser(t *testing.T, name string, role domain.Role) int {
	t.Helper()
	hash, err := a.hasher.Hash(context.Background(), "pw-"+name)
	require.NoError(t, err)
	u := &domain.User{
		FullName:        "Test " + name,
		UserName:        name,
		CountryCode:     "+1",
		PhoneNo:         "555-" + name,
		Email:           name + "@example.com",
		IsEmailVerified: true,
		Dob:             time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		PasswordHash:    hash,
		Role:            role,
	}
	require.NoError(t, postgres.NewUserRepository(a.db).Create(context.Background(), u))
	return u.ID
}

func (a *testApp) login(t *testing.T, name string) string {
	t.Helper()
	code, resp := a.do(t, http.MethodPost, "/api/user/login", "", map[string]string{
		"email":    name + "@example.com",
		"password": "pw-" + name,
	})
	require.Equal(t, http.StatusOK, code, "login: %v", resp)
	token, ok := resp["token"].(string)
	require.True(t, ok && token != "", "no token in %v", resp)
	return token
}

func requireFailure(t *testing.T, code int, resp map[string]any, wantCode int, wantMsg string) {
	t.Helper()
	require.Equal(t, wantCode, code, "body: %v", resp)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, wantMsg, resp["message"])
}

func TestRouter_WelcomeIsPublic(t *testing.T) {
	app := newTestApp(t)

	code, resp := app.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Welcome.", resp["message"])
}

func TestRouter_SystemRoutesArePublic(t *testing.T) {
	app := newTestApp(t)

	code, resp := app.do(t, http.MethodGet, "/test-db", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Database connection successful", resp["message"])

	code, _ = app.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = app.do(t, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, code, "body: %v", resp)
}

func TestRouter_LoginThenProtectedRead(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "alice", domain.RoleUser)

	token := app.login(t, "alice")

	code, resp := app.do(t, http.MethodGet, "/api/topic/get-all-topic", token, nil)
	require.Equal(t, http.StatusOK, code, "body: %v", resp)
	assert.Contains(t, resp, "topics")
}

func TestRouter_NonAdminOnAdminRoute(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "alice", domain.RoleUser)
	token := app.login(t, "alice")

	code, resp := app.do(t, http.MethodGet, "/api/user/get-all-user", token, nil)
	requireFailure(t, code, resp, http.StatusForbidden, "Only Admin Can Access this Route")
}

func TestRouter_GarbageToken(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/api/topic/get-all-topic", "/api/user/get-all-user", "/api/unknown"} {
		code, resp := app.do(t, http.MethodGet, target, "garbage", nil)
		requireFailure(t, code, resp, http.StatusUnauthorized, domain.MsgInvalidToken)
	}
}

func TestRouter_MissingToken(t *testing.T) {
	app := newTestApp(t)

	code, resp := app.do(t, http.MethodGet, "/api/question/get-all", "", nil)
	requireFailure(t, code, resp, http.StatusForbidden, domain.MsgNoToken)

	// exemption is exact: a trailing slash is a different path
	code, resp = app.do(t, http.MethodPost, "/api/user/login/", "", nil)
	requireFailure(t, code, resp, http.StatusForbidden, domain.MsgNoToken)
}

func TestRouter_UnknownRouteWithToken(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "alice", domain.RoleUser)
	token := app.login(t, "alice")

	code, resp := app.do(t, http.MethodGet, "/api/unknown", token, nil)
	requireFailure(t, code, resp, http.StatusNotFound, "Not Found")
}

func TestRouter_InternalLookupFailure(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "alice", domain.RoleUser)
	token := app.login(t, "alice")
	require.NoError(t, app.db.Migrator().DropTable(&domain.Topic{}))

	code, resp := app.do(t, http.MethodGet, "/api/topic/get-all-topic", token, nil)
	require.Equal(t, http.StatusInternalServerError, code, "body: %v", resp)
	assert.Equal(t, false, resp["success"])
	msg, _ := resp["message"].(string)
	assert.True(t, strings.HasPrefix(msg, "list topics: "), "message %q", msg)
}

func TestRouter_RegisterVerifyLogin(t *testing.T) {
	app := newTestApp(t)
	form := map[string]any{
		"fullName":    "Bob Stone",
		"userName":    "bob",
		"countryCode": "+44",
		"phoneNo":     "7700900",
		"email":       "bob@example.com",
		"dob":         "1998-02-03",
		"gender":      1,
		"password":    "pw-bob",
	}

	code, resp := app.do(t, http.MethodPost, "/api/user/register", "", form)
	require.Equal(t, http.StatusCreated, code, "body: %v", resp)
	assert.Equal(t, "Welcome, Bob Stone", resp["message"])

	code, resp = app.do(t, http.MethodPost, "/api/user/register", "", form)
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "User already registered with this username: bob", resp["message"])

	code, resp = app.do(t, http.MethodPost, "/api/user/verify-email", "", map[string]string{
		"userName": "bob", "verifyCode": "000000",
	})
	requireFailure(t, code, resp, http.StatusBadRequest, "Invalid verification code")

	mail := app.mail.last(t)
	assert.Equal(t, "bob@example.com", mail.To)
	code, resp = app.do(t, http.MethodPost, "/api/user/verify-email", "", map[string]string{
		"userName": "bob", "verifyCode": mail.Code,
	})
	require.Equal(t, http.StatusOK, code, "body: %v", resp)
	assert.Equal(t, "Email verified successfully", resp["message"])

	token := app.login(t, "bob")
	code, resp = app.do(t, http.MethodPut, "/api/user/update-password", token, map[string]string{
		"oldPassword": "wrong", "newPassword": "next",
	})
	requireFailure(t, code, resp, http.StatusUnauthorized, "Invalid old password")
}

func TestRouter_AdminCategoryLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "root", domain.RoleAdmin)

	code, resp := app.do(t, http.MethodPost, "/api/user/admin-login", "", map[string]string{
		"email": "root@example.com", "password": "pw-root",
	})
	require.Equal(t, http.StatusOK, code, "body: %v", resp)
	token := resp["token"].(string)

	code, resp = app.do(t, http.MethodPost, "/api/category/create", token, map[string]string{"name": "Backend"})
	require.Equal(t, http.StatusCreated, code, "body: %v", resp)

	code, resp = app.do(t, http.MethodPost, "/api/category/create", token, map[string]string{"name": "Backend"})
	requireFailure(t, code, resp, http.StatusConflict, "Category already exist in db")

	code, resp = app.do(t, http.MethodGet, "/api/category/get-all-category", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["allCategory"], 1)
}

func TestRouter_AdminLoginRejectsLearner(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "alice", domain.RoleUser)

	code, resp := app.do(t, http.MethodPost, "/api/user/admin-login", "", map[string]string{
		"email": "alice@example.com", "password": "pw-alice",
	})
	requireFailure(t, code, resp, http.StatusConflict, "this is not admin email: alice@example.com")
}

func TestRouter_DemotionAppliesToExistingToken(t *testing.T) {
	app := newTestApp(t)
	id := app.seedUser(t, "root", domain.RoleAdmin)
	token := app.login(t, "root")

	code, _ := app.do(t, http.MethodGet, "/api/user/get-all-user", token, nil)
	require.Equal(t, http.StatusOK, code)

	require.NoError(t, app.db.Model(&domain.User{}).Where("id = ?", id).Update("role", domain.RoleUser).Error)

	code, resp := app.do(t, http.MethodGet, "/api/user/get-all-user", token, nil)
	requireFailure(t, code, resp, http.StatusForbidden, "Only Admin Can Access this Route")
}

func TestRouter_DeletedSubjectOnAdminRoute(t *testing.T) {
	app := newTestApp(t)
	id := app.seedUser(t, "root", domain.RoleAdmin)
	token := app.login(t, "root")

	require.NoError(t, app.db.Delete(&domain.User{}, id).Error)

	code, resp := app.do(t, http.MethodGet, "/api/user/get-all-user", token, nil)
	requireFailure(t, code, resp, http.StatusUnauthorized, domain.MsgInvalidSubjectID)
}

func TestRouter_TopicUpload(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "root", domain.RoleAdmin)
	token := app.login(t, "root")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Go"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="topicImage"; filename="gopher.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/topic/create", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	code, resp := app.serve(t, req)
	require.Equal(t, http.StatusCreated, code, "body: %v", resp)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "body: %v", resp)
	assert.Equal(t, "Go", data["name"])
	assert.Equal(t, "https://storage.googleapis.com/test/topics/gopher.png", data["topicImage"])
}

func TestPublicRoutes_CoverOperationalEndpoints(t *testing.T) {
	rules := PublicRoutes()
	seen := map[string]bool{}
	for _, r := range rules {
		for _, m := range r.Methods {
			seen[m+" "+r.Path] = true
		}
	}
	for _, want := range []string{
		"GET /", "GET /test-db", "GET /health", "GET /health/ready", "GET /metrics",
		"POST /api/user/register", "POST /api/user/login", "POST /api/user/admin-login",
		"POST /api/user/verify-email", "GET /swagger/index.html", "GET /swagger/doc.json",
	} {
		assert.True(t, seen[want], "missing exemption %s", want)
	}
	assert.False(t, seen["PUT /api/user/update-password"])
}
