package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// Checker probes one dependency.
type Checker func(ctx context.Context) error

// HealthHandler serves the liveness and welcome routes.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness answers 200 as long as the process is serving.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Welcome handles GET /.
func (h *HealthHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome."})
}

// HealthDependenciesHandler handles GET /health/ready and GET /test-db.
type HealthDependenciesHandler struct {
	checks  map[string]Checker
	dbCheck Checker
	timeout time.Duration
}

// NewHealthDependenciesHandler builds the readiness probe. dbCheck backs
// /test-db and is also reported as "postgres" on /health/ready.
func NewHealthDependenciesHandler(dbCheck Checker, others map[string]Checker) *HealthDependenciesHandler {
	checks := map[string]Checker{"postgres": dbCheck}
	for name, check := range others {
		checks[name] = check
	}
	return &HealthDependenciesHandler{checks: checks, dbCheck: dbCheck, timeout: 3 * time.Second}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]dependencyStatus, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

type testDBResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TestDB pings the database; failures go through the error handler as 500.
func (h *HealthDependenciesHandler) TestDB(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.dbCheck(ctx); err != nil {
		return domain.Wrap(domain.KindInternal, err, "Database connection failed")
	}
	return c.JSON(http.StatusOK, testDBResponse{
		Success:   true,
		Message:   "Database connection successful",
		Timestamp: time.Now().UTC(),
	})
}
