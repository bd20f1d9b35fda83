package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/careercharma/learnhub-api/internal/infrastructure/http/handlers"
)

// SystemRoutes lists the paths registered by RegisterSystemRoutes. None of
// them require a token.
var SystemRoutes = []string{"/", "/test-db", "/health", "/health/ready", "/metrics"}

// SwaggerPrefix is the path prefix of the API documentation UI.
const SwaggerPrefix = "/swagger/"

// RegisterSystemRoutes mounts the welcome, health, metrics and docs routes.
func RegisterSystemRoutes(e *echo.Echo, dbCheck handlers.Checker, others map[string]handlers.Checker) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(dbCheck, others)

	e.GET("/", healthHandler.Welcome)
	e.GET("/test-db", healthDepsHandler.TestDB)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET(SwaggerPrefix+"*", echoSwagger.WrapHandler)
}
