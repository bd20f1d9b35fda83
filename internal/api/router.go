package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/careercharma/learnhub-api/internal/api/handler"
	"github.com/careercharma/learnhub-api/internal/api/middleware"
	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
	"github.com/careercharma/learnhub-api/internal/core/service"
	"github.com/careercharma/learnhub-api/internal/infrastructure/db/postgres"
	redisstore "github.com/careercharma/learnhub-api/internal/infrastructure/db/redis"
	infrahttp "github.com/careercharma/learnhub-api/internal/infrastructure/http"
	"github.com/careercharma/learnhub-api/internal/infrastructure/http/handlers"
)

// Dependencies holds everything NewRouter wires into handlers.
type Dependencies struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Storage ports.ObjectStorage
	Mailer  ports.Mailer
	Hasher  ports.PasswordHasher
	Logger  zerolog.Logger

	JWTSecret   string
	TokenTTL    time.Duration
	CodeTTL     time.Duration
	BodyLimit   string
	CORSOrigins []string

	// HTTPMetrics installs the echoprometheus middleware. It registers
	// collectors globally, so enable it once per process.
	HTTPMetrics bool
}

// swaggerAssets are the files served by the documentation UI.
var swaggerAssets = []string{
	"",
	"index.html",
	"index.css",
	"doc.json",
	"swagger-ui.css",
	"swagger-ui-bundle.js",
	"swagger-ui-standalone-preset.js",
	"swagger-initializer.js",
	"favicon-16x16.png",
	"favicon-32x32.png",
}

// PublicRoutes returns the method/path pairs that bypass token verification.
func PublicRoutes() []middleware.ExemptionRule {
	get := []string{echo.GET}
	post := []string{echo.POST}

	rules := []middleware.ExemptionRule{
		{Path: "/api/user/register", Methods: post},
		{Path: "/api/user/login", Methods: post},
		{Path: "/api/user/admin-login", Methods: post},
		{Path: "/api/user/verify-email", Methods: post},
	}
	for _, p := range infrahttp.SystemRoutes {
		rules = append(rules, middleware.ExemptionRule{Path: p, Methods: get})
	}
	for _, f := range swaggerAssets {
		rules = append(rules, middleware.ExemptionRule{Path: infrahttp.SwaggerPrefix + f, Methods: get})
	}
	return rules
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	exemptions := middleware.NewExemptionFilter(PublicRoutes()...)

	// --- Global middleware ---
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.Fallible(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	if deps.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(deps.BodyLimit))
	}
	if deps.HTTPMetrics {
		e.Use(echoprometheus.NewMiddleware("learnhub"))
	}
	e.Use(middleware.Authenticate(middleware.AuthConfig{
		Secret:  deps.JWTSecret,
		Skipper: exemptions.Skipper(),
	}))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(deps.DB)
	topicRepo := postgres.NewTopicRepository(deps.DB)
	articleRepo := postgres.NewArticleRepository(deps.DB)
	quizRepo := postgres.NewQuizRepository(deps.DB)
	questionRepo := postgres.NewQuestionRepository(deps.DB)
	engagementRepo := postgres.NewEngagementRepository(deps.DB)
	categoryRepo := postgres.NewCategoryRepository(deps.DB)
	courseRepo := postgres.NewCourseRepository(deps.DB)

	// --- Services and handlers ---
	userHandler := handler.NewUserHandler(service.NewUserService(service.UserDeps{
		Repo:      userRepo,
		Hasher:    deps.Hasher,
		Codes:     redisstore.NewCodeStore(deps.Redis, deps.CodeTTL),
		Mailer:    deps.Mailer,
		JWTSecret: deps.JWTSecret,
		TokenTTL:  deps.TokenTTL,
		Logger:    deps.Logger,
	}))
	topicHandler := handler.NewTopicHandler(service.NewTopicService(topicRepo, deps.Storage, deps.Logger))
	articleHandler := handler.NewArticleHandler(service.NewArticleService(articleRepo, topicRepo, deps.Storage, deps.Logger))
	quizHandler := handler.NewQuizHandler(service.NewQuizService(quizRepo, topicRepo, deps.Logger))
	questionHandler := handler.NewQuestionHandler(service.NewQuestionService(questionRepo, deps.Logger))
	engagementHandler := handler.NewEngagementHandler(service.NewEngagementService(engagementRepo, articleRepo, deps.Logger))
	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, deps.Logger))
	courseHandler := handler.NewCourseHandler(service.NewCourseService(courseRepo, categoryRepo, deps.Storage, deps.Logger))

	admin := middleware.RequireRole(userRepo, domain.RoleAdmin)

	// --- System routes ---
	infrahttp.RegisterSystemRoutes(e,
		func(ctx context.Context) error { return postgres.Ping(ctx, deps.DB, 0) },
		map[string]handlers.Checker{
			"redis": func(ctx context.Context) error { return redisstore.Ping(ctx, deps.Redis, 0) },
		},
	)

	// --- Users ---
	users := e.Group("/api/user")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/admin-login", userHandler.AdminLogin)
	users.POST("/verify-email", userHandler.VerifyEmail)
	users.PUT("/update-password", userHandler.UpdatePassword)
	users.GET("/get-all-user", userHandler.List, admin)
	users.GET("/get-user/:id", userHandler.Get, admin)
	users.DELETE("/delete/:id", userHandler.Delete, admin)

	// --- Questions ---
	questions := e.Group("/api/question")
	questions.POST("/create", questionHandler.Create, admin)
	questions.GET("/get-all", questionHandler.List)
	questions.PUT("/update-question/:id", questionHandler.Update, admin)
	questions.DELETE("/delete-question/:id", questionHandler.Delete, admin)
	questions.POST("/verify-answer/:id", questionHandler.VerifyAnswer)

	// --- Topics ---
	topics := e.Group("/api/topic")
	topics.POST("/create", topicHandler.Create, admin)
	topics.GET("/get-all-topic", topicHandler.List)
	topics.PUT("/update/:id", topicHandler.Update, admin)
	topics.DELETE("/delete/:id", topicHandler.Delete, admin)

	// --- Articles ---
	articles := e.Group("/api/article")
	articles.POST("/create", articleHandler.Create, admin)
	articles.GET("/get-all-article/:topicId", articleHandler.ListByTopic)
	articles.GET("/get-article/:articleId", articleHandler.Get)
	articles.PATCH("/update/:articleId", articleHandler.Update, admin)
	articles.DELETE("/delete/:articleId", articleHandler.Delete, admin)

	// --- Quizzes ---
	quizzes := e.Group("/api/quiz")
	quizzes.POST("/create", quizHandler.Create, admin)
	quizzes.GET("/get-quiz/:topicId", quizHandler.ListByTopic)
	quizzes.PUT("/update/:quizId", quizHandler.Update, admin)
	quizzes.DELETE("/delete/:quizId", quizHandler.Delete, admin)

	// --- Course catalogue ---
	categories := e.Group("/api/category")
	categories.POST("/create", categoryHandler.Create, admin)
	categories.GET("/get-all-category", categoryHandler.List)
	categories.PUT("/update/:categoryId", categoryHandler.Update, admin)
	categories.DELETE("/delete/:categoryId", categoryHandler.Delete, admin)

	courses := e.Group("/api/course")
	courses.GET("/get-all-Course", courseHandler.List)
	courses.POST("/create", courseHandler.Create, admin)
	courses.PUT("/update/:courseId", courseHandler.Update, admin)
	courses.DELETE("/delete/:courseId", courseHandler.Delete, admin)
	courses.GET("/:courseId", courseHandler.Get, admin)

	sections := e.Group("/api/section")
	sections.POST("/create", courseHandler.CreateSection, admin)
	sections.PUT("/update/:sectionId", courseHandler.UpdateSection, admin)
	sections.DELETE("/delete/:sectionId", courseHandler.DeleteSection, admin)

	subsections := e.Group("/api/subsection")
	subsections.POST("/create", courseHandler.CreateSubSection, admin)
	subsections.PUT("/update/:subSectionId", courseHandler.UpdateSubSection, admin)
	subsections.DELETE("/delete/:subSectionId", courseHandler.DeleteSubSection, admin)

	// --- Likes and comments ---
	engagement := e.Group("/api")
	engagement.POST("/like-dislike/:articleId", engagementHandler.ToggleLike)
	engagement.POST("/create-comment", engagementHandler.CreateComment)
	engagement.GET("/get-all/:userId", engagementHandler.ListUserComments, admin)
	engagement.PUT("/update-comment/:commentId", engagementHandler.UpdateComment)
	engagement.DELETE("/delete-comment/:commentId", engagementHandler.DeleteComment)

	return e
}
