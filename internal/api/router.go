package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/api/handler"
	"github.com/ievolvetecnologia/maturidadeqa/internal/api/middleware"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
	"github.com/ievolvetecnologia/maturidadeqa/internal/infrastructure/store"
)

// Dependencies carries everything the router needs, fully constructed.
type Dependencies struct {
	AuthService         ports.AuthService
	UserService         ports.UserService
	CatalogService      ports.CatalogService
	AssessmentService   ports.AssessmentService
	ActionPlanService   ports.ActionPlanService
	ComparisonService   ports.ComparisonService
	NotificationService ports.NotificationService

	Sessions  ports.SessionStore
	Store     store.Store
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sqm"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	catalogHandler := handler.NewCatalogHandler(deps.CatalogService)
	assessmentHandler := handler.NewAssessmentHandler(deps.AssessmentService)
	planHandler := handler.NewActionPlanHandler(deps.ActionPlanService)
	comparisonHandler := handler.NewComparisonHandler(deps.ComparisonService)
	contactHandler := handler.NewContactHandler(deps.NotificationService)

	auth := middleware.Auth(deps.JWTSecret, deps.Sessions)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.POST("/api/contact", contactHandler.SendDemoRequest)
	e.POST("/api/send-email", contactHandler.SendDemoRequest)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	apiGroup := e.Group("/api", auth)

	apiGroup.GET("/catalog", catalogHandler.Catalog)
	apiGroup.POST("/catalog/practices", catalogHandler.SavePractice)
	apiGroup.DELETE("/catalog/practices/:categoryId/:practiceId", catalogHandler.DeletePractice)

	// Static draft routes are registered before /:id so "draft" never
	// resolves as an assessment id.
	apiGroup.GET("/assessments/draft", assessmentHandler.Draft)
	apiGroup.PUT("/assessments/draft", assessmentHandler.SaveDraft)
	apiGroup.DELETE("/assessments/draft", assessmentHandler.ClearDraft)
	apiGroup.GET("/assessments/filters", assessmentHandler.Filters)
	apiGroup.POST("/assessments", assessmentHandler.Submit)
	apiGroup.GET("/assessments", assessmentHandler.List)
	apiGroup.GET("/assessments/:id", assessmentHandler.Get)
	apiGroup.DELETE("/assessments/:id", assessmentHandler.Delete)
	apiGroup.GET("/assessments/:id/summary", assessmentHandler.Summary)

	apiGroup.GET("/comparison", comparisonHandler.Compare)

	apiGroup.POST("/action-plans", planHandler.Create)
	apiGroup.GET("/action-plans", planHandler.List)
	apiGroup.PUT("/action-plans/:id", planHandler.Update)
	apiGroup.DELETE("/action-plans/:id", planHandler.Delete)

	// --- Admin routes (RBAC) ---
	adminGroup := apiGroup.Group("/admin", middleware.RBAC(domain.RoleAdmin))

	adminGroup.GET("/users", userHandler.List)
	adminGroup.POST("/users", userHandler.Create)
	adminGroup.GET("/users/:id", userHandler.Get)
	adminGroup.PUT("/users/:id", userHandler.Update)
	adminGroup.DELETE("/users/:id", userHandler.Delete)
	adminGroup.GET("/stats", userHandler.Stats)

	return e
}
