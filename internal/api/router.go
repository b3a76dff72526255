package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iapourpme/content-api/internal/api/handler"
	"github.com/iapourpme/content-api/internal/api/middleware"
	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/service"
	"github.com/iapourpme/content-api/internal/infrastructure/config"
	mongostore "github.com/iapourpme/content-api/internal/infrastructure/db/mongo"
	redisstore "github.com/iapourpme/content-api/internal/infrastructure/db/redis"
	httphandlers "github.com/iapourpme/content-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The view dispatcher is constructed and started by main, which owns its
// lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher handler.ViewDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("content"))

	// --- Repositories ---
	articleRepo := mongostore.NewArticleRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	affiliateRepo := mongostore.NewAffiliateRepository(db)
	settingsRepo := mongostore.NewSettingsRepository(db)
	userRepo := mongostore.NewUserRepository(db)
	subscriberRepo := mongostore.NewSubscriberRepository(db)
	statsRepo := mongostore.NewStatsRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb)
	newsletterDedup := redisstore.NewNewsletterDedup(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.SessionTTL, log)
	sessionService := service.NewSessionService(sessionStore, cfg.JWTSecret)
	contentService := service.NewContentService(articleRepo, categoryRepo, log)
	affiliateService := service.NewAffiliateService(affiliateRepo, log)
	dashboardService := service.NewDashboardService(settingsRepo, articleRepo, categoryRepo, affiliateRepo, subscriberRepo, statsRepo, log)
	newsletterService := service.NewNewsletterService(subscriberRepo, newsletterDedup, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessionService, cfg.SessionTTL)
	affiliateHandler := handler.NewAffiliateHandler(affiliateService, log)
	categoryHandler := handler.NewCategoryHandler(contentService)
	articleHandler := handler.NewArticleHandler(contentService, dispatcher)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, log)
	calculatorHandler := handler.NewCalculatorHandler()

	requireSession := middleware.RequireSession(sessionService)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, requireSession)

	// --- Public content routes ---
	e.GET("/api/affiliates", affiliateHandler.List)
	e.GET("/api/categories", categoryHandler.List)
	e.GET("/api/articles", articleHandler.List)
	e.GET("/api/articles/:slug", articleHandler.Get)
	e.POST("/api/newsletter", newsletterHandler.Subscribe)
	e.POST("/api/calculators/roi", calculatorHandler.ROI)

	// --- Admin dashboard routes ---
	dashboard := e.Group("/api/dashboard", requireSession, requireAdmin)
	dashboard.GET("/settings", dashboardHandler.GetSettings)
	dashboard.PUT("/settings", dashboardHandler.UpdateSettings)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
