package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fintrack/finance-system/internal/api/handler"
	"github.com/fintrack/finance-system/internal/api/middleware"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/service"
	"github.com/fintrack/finance-system/internal/infrastructure/config"
	mongodb "github.com/fintrack/finance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/fintrack/finance-system/internal/infrastructure/db/redis"
	"github.com/fintrack/finance-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("finance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	expenseRepo := mongodb.NewExpenseRepository(db)
	placeRepo := mongodb.NewPlaceRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	authService := service.NewAuthService(userRepo, roleRepo, tokens, throttle, log)
	categoryService := service.NewCategoryService(categoryRepo, userRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, userRepo, log)
	placeService := service.NewPlaceService(placeRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	placeHandler := handler.NewPlaceHandler(placeService)

	// The bearer filter runs once on every request. It only establishes
	// identity; RequireAuth/RequireRoles below make the actual rejections.
	e.Use(middleware.Authenticate(tokens, userRepo, log))

	// --- Auth routes (anonymous-accessible) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Resource routes ---
	requireUser := []echo.MiddlewareFunc{
		middleware.RequireAuth(),
		middleware.RequireRoles(domain.RoleUser),
	}

	categories := e.Group("/categories", requireUser...)
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)

	expenses := e.Group("/expenses", requireUser...)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.GET("/credit-card-summary", expenseHandler.CreditCardSummary)
	expenses.POST("/credit-card-limit", expenseHandler.SetCreditCardLimit)

	places := e.Group("/places", requireUser...)
	places.GET("", placeHandler.List)
	places.POST("", placeHandler.Create)
	places.DELETE("/:id", placeHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
