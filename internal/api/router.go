package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/uqcareers/jobboard-api/docs"
	"github.com/uqcareers/jobboard-api/internal/api/handler"
	"github.com/uqcareers/jobboard-api/internal/api/middleware"
	"github.com/uqcareers/jobboard-api/internal/core/domain"
	"github.com/uqcareers/jobboard-api/internal/core/ports"
	"github.com/uqcareers/jobboard-api/internal/core/service"
	"github.com/uqcareers/jobboard-api/internal/infrastructure/config"
	mongodb "github.com/uqcareers/jobboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/uqcareers/jobboard-api/internal/infrastructure/db/redis"
)

// NewRouter wires repositories, services and handlers and returns the Echo
// instance with all routes registered. hasher is injected so main can own
// the hashing worker pool's lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, hasher ports.PasswordHasher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)

	var jobCache service.JobCache
	if rdb != nil {
		jobCache = redisdb.NewJobCache(rdb)
	}

	tokens := service.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	resolver := service.NewResolver(tokens, userRepo)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	jobService := service.NewJobService(jobRepo, jobCache, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	userHandler := handler.NewUserHandler(userService)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := e.Group("/api", middleware.Auth(resolver))
	authed.GET("/jobs", jobHandler.List)
	authed.GET("/jobs/search", jobHandler.Search)

	admin := authed.Group("/users")
	admin.GET("", userHandler.List, middleware.Require(domain.OpListUsers))
	admin.PUT("/:id/role", userHandler.UpdateRole, middleware.Require(domain.OpUpdateUserRole))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
