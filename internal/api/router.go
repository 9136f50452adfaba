package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/karibu/auth-api/internal/api/handler"
	"github.com/karibu/auth-api/internal/api/middleware"
	"github.com/karibu/auth-api/internal/core/hash"
	"github.com/karibu/auth-api/internal/core/service"
	"github.com/karibu/auth-api/internal/core/token"
	mongodb "github.com/karibu/auth-api/internal/infrastructure/db/mongo"
	redisdb "github.com/karibu/auth-api/internal/infrastructure/db/redis"
	"github.com/karibu/auth-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, secretKey string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	tokens := token.NewService(secretKey)
	authService := service.NewAuthService(users, hash.NewBcryptHasher(0), tokens)
	throttle := redisdb.NewLoginThrottle(rdb)

	authHandler := handler.NewAuthHandler(authService, throttle, log)
	profileHandler := handler.NewProfileHandler()

	// --- Routes ---
	e.GET("/", authHandler.Index)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/profile", profileHandler.Show, middleware.Auth(authService))

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
