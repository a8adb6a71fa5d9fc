package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/authgate/authentication-gateway/docs"
	"github.com/authgate/authentication-gateway/internal/api/handler"
	"github.com/authgate/authentication-gateway/internal/api/middleware"
	"github.com/authgate/authentication-gateway/internal/core/domain"
	"github.com/authgate/authentication-gateway/internal/core/ports"
)

// Dependencies carries everything the router needs; all construction
// happens in main.
type Dependencies struct {
	AuthService ports.AuthService
	Store       ports.CredentialStore
	Mongo       *mongo.Database
	Redis       *redis.Client
	JWTSecret   string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("authgate"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	accountHandler := handler.NewAccountHandler(deps.Store)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/user/register", authHandler.Register)
	e.POST("/user/login", authHandler.Login)
	e.POST("/user/social-login", authHandler.SocialLogin)
	e.GET("/user/me", authHandler.Me, authMiddleware)
	e.GET("/user/accounts/:email", accountHandler.ByEmail, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
