package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/disruptive-studio/content-platform/internal/api/handler"
	"github.com/disruptive-studio/content-platform/internal/api/middleware"
	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/service"
	mongostore "github.com/disruptive-studio/content-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/disruptive-studio/content-platform/internal/infrastructure/db/redis"
)

// Options carries the settings the router needs beyond its connections.
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	TopicCache redisstore.Config
}

// NewRouter builds the Echo instance with all dependencies constructed once
// and passed down explicitly.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("publishing"))

	// --- Repositories ---
	userRepo := mongostore.NewRepository[domain.User](db, domain.UserSchema, log)
	topicRepo := mongostore.NewRepository[domain.Topic](db, domain.TopicSchema, log)
	contentRepo := mongostore.NewRepository[domain.Content](db, domain.ContentSchema, log)

	// --- Services ---
	topicRegistry := redisstore.NewTopicCache(rdb, service.NewTopicService(topicRepo), opts.TopicCache, log)
	authService := service.NewAuthService(userRepo, topicRegistry, opts.JWTSecret, opts.TokenTTL)
	userService := service.NewUserService(userRepo)
	contentService := service.NewContentService(contentRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contentHandler := handler.NewContentHandler(contentService)
	authenticated := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users", authenticated)
	users.GET("/list", userHandler.List, middleware.Authorize(domain.OpRead))
	users.GET("/:id", userHandler.Detail, middleware.Authorize(domain.OpRead))

	// --- Content routes ---
	content := e.Group("/content", authenticated)
	content.GET("/list", contentHandler.List, middleware.Authorize(domain.OpRead))
	content.GET("/:id", contentHandler.Detail, middleware.Authorize(domain.OpRead))
	content.POST("", contentHandler.Create, middleware.Authorize(domain.OpCreate))
	content.PUT("/:id", contentHandler.Update, middleware.Authorize(domain.OpUpdate))
	content.DELETE("/:id", contentHandler.Delete, middleware.Authorize(domain.OpDelete))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
