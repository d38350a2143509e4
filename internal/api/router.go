package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openpress/blog-system/internal/api/handler"
	"github.com/openpress/blog-system/internal/api/middleware"
	"github.com/openpress/blog-system/internal/core/ports"
	"github.com/openpress/blog-system/internal/core/service"
	mongodb "github.com/openpress/blog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/openpress/blog-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *service.TokenManager, activity ports.ActivityRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	limiter := redisdb.NewLoginLimiter(rdb)
	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	postService := service.NewPostService(postRepo, userRepo, activity, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authRequired := middleware.Auth(tokens)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)

	apiGroup.GET("/posts", postHandler.List)
	apiGroup.GET("/posts/:id", postHandler.Get)

	apiGroup.POST("/posts", postHandler.Create, authRequired)
	apiGroup.PUT("/posts/:id", postHandler.Update, authRequired)
	apiGroup.DELETE("/posts/:id", postHandler.Delete, authRequired)
	apiGroup.POST("/posts/:id/toggle-like", postHandler.ToggleLike, authRequired)
	apiGroup.POST("/posts/:id/comments", postHandler.AddComment, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
