package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/wanderhub/travel-listings/docs"
	"github.com/wanderhub/travel-listings/internal/api/handler"
	"github.com/wanderhub/travel-listings/internal/api/middleware"
	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/service"
	"github.com/wanderhub/travel-listings/internal/infrastructure/config"
	mongorepo "github.com/wanderhub/travel-listings/internal/infrastructure/db/mongo"
	redisinfra "github.com/wanderhub/travel-listings/internal/infrastructure/db/redis"
	"github.com/wanderhub/travel-listings/internal/infrastructure/storage"
	"github.com/wanderhub/travel-listings/internal/session"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("travel"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	listingRepo := mongorepo.NewListingRepository(db)
	bookingRepo := mongorepo.NewBookingRepository(db)
	ratingRepo := mongorepo.NewRatingRepository(db)

	// --- Session plumbing ---
	roleCache := redisinfra.NewRoleCache(rdb, cfg.RoleCacheTTL)
	revoker := redisinfra.NewRevocationList(rdb)
	resolver := session.NewResolver(roleCache, userRepo, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL, log)
	listingService := service.NewListingService(listingRepo, ratingRepo, log)
	bookingService := service.NewBookingService(bookingRepo, listingRepo, log)
	ratingService := service.NewRatingService(ratingRepo, listingRepo, log)
	userService := service.NewUserService(userRepo, log)
	analyticsService := service.NewAnalyticsService(userRepo, bookingRepo, ratingRepo, log)

	imageStorage, err := storage.NewGridFSStorage(db)
	if err != nil {
		return nil, err
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler()
	listingHandler := handler.NewListingHandler(listingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	userHandler := handler.NewUserHandler(userService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	imageHandler := handler.NewImageHandler(imageStorage)

	auth := middleware.Auth(cfg.JWTSecret, revoker)
	authOptional := middleware.AuthOptional(cfg.JWTSecret, revoker)
	withSession := middleware.Session(resolver)

	v1 := e.Group("/v1")

	// --- Public routes (session-aware when a token is presented) ---
	public := v1.Group("", authOptional, withSession)
	public.GET("/listings", listingHandler.List)
	public.GET("/listings/:id", listingHandler.Get)
	public.GET("/listings/:id/ratings", ratingHandler.ListForListing)
	public.GET("/images/:id", imageHandler.Get)

	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := v1.Group("", auth, withSession)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/session", sessionHandler.Current)

	member := authed.Group("", middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	member.POST("/bookings", bookingHandler.Create)
	member.GET("/bookings", bookingHandler.ListMine)
	member.POST("/listings/:id/ratings", ratingHandler.Create)

	// --- Admin routes ---
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	catalog := authed.Group("", adminOnly)
	catalog.POST("/listings", listingHandler.Create)
	catalog.PUT("/listings/:id", listingHandler.Update)
	catalog.DELETE("/listings/:id", listingHandler.Delete)

	admin := authed.Group("/admin", adminOnly)
	admin.GET("/users", userHandler.List)
	admin.PUT("/users/:id", userHandler.UpdateName)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.GET("/ratings", ratingHandler.ListAll)
	admin.GET("/analytics", analyticsHandler.Overview)
	admin.POST("/images", imageHandler.Upload)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
