package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawantalekar/briefly/internal/api/handler"
	"github.com/pawantalekar/briefly/internal/api/middleware"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
	"github.com/pawantalekar/briefly/internal/infrastructure/config"
)

// Services bundles the use-case implementations the router exposes.
type Services struct {
	Auth     ports.AuthService
	Tokens   ports.TokenCodec
	Blogs    ports.BlogService
	Comments ports.CommentService
	Likes    ports.LikeService
	Category ports.CategoryService
	Admin    ports.AdminService
	Market   ports.MarketService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, svcs Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("briefly"))
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg)))

	// --- Middleware stages ---
	auth := middleware.Auth(svcs.Tokens)
	optionalAuth := middleware.OptionalAuth(svcs.Tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Handlers ---
	cookies := handler.NewSessionCookies(cfg.SessionTTL, cfg.IsProduction())
	authHandler := handler.NewAuthHandler(svcs.Auth, cookies)
	blogHandler := handler.NewBlogHandler(svcs.Blogs)
	commentHandler := handler.NewCommentHandler(svcs.Comments)
	likeHandler := handler.NewLikeHandler(svcs.Likes)
	categoryHandler := handler.NewCategoryHandler(svcs.Category)
	adminHandler := handler.NewAdminHandler(svcs.Admin)
	marketHandler := handler.NewMarketHandler(svcs.Market)

	// --- Health probes and metrics (outside /api, no auth) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	apiGroup := e.Group("/api")

	// --- Auth ---
	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", authHandler.Profile, auth)
	authGroup.POST("/logout", authHandler.Logout, auth)

	// --- Blogs: specific paths before dynamic /:id ---
	blogGroup := apiGroup.Group("/blogs")
	blogGroup.GET("/search", blogHandler.Search)
	blogGroup.GET("/my/blogs", blogHandler.MyBlogs, auth)
	blogGroup.GET("", blogHandler.List)
	blogGroup.GET("/slug/:slug", blogHandler.GetBySlug, optionalAuth)
	blogGroup.GET("/:id", blogHandler.GetByID, optionalAuth)
	blogGroup.POST("", blogHandler.Create, auth)
	blogGroup.PUT("/:id", blogHandler.Update, auth)
	blogGroup.DELETE("/:id", blogHandler.Delete, auth)

	// --- Comments ---
	commentGroup := apiGroup.Group("/comments")
	commentGroup.GET("/blog/:blogId", commentHandler.ListByBlog)
	commentGroup.POST("", commentHandler.Create, auth)
	commentGroup.PUT("/:id", commentHandler.Update, auth)
	commentGroup.DELETE("/:id", commentHandler.Delete, auth)

	// --- Likes ---
	likeGroup := apiGroup.Group("/likes")
	likeGroup.GET("/stats/:blogId", likeHandler.Stats, optionalAuth)
	likeGroup.POST("/toggle", likeHandler.Toggle, auth)

	// --- Categories: mutations are admin-only ---
	categoryGroup := apiGroup.Group("/categories")
	categoryGroup.GET("", categoryHandler.List)
	categoryGroup.GET("/:id", categoryHandler.GetByID)
	categoryGroup.POST("", categoryHandler.Create, auth, adminOnly)
	categoryGroup.PUT("/:id", categoryHandler.Update, auth, adminOnly)
	categoryGroup.DELETE("/:id", categoryHandler.Delete, auth, adminOnly)

	// --- Admin panel ---
	adminGroup := apiGroup.Group("/admin", auth, adminOnly)
	adminGroup.GET("/stats", adminHandler.Stats)
	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.DELETE("/users/:userId", adminHandler.DeleteUser)
	adminGroup.PATCH("/users/:userId/role", adminHandler.UpdateUserRole)
	adminGroup.PATCH("/users/:userId/status", adminHandler.ToggleUserStatus)
	adminGroup.GET("/blogs", adminHandler.ListBlogs)
	adminGroup.DELETE("/blogs/:blogId", adminHandler.DeleteBlog)
	adminGroup.PATCH("/blogs/:blogId/publish", adminHandler.ToggleBlogPublish)

	// --- Market data (public, cache-backed) ---
	marketGroup := apiGroup.Group("/market")
	marketGroup.GET("/crypto", marketHandler.Crypto)
	marketGroup.GET("/stocks", marketHandler.Stocks)

	return e
}

// corsConfig allows the configured frontend plus local dev origins, with
// credentials enabled so the session cookie travels.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	origins := []string{"http://localhost:5173", "http://localhost:5175"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: true,
	}
}
