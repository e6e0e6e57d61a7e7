package handlers

import (
	"net/http"

	"popcornhour/config"
	"popcornhour/helper"
	"popcornhour/metrics"
	"popcornhour/middleware"
	"popcornhour/models"
	"popcornhour/repositories"
	"popcornhour/services"
	"popcornhour/session"
	"popcornhour/views"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	metrics.Register()

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	repos := repositories.NewRepositories(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize services
	authService := services.NewAuthService(repos.Users, cfg.ModeratorEmailDomain)
	catalogService := services.NewCatalogService(repos.Movies, repos.Ratings, repos.Comments)
	adminService := services.NewAdminService(repos.Users, uow)
	tokens := services.NewTokenManager(cfg.SecretKey, cfg.JWTExpiration)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := NewAuthHandler(authService, httpHelper)
	movieHandler := NewMovieHandler(catalogService, httpHelper)
	adminHandler := NewAdminHandler(adminService, catalogService, httpHelper)
	apiHandler := NewAPIHandler(authService, catalogService, tokens, httpHelper)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "up"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Browser routes
	web := router.Group("/")
	web.Use(
		sessions.Sessions(session.Name, session.NewStore(cfg.SecretKey, cfg.SecureCookies)),
		middleware.LoadIdentity(),
	)
	{
		web.GET("", movieHandler.Index)
		web.GET("/movie/:id", movieHandler.Show)

		web.GET("/login", authHandler.LoginPage)
		web.POST("/login", middleware.RateLimit(cfg.LoginRatePerMinute, cfg.LoginBurst, authHandler.LoginRateLimited), authHandler.Login)
		web.GET("/signup", authHandler.SignupPage)
		web.POST("/signup", authHandler.Signup)
		web.GET("/logout", authHandler.Logout)

		member := web.Group("/")
		member.Use(middleware.RequireLogin())
		{
			member.GET("/dashboard", movieHandler.Dashboard)
			member.POST("/rate/:id", movieHandler.Rate)
			member.POST("/comment/:id", movieHandler.Comment)
		}

		moderator := web.Group("/")
		moderator.Use(middleware.RequireModerator())
		{
			moderator.GET("/add_movie", movieHandler.AddMoviePage)
			moderator.POST("/add_movie", movieHandler.AddMovie)

			admin := moderator.Group("/admin")
			{
				admin.GET("", adminHandler.Index)
				admin.POST("/promote/:id", adminHandler.Promote)
				admin.POST("/demote/:id", adminHandler.Demote)
				admin.POST("/delete_user/:id", adminHandler.DeleteUser)
				admin.GET("/edit_movie/:id", movieHandler.EditMoviePage)
				admin.POST("/edit_movie/:id", movieHandler.EditMovie)
				admin.POST("/delete_movie/:id", movieHandler.DeleteMovie)
			}
		}
	}

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", apiHandler.Register)
			auth.POST("/login", middleware.RateLimit(cfg.LoginRatePerMinute, cfg.LoginBurst, middleware.JSONTooManyRequests), apiHandler.Login)
		}

		v1.GET("/movies", apiHandler.GetMovies)
		v1.GET("/movies/:id", apiHandler.GetMovie)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.BearerAuth(tokens))
		{
			protected.GET("/profile", apiHandler.GetProfile)
			protected.POST("/movies", middleware.RequireRole(models.RoleModerator), apiHandler.CreateMovie)
			protected.POST("/movies/:id/ratings", apiHandler.RateMovie)
			protected.POST("/movies/:id/comments", apiHandler.CommentMovie)
		}
	}

	return router, nil
}
