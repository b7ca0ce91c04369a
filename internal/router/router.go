// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "tours-api/swagger" // Import generated swagger docs

	"tours-api/internal/authz"
	apperrors "tours-api/internal/errors"
	"tours-api/internal/handler"
	"tours-api/internal/middleware"
	"tours-api/internal/models"
	"tours-api/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	TourHandler *handler.TourHandler
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	AuthService service.AuthServicer
	Authorizer  authz.Authorizer
	DebugMode   bool
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware; the error funnel wraps everything
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler(cfg.DebugMode))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protect := middleware.Protect(cfg.AuthService)

	// Tour routes
	tours := r.Group("/tours")
	{
		tours.GET("/top-cheapest-tours", cfg.TourHandler.TopCheapestTours)
		tours.GET("/tour-stats", cfg.TourHandler.TourStats)
		tours.GET("/monthly-plan/:year", cfg.TourHandler.MonthlyPlan)

		tours.GET("", protect, cfg.TourHandler.ListTours)
		tours.POST("", cfg.TourHandler.CreateTour)

		tours.GET("/:id", cfg.TourHandler.GetTour)
		tours.PATCH("/:id", cfg.TourHandler.UpdateTour)
		tours.DELETE("/:id", protect,
			middleware.RestrictTo(cfg.Authorizer, models.RoleAdmin, models.RoleLeadGuide),
			cfg.TourHandler.DeleteTour)

		tours.GET("/:id/cover-url", protect, cfg.TourHandler.CoverDownloadURL)
		tours.POST("/:id/cover-upload-url", protect, cfg.TourHandler.CoverUploadURL)
	}

	// User routes
	users := r.Group("/users")
	{
		users.GET("", cfg.UserHandler.GetAllUsers)
		users.POST("/signup", cfg.AuthHandler.Signup)
		users.POST("/login", cfg.AuthHandler.Login)
		users.POST("/forgot", cfg.AuthHandler.ForgotPassword)
		users.PATCH("/reset-password/:resetToken", cfg.AuthHandler.ResetPassword)
	}

	// Unmatched routes go through the error funnel
	r.NoRoute(func(c *gin.Context) {
		middleware.Abort(c, apperrors.NotFound("invalid URL "+c.Request.URL.Path))
	})

	return r
}
