package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tonotes/middleware"
)

type Routes struct {
	Focus    *FocusHandler
	Activity *ActivityHandler
	Override *OverrideHandler
	Health   *HealthHandler
}

type RouterOptions struct {
	JWTSecret       []byte
	MaxRequestBytes int64
	Logger          *zap.Logger
}

func NewRouter(routes Routes, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware(opts.Logger))
	router.Use(middleware.RequestLoggingMiddleware(opts.Logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(opts.MaxRequestBytes))

	// Public routes
	router.GET("/api/health", routes.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(opts.JWTSecret))
	protected.Use(middleware.NoStoreMiddleware())
	{
		focus := protected.Group("/focus")
		{
			focus.GET("/daily", routes.Focus.GetDailyFocus)
			focus.GET("/related/:id", routes.Focus.GetRelatedNotes)
			focus.GET("/resume", routes.Focus.GetResume)
			focus.GET("/priority", routes.Focus.GetSmartPriority)
			focus.GET("/views", routes.Focus.GetSmartViews)
		}

		activity := protected.Group("/activity")
		{
			activity.POST("/view/:id", routes.Activity.TrackView)
			activity.POST("/edit/:id", routes.Activity.TrackEdit)
		}

		notes := protected.Group("/notes")
		{
			notes.POST("/:id/snooze", routes.Override.Snooze)
			notes.POST("/:id/unsnooze", routes.Override.Unsnooze)
			notes.POST("/:id/dismiss", routes.Override.Dismiss)
			notes.POST("/:id/restore", routes.Override.Restore)
			notes.POST("/:id/focus-pin", routes.Override.ToggleFocusPin)
		}
	}

	return router
}
