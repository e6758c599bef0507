package router

import (
	"net/http"
	"time"

	"github.com/akademika/student-admin/internal/config"
	"github.com/akademika/student-admin/internal/handler"
	"github.com/akademika/student-admin/internal/middleware"
	"github.com/akademika/student-admin/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	StudentPage *handler.StudentPageHandler
	StudentAPI  *handler.StudentAPIHandler
	Health      *handler.HealthHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	handlers *Handlers,
	writeLimiter *middleware.RateLimiter,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// HTML templates for the page surface.
	router.LoadHTMLGlob(cfg.TemplateGlob)

	// Serve static assets with aggressive caching (1 year).
	staticGroup := router.Group("/static")
	staticGroup.Use(middleware.CacheControl(365 * 24 * time.Hour))
	{
		staticGroup.Static("/", cfg.StaticDir)
	}

	// Health check.
	router.GET("/health", handlers.Health.Health)

	// ─── HTML Surface ──────────────────────────────────────────────────
	// A single action-dispatched endpoint; the root redirects into it.
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, response.ListPath)
	})
	// The delete action mutates over GET, so the page endpoint throttles
	// that branch too; plain page views stay unlimited.
	router.GET("/student",
		writeLimiter.MiddlewareWithSkipper(func(c *gin.Context) bool {
			return c.Query("action") != "delete"
		}),
		handlers.StudentPage.DispatchGet,
	)
	router.POST("/student", writeLimiter.Middleware(), handlers.StudentPage.DispatchPost)

	// ─── JSON API ──────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.GET("/students", handlers.StudentAPI.ListStudents)
		api.GET("/students/:id", handlers.StudentAPI.GetStudent)
		api.POST("/students", writeLimiter.Middleware(), handlers.StudentAPI.CreateStudent)
		api.PUT("/students/:id", writeLimiter.Middleware(), handlers.StudentAPI.UpdateStudent)
		api.DELETE("/students/:id", writeLimiter.Middleware(), handlers.StudentAPI.DeleteStudent)
	}

	return router
}
