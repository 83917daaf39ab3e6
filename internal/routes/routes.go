package routes

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"signalbench/internal/handlers"
	"signalbench/internal/middleware"
)

// SetupRouter initializes and returns the Gin router with all routes configured
func SetupRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	// Add health check endpoint
	r.Any("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// Configure CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Allowed origins come from the environment as a comma-separated list
		var allowedOrigins []string
		for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}

		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 50,
		Burst:             100,
	}))

	// Users and credentials
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.GET("/users/:id/secret", h.GetUserSecret)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/users/:id/grants", h.ListAccessGrants)
	r.POST("/oauth/authorizations", h.CreateAuthorization)
	r.POST("/oauth/grants", h.CreateAccessGrant)

	// Reference data
	r.POST("/trade-sites", h.CreateTradeSite)
	r.GET("/trade-sites", h.ListTradeSites)
	r.POST("/symbol-pairs", h.CreateSymbolPair)
	r.GET("/symbol-pairs", h.ListSymbolPairs)
	r.POST("/trade-recommendations", h.CreateTradeRecommendation)
	r.GET("/trade-recommendations", h.ListTradeRecommendations)

	// Test configurations
	r.POST("/test-configs", h.CreateBaseTestConfig)
	r.GET("/test-configs", h.ListBaseTestConfigs)
	r.GET("/test-configs/:id", h.GetBaseTestConfig)
	r.DELETE("/test-configs/:id", h.DeleteBaseTestConfig)
	r.POST("/prediction-tests", h.CreatePredictionTestConfig)
	r.GET("/prediction-tests", h.ListPredictionTestConfigs)
	r.GET("/prediction-tests/:id", h.GetPredictionTestConfig)
	r.POST("/classifier-tests", h.CreateClassifierTestConfig)
	r.GET("/classifier-tests", h.ListClassifierTestConfigs)

	// Tasks
	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks", h.ListTasks)
	r.GET("/tasks/:id", h.GetTask)
	r.POST("/tasks/:id/run", h.DispatchTask)
	r.GET("/tasks/:id/results", h.ListTaskResults)
	r.GET("/results/:id", h.GetTaskResult)
	r.DELETE("/tasks/:id", h.DeleteTask)

	// Workers: registration, user-initiated edits, and the self-report
	// surface (check-in, result submission)
	r.POST("/workers", h.RegisterWorker)
	r.GET("/workers", h.ListWorkers)
	r.GET("/workers/:id", h.GetWorker)
	r.PUT("/workers/:id/task", h.AssignTask)
	r.POST("/workers/:id/check-in", h.WorkerCheckIn)
	r.POST("/workers/:id/results", h.SubmitTaskResult)

	// Performance comparisons
	r.POST("/performance-comparisons", h.CreatePerformanceComparison)
	r.GET("/performance-comparisons", h.ListPerformanceComparisons)
	r.GET("/performance-comparisons/:id", h.GetPerformanceComparison)
	r.DELETE("/performance-comparisons/:id", h.DeletePerformanceComparison)

	return r
}
