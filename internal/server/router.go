package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickq-backend/internal/feedback"
	"quickq-backend/internal/health"
	"quickq-backend/internal/jobs"
	"quickq-backend/internal/questions"
	"quickq-backend/internal/shared/config"
	"quickq-backend/internal/shared/metrics"
	"quickq-backend/internal/shared/server/middleware"
	"quickq-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	HealthHandler   *health.Handler
	JobsHandler     *jobs.Handler
	QuestionHandler *questions.Handler
	FeedbackHandler *feedback.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	deps.HealthHandler.RegisterRoutes(r)
	deps.JobsHandler.RegisterRoutes(r)
	deps.QuestionHandler.RegisterRoutes(r)
	deps.FeedbackHandler.RegisterRoutes(r)
	r.GET("/metrics", metrics.Handler())

	r.NoRoute(func(c *gin.Context) {
		respond.JSON(c, http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return r
}

// Addr builds the listen address from host and port.
func Addr(host, port string) string {
	if port == "" {
		port = "8080"
	}
	return host + ":" + port
}
