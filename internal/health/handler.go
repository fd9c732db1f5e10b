package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickq-backend/internal/shared/server/respond"
)

var availableModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
}

// Handler wires HTTP handlers to the health service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches health, models, and config routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.check)
	r.GET("/models", h.models)
	r.GET("/config", h.config)
}

func (h *Handler) check(c *gin.Context) {
	status := h.Svc.Check(c.Request.Context())
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	respond.JSON(c, code, status)
}

func (h *Handler) models(c *gin.Context) {
	respond.OK(c, gin.H{
		"success":          true,
		"available_models": availableModels,
		"default_model":    h.Svc.DefaultModel,
	})
}

func (h *Handler) config(c *gin.Context) {
	respond.OK(c, gin.H{
		"project_id":         h.Svc.ProjectID,
		"region":             h.Svc.Region,
		"mongodb_configured": h.Svc.MongoConfigured,
		"database_name":      h.Svc.DatabaseName,
	})
}
