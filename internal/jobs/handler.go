package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickq-backend/internal/shared/server/respond"
	"quickq-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the jobs service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/jobs", h.search)
}

type searchRequest struct {
	Query      string   `json:"query"`
	TechSkills []string `json:"tech_skills"`
	JobLevel   string   `json:"job_level"`
	Limit      int      `json:"limit"`
}

func (h *Handler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if req.Query == "" {
		respond.Error(c, http.StatusBadRequest, "Query is required in request body")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	result, err := h.Svc.Search(c.Request.Context(), req.Query, req.TechSkills, req.JobLevel, limit)
	if err != nil {
		// The jobs path reports store failures in the payload rather than a
		// typed service error.
		respond.JSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"query":   req.Query,
		})
		return
	}

	telemetry.Info("jobs.search_complete", map[string]any{
		"query": result.Query,
		"total": result.Total,
	})
	respond.OK(c, gin.H{
		"success":      true,
		"query":        result.Query,
		"jobs":         result.Jobs,
		"total":        result.Total,
		"ai_generated": result.AIGenerated,
	})
}
