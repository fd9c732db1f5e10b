package questions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickq-backend/internal/shared/apperr"
	"quickq-backend/internal/shared/server/respond"
	"quickq-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the questions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/questions", h.generate)
}

type generateRequest struct {
	Job *JobProfile `json:"job"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if req.Job == nil {
		respond.Error(c, http.StatusBadRequest, "Job object is required in request body")
		return
	}

	result, err := h.Svc.GenerateInterviewQuestions(c.Request.Context(), *req.Job)
	if err != nil {
		respond.Error(c, apperr.StatusOf(err), err.Error())
		return
	}

	telemetry.Info("questions.generated", map[string]any{
		"job_title": result.JobTitle,
		"total":     result.Total,
	})
	respond.OK(c, gin.H{
		"success":     true,
		"questions":   result.Questions,
		"total":       result.Total,
		"job_title":   result.JobTitle,
		"tech_skills": result.TechSkills,
	})
}
