package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickq-backend/internal/shared/apperr"
	"quickq-backend/internal/shared/server/respond"
	"quickq-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the feedback service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/feedback", h.generate)
}

type feedbackRequest struct {
	Job       *JobProfile `json:"job"`
	Questions []QAPair    `json:"questions"`
}

func (h *Handler) generate(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if req.Job == nil || len(req.Questions) == 0 {
		respond.Error(c, http.StatusBadRequest, "`job` and `questions` are required in request body")
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), *req.Job, req.Questions)
	if err != nil {
		respond.Error(c, apperr.StatusOf(err), err.Error())
		return
	}

	telemetry.Info("feedback.generated", map[string]any{"job_title": result.JobTitle})
	respond.OK(c, gin.H{
		"success":   true,
		"feedback":  result.Feedback,
		"job_title": result.JobTitle,
	})
}
