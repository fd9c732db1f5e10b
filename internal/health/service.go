package health

import (
	"context"

	"quickq-backend/internal/shared/telemetry"
)

// Pinger probes the document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModelChecker probes the generative model client.
type ModelChecker interface {
	Healthy(ctx context.Context) error
}

// Service probes downstream dependencies and reports configuration.
type Service struct {
	Store Pinger
	Model ModelChecker

	ProjectID       string
	Region          string
	DatabaseName    string
	DefaultModel    string
	MongoConfigured bool
}

// Status is the /health payload.
type Status struct {
	Status    string `json:"status"`
	VertexAI  string `json:"vertex_ai"`
	MongoDB   string `json:"mongodb"`
	ProjectID string `json:"project_id"`
	Region    string `json:"region"`
}

// Healthy is true only when both downstream probes succeed.
func (st Status) Healthy() bool {
	return st.Status == "healthy"
}

// Check probes the store and the model client. It never fails itself; probe
// failures show up in the returned status.
func (s *Service) Check(ctx context.Context) Status {
	mongoStatus := "connected"
	if err := s.Store.Ping(ctx); err != nil {
		telemetry.Error("health.mongodb_failed", map[string]any{"err": err.Error()})
		mongoStatus = "failed"
	}

	vertexStatus := "connected"
	if err := s.Model.Healthy(ctx); err != nil {
		telemetry.Error("health.vertex_failed", map[string]any{"err": err.Error()})
		vertexStatus = "failed"
	}

	overall := "healthy"
	if mongoStatus != "connected" || vertexStatus != "connected" {
		overall = "unhealthy"
	}

	return Status{
		Status:    overall,
		VertexAI:  vertexStatus,
		MongoDB:   mongoStatus,
		ProjectID: s.ProjectID,
		Region:    s.Region,
	}
}
