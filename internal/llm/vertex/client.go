package vertex

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"quickq-backend/internal/llm"
	"quickq-backend/internal/shared/metrics"
	"quickq-backend/internal/shared/telemetry"
)

// Client implements llm.Generator on the Vertex AI Gemini API.
type Client struct {
	projectID    string
	region       string
	defaultModel string

	mu     sync.Mutex
	client *genai.Client
}

// NewClient constructs a Client. The underlying API client is created lazily
// on first use so the process can start while Vertex AI is unreachable.
func NewClient(projectID, region, defaultModel string) *Client {
	return &Client{
		projectID:    projectID,
		region:       region,
		defaultModel: defaultModel,
	}
}

// init creates the genai client once; repeated calls after a failure retry.
func (c *Client) init(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.projectID == "" {
		return nil, fmt.Errorf("%w: GOOGLE_CLOUD_PROJECT_ID not set", llm.ErrUnavailable)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  c.projectID,
		Location: c.region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}

	telemetry.Info("vertex.initialized", map[string]any{
		"project_id": c.projectID,
		"region":     c.region,
	})
	c.client = client
	return client, nil
}

// Healthy reports whether the model client can be initialized.
func (c *Client) Healthy(ctx context.Context) error {
	_, err := c.init(ctx)
	return err
}

// Generate sends one prompt to the given model (or the configured default)
// and returns the trimmed response text.
func (c *Client) Generate(ctx context.Context, prompt, model string) (string, error) {
	client, err := c.init(ctx)
	if err != nil {
		return "", err
	}
	if model == "" {
		model = c.defaultModel
	}

	metrics.IncGenerateCall()
	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	metrics.ObserveGenerateDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncGenerateFailed()
		telemetry.Error("vertex.generate_failed", map[string]any{
			"model": model,
			"err":   err.Error(),
		})
		return "", fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		metrics.IncGenerateFailed()
		return "", llm.ErrEmpty
	}
	return text, nil
}
