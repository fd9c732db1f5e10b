package feedback

import (
	"context"
	"net/http"
	"strings"

	"quickq-backend/internal/llm"
	"quickq-backend/internal/shared/apperr"
	"quickq-backend/internal/shared/telemetry"
)

// Service turns a job profile plus answered questions into narrative
// feedback via the generator. The model's reply is returned verbatim.
type Service struct {
	Gen llm.Generator
}

// Generate validates its inputs, picks the single- or multi-answer prompt,
// and returns the model's trimmed text as feedback.
func (s *Service) Generate(ctx context.Context, job JobProfile, pairs []QAPair) (Result, error) {
	if job.Empty() {
		return Result{}, apperr.New("Invalid job object provided.", http.StatusBadRequest)
	}
	if len(pairs) == 0 {
		return Result{}, apperr.New("Invalid questions and answers provided.", http.StatusBadRequest)
	}

	jobTitle := job.Title
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = "N/A"
	}

	text, err := s.Gen.Generate(ctx, feedbackPrompt(job, pairs), "")
	if err != nil {
		if llm.IsGenerationFailure(err) {
			telemetry.Error("feedback.generation_failed", map[string]any{"job_title": jobTitle, "err": err.Error()})
			return Result{}, apperr.New("Failed to generate feedback from AI service.", http.StatusBadGateway)
		}
		telemetry.Error("feedback.generation_error", map[string]any{"job_title": jobTitle, "err": err.Error()})
		return Result{}, apperr.New("An unexpected error occurred while generating feedback.", http.StatusInternalServerError)
	}

	return Result{
		Feedback: strings.TrimSpace(text),
		JobTitle: jobTitle,
	}, nil
}
