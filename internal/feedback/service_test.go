package feedback_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"quickq-backend/internal/feedback"
	"quickq-backend/internal/llm"
	"quickq-backend/internal/shared/apperr"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, model string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

var testJob = feedback.JobProfile{
	Title:       "Senior Python Developer",
	Description: "Build backend services.",
	Skills:      []any{"Python", "Django"},
}

func TestGenerateSinglePairUsesSingleAnswerPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "  Strong answer overall.  "}
	svc := &feedback.Service{Gen: gen}

	pairs := []feedback.QAPair{{Question: "What is GIL?", Answer: "A mutex."}}
	result, err := svc.Generate(context.Background(), testJob, pairs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := gen.lastPrompt()
	if !strings.Contains(prompt, "review the following interview answer in depth") {
		t.Fatalf("expected single-answer prompt, got %q", prompt)
	}
	if strings.Contains(prompt, "hiring recommendation") {
		t.Fatalf("single-answer prompt must not ask for a hiring recommendation")
	}
	if result.Feedback != "Strong answer overall." {
		t.Fatalf("expected trimmed raw output, got %q", result.Feedback)
	}
	if result.JobTitle != "Senior Python Developer" {
		t.Fatalf("unexpected job title: %q", result.JobTitle)
	}
}

func TestGenerateMultiplePairsUsesNarrativePrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "Overall a solid interview."}
	svc := &feedback.Service{Gen: gen}

	pairs := make([]feedback.QAPair, 5)
	for i := range pairs {
		pairs[i] = feedback.QAPair{Question: "Q", Answer: "A"}
	}
	result, err := svc.Generate(context.Background(), testJob, pairs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := gen.lastPrompt()
	if !strings.Contains(prompt, "Responses to 5 Interview Questions") {
		t.Fatalf("expected multi-answer prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "hiring recommendation") {
		t.Fatalf("multi-answer prompt must request a hiring recommendation")
	}
	if result.Feedback != "Overall a solid interview." {
		t.Fatalf("expected raw output, got %q", result.Feedback)
	}
}

func TestGenerateValidation(t *testing.T) {
	svc := &feedback.Service{Gen: &fakeGenerator{}}

	_, err := svc.Generate(context.Background(), feedback.JobProfile{}, []feedback.QAPair{{Question: "Q", Answer: "A"}})
	var svcErr *apperr.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty job, got %v", err)
	}

	_, err = svc.Generate(context.Background(), testJob, nil)
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing pairs, got %v", err)
	}
}

func TestGenerateGeneratorFailureIs502(t *testing.T) {
	svc := &feedback.Service{Gen: &fakeGenerator{err: llm.ErrEmpty}}

	_, err := svc.Generate(context.Background(), testJob, []feedback.QAPair{{Question: "Q", Answer: "A"}})
	var svcErr *apperr.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 service error, got %v", err)
	}
}
