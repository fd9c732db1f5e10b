package questions_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"quickq-backend/internal/llm"
	"quickq-backend/internal/questions"
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

func TestSearchZeroMatchesHasMessage(t *testing.T) {
	svc := &questions.Service{Repo: questions.NewMemoryRepo(), Gen: &fakeGenerator{}}

	outcome, err := svc.Search(context.Background(), "quantum", nil, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if outcome.Total != 0 || len(outcome.Questions) != 0 {
		t.Fatalf("expected empty outcome, got %+v", outcome)
	}
	if !strings.Contains(outcome.Message, "quantum") {
		t.Fatalf("expected message echoing the query, got %q", outcome.Message)
	}
}

func TestSearchFillsDefaults(t *testing.T) {
	repo := questions.NewMemoryRepo()
	repo.Add(questions.StoredQuestion{Question: "What is a goroutine?"})
	svc := &questions.Service{Repo: repo, Gen: &fakeGenerator{}}

	outcome, err := svc.Search(context.Background(), "goroutine", nil, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if outcome.Total != 1 {
		t.Fatalf("expected one question, got %d", outcome.Total)
	}
	q := outcome.Questions[0]
	if q.Answer != "N/A" || q.Category != "N/A" || q.Difficulty != "N/A" || q.QuestionNumber != "N/A" {
		t.Fatalf("expected N/A defaults, got %+v", q)
	}
}

func TestSearchRepoFailureIsServiceError(t *testing.T) {
	repo := questions.NewMemoryRepo()
	repo.FailWith(errors.New("store unreachable"))
	svc := &questions.Service{Repo: repo, Gen: &fakeGenerator{}}

	_, err := svc.Search(context.Background(), "goroutine", nil, 10)
	if err == nil {
		t.Fatalf("expected error")
	}
	var svcErr *apperr.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 service error, got %v", err)
	}
}

func TestGenerateInterviewQuestionsHappyPath(t *testing.T) {
	repo := questions.NewMemoryRepo()
	repo.Add(questions.StoredQuestion{Question: "Explain Python decorators.", Answer: "They wrap callables."})
	gen := &fakeGenerator{reply: `["Q1","Q2","Q3","Q4","Q5"]`}
	svc := &questions.Service{Repo: repo, Gen: gen}

	job := questions.JobProfile{
		Title:  "Senior Python Developer",
		Skills: []any{"Python", "Django", "AWS"},
	}
	result, err := svc.GenerateInterviewQuestions(context.Background(), job)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("expected 5 questions, got %d", result.Total)
	}
	if !reflect.DeepEqual(result.Questions, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}) {
		t.Fatalf("unexpected questions: %v", result.Questions)
	}
	if result.JobTitle != "Senior Python Developer" {
		t.Fatalf("unexpected job title: %q", result.JobTitle)
	}
	if !reflect.DeepEqual(result.TechSkills, []string{"Python", "Django", "AWS"}) {
		t.Fatalf("unexpected tech skills: %v", result.TechSkills)
	}
	// Grounding examples flow into the prompt as few-shot context.
	if !strings.Contains(gen.lastPrompt(), "Explain Python decorators.") {
		t.Fatalf("expected grounding question in prompt")
	}
}

func TestGenerateInterviewQuestionsLineFallback(t *testing.T) {
	gen := &fakeGenerator{reply: "Q1\nQ2\nQ3"}
	svc := &questions.Service{Repo: questions.NewMemoryRepo(), Gen: gen}

	result, err := svc.GenerateInterviewQuestions(context.Background(), questions.JobProfile{Title: "Engineer"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !reflect.DeepEqual(result.Questions, []string{"Q1", "Q2", "Q3"}) {
		t.Fatalf("expected line-split fallback, got %v", result.Questions)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
}

func TestGenerateInterviewQuestionsNonStringArrayYieldsEmpty(t *testing.T) {
	gen := &fakeGenerator{reply: `[{"question": "Q1"}]`}
	svc := &questions.Service{Repo: questions.NewMemoryRepo(), Gen: gen}

	result, err := svc.GenerateInterviewQuestions(context.Background(), questions.JobProfile{Title: "Engineer"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Total != 0 || len(result.Questions) != 0 {
		t.Fatalf("expected empty result for non-string JSON, got %v", result.Questions)
	}
}

func TestGenerateInterviewQuestionsValidation(t *testing.T) {
	svc := &questions.Service{Repo: questions.NewMemoryRepo(), Gen: &fakeGenerator{}}

	_, err := svc.GenerateInterviewQuestions(context.Background(), questions.JobProfile{})
	var svcErr *apperr.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 service error, got %v", err)
	}
}

func TestGenerateInterviewQuestionsGeneratorFailureIs502(t *testing.T) {
	gen := &fakeGenerator{err: llm.ErrUnavailable}
	svc := &questions.Service{Repo: questions.NewMemoryRepo(), Gen: gen}

	_, err := svc.GenerateInterviewQuestions(context.Background(), questions.JobProfile{Title: "Engineer"})
	var svcErr *apperr.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 service error, got %v", err)
	}
}

func TestParseTechSkills(t *testing.T) {
	got := questions.ParseTechSkills([]any{"Python", 42, " Go ", "a", ""})
	want := []string{"Python", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
