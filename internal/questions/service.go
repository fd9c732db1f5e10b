package questions

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quickq-backend/internal/llm"
	"quickq-backend/internal/shared/apperr"
	"quickq-backend/internal/shared/metrics"
	"quickq-backend/internal/shared/telemetry"
)

// groundingLimit is how many stored questions are fed to the model as
// few-shot context.
const groundingLimit = 5

// Service searches the question bank and orchestrates AI question
// generation grounded on stored examples.
type Service struct {
	Repo Repo
	Gen  llm.Generator
}

// Search runs a single text search over the bank. Unlike job search, every
// failure here is a typed service error and zero matches never fall back to
// generation.
func (s *Service) Search(ctx context.Context, query string, techSkills []string, limit int64) (SearchOutcome, error) {
	metrics.IncQuestionSearch()

	phrase := query
	if len(techSkills) > 0 {
		phrase += " " + strings.Join(techSkills, " ")
	}

	docs, err := s.Repo.Search(ctx, phrase, limit)
	if err != nil {
		telemetry.Error("questions.search_failed", map[string]any{"query": query, "err": err.Error()})
		return SearchOutcome{}, apperr.New("An error occurred while searching for questions.", http.StatusInternalServerError)
	}

	if len(docs) == 0 {
		return SearchOutcome{
			Questions: []StoredQuestion{},
			Total:     0,
			Message:   fmt.Sprintf("No questions found for query: '%s'", query),
		}, nil
	}

	out := make([]StoredQuestion, 0, len(docs))
	for _, doc := range docs {
		out = append(out, StoredQuestion{
			QuestionNumber: orDefault(doc.QuestionNumber, "N/A"),
			Question:       orDefault(doc.Question, "N/A"),
			Answer:         orDefault(doc.Answer, "N/A"),
			Category:       orDefault(doc.Category, "N/A"),
			Difficulty:     orDefault(doc.Difficulty, "N/A"),
		})
	}

	telemetry.Info("questions.search_complete", map[string]any{"query": query, "total": len(out)})
	return SearchOutcome{Questions: out, Total: len(out)}, nil
}

// GenerateInterviewQuestions asks the model for five new questions for the
// given job profile, grounded on relevant stored questions.
func (s *Service) GenerateInterviewQuestions(ctx context.Context, job JobProfile) (GenerationResult, error) {
	if job.Empty() {
		return GenerationResult{}, apperr.New("Invalid job object provided.", http.StatusBadRequest)
	}

	jobTitle := orDefault(job.Title, "N/A")
	techSkills := ParseTechSkills(job.Skills)

	terms := append([]string{jobTitle}, techSkills...)
	outcome, err := s.Search(ctx, strings.Join(terms, " "), techSkills, groundingLimit)
	if err != nil {
		return GenerationResult{}, err
	}

	prompt := generationPrompt(jobTitle, job.Description, techSkills, outcome.Questions)
	text, err := s.Gen.Generate(ctx, prompt, "")
	if err != nil {
		if llm.IsGenerationFailure(err) {
			telemetry.Error("questions.generation_failed", map[string]any{"job_title": jobTitle, "err": err.Error()})
			return GenerationResult{}, apperr.New("Failed to generate questions from AI service.", http.StatusBadGateway)
		}
		telemetry.Error("questions.generation_error", map[string]any{"job_title": jobTitle, "err": err.Error()})
		return GenerationResult{}, apperr.New("An unexpected error occurred while generating questions.", http.StatusInternalServerError)
	}

	// The "exactly 5" instruction is advisory to the model; whatever parses
	// is returned.
	items, stage := llm.ExtractStringArray(text)
	telemetry.Info("questions.parsed", map[string]any{
		"job_title": jobTitle,
		"stage":     string(stage),
		"total":     len(items),
	})

	return GenerationResult{
		Questions:  items,
		Total:      len(items),
		JobTitle:   jobTitle,
		TechSkills: techSkills,
	}, nil
}
