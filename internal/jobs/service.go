package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickq-backend/internal/llm"
	"quickq-backend/internal/shared/metrics"
	"quickq-backend/internal/shared/telemetry"
)

const (
	defaultJobLink   = "https://www.linkedin.com/jobs/search"
	generatedJobLink = "https://www.linkedin.com/jobs/generated"
)

// Service searches the job postings collection, enriching matches with
// AI-generated descriptions and falling back to fully generated listings
// when nothing matches.
type Service struct {
	Repo Repo
	Gen  llm.Generator
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// Search runs a relevance-ranked job search. Failures are returned as plain
// errors which the HTTP surface reports as a 500 payload, unlike the
// questions path which raises typed service errors.
func (s *Service) Search(ctx context.Context, query string, techSkills []string, jobLevel string, limit int) (SearchResult, error) {
	metrics.IncJobSearch()

	docs, err := s.Repo.TextSearch(ctx, query, techSkills, jobLevel, int64(limit))
	if err != nil {
		telemetry.Error("jobs.search_failed", map[string]any{"query": query, "err": err.Error()})
		return SearchResult{}, err
	}

	if len(docs) > 0 {
		formatted := s.formatResults(ctx, docs)
		return SearchResult{
			Jobs:        formatted,
			Total:       len(formatted),
			Query:       query,
			AIGenerated: false,
		}, nil
	}

	telemetry.Info("jobs.generating_fallback", map[string]any{"query": query, "limit": limit})
	generated := s.generateListings(ctx, query, techSkills, jobLevel, limit)
	return SearchResult{
		Jobs:        generated,
		Total:       len(generated),
		Query:       query,
		AIGenerated: true,
	}, nil
}

// formatResults maps stored documents to API jobs, synthesizing a markdown
// description for each via the generator.
func (s *Service) formatResults(ctx context.Context, docs []StoredJob) []Job {
	jobs := make([]Job, 0, len(docs))
	for _, doc := range docs {
		title := orDefault(doc.Title, "N/A")
		company := orDefault(doc.Company, "N/A")
		location := orDefault(doc.Location, "N/A")
		level := orDefault(doc.Level, "N/A")
		jobType := orDefault(doc.Type, "N/A")
		skills := ParseSkills(doc.Skills)

		jobs = append(jobs, Job{
			Title:       title,
			Company:     company,
			Location:    location,
			Description: s.generateDescription(ctx, title, company, skills, level, jobType, location),
			Skills:      skills,
			JobLevel:    level,
			JobType:     jobType,
			JobLink:     orDefault(doc.Link, defaultJobLink),
			FirstSeen:   orDefault(doc.FirstSeen, s.today()),
		})
	}
	return jobs
}

// generateDescription asks the model for a six-section markdown description,
// falling back to a minimal static template when generation fails.
func (s *Service) generateDescription(ctx context.Context, title, company string, skills []string, level, jobType, location string) string {
	text, err := s.Gen.Generate(ctx, descriptionPrompt(title, company, skills, level, jobType, location), "")
	if err != nil {
		telemetry.Warn("jobs.description_fallback", map[string]any{"title": title, "err": err.Error()})
		return fmt.Sprintf("## %s\n\n**Company:** %s\n\n**Location:** %s\n\nWe are looking for a talented %s to join our team.", title, company, location, title)
	}
	return text
}

type generatedListing struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	JobLevel    string   `json:"job_level"`
	JobType     string   `json:"job_type"`
	FirstSeen   string   `json:"first_seen"`
}

// generateListings asks the model for limit complete listings as a JSON
// array, filling missing fields with defaults. When the call fails or the
// reply cannot be parsed it returns exactly one synthetic fallback job.
func (s *Service) generateListings(ctx context.Context, query string, techSkills []string, jobLevel string, limit int) []Job {
	defaultSkills := techSkills
	if len(defaultSkills) == 0 {
		defaultSkills = []string{query}
	}

	text, err := s.Gen.Generate(ctx, listingsPrompt(query, techSkills, jobLevel, limit), "")
	if err != nil {
		telemetry.Error("jobs.listing_generation_failed", map[string]any{"query": query, "err": err.Error()})
		return s.fallbackJob(query, defaultSkills, jobLevel)
	}

	arr := llm.ExtractJSONArray(text)
	if arr == "" {
		telemetry.Warn("jobs.no_json_array", map[string]any{"query": query})
		return s.fallbackJob(query, defaultSkills, jobLevel)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(arr), &entries); err != nil {
		telemetry.Warn("jobs.listing_parse_failed", map[string]any{"query": query, "err": err.Error()})
		return s.fallbackJob(query, defaultSkills, jobLevel)
	}

	jobs := []Job{}
	for _, entry := range entries {
		if len(jobs) == limit {
			break
		}
		var listing generatedListing
		if err := json.Unmarshal(entry, &listing); err != nil {
			continue
		}
		skills := listing.Skills
		if len(skills) == 0 {
			skills = defaultSkills
		}
		jobs = append(jobs, Job{
			Title:       orDefault(listing.Title, query+" Developer"),
			Company:     orDefault(listing.Company, "Generated Tech Company"),
			Location:    orDefault(listing.Location, "Remote"),
			Description: orDefault(listing.Description, fmt.Sprintf("## %s Developer\n\n**Company:** Generated Tech Company\n\nAn exciting opportunity for a %s professional.", query, query)),
			Skills:      skills,
			JobLevel:    orDefault(listing.JobLevel, orDefault(jobLevel, "Mid-Senior")),
			JobType:     orDefault(listing.JobType, "Hybrid"),
			JobLink:     generatedJobLink,
			FirstSeen:   orDefault(listing.FirstSeen, s.today()),
		})
	}
	if len(jobs) == 0 {
		return s.fallbackJob(query, defaultSkills, jobLevel)
	}
	return jobs
}

func (s *Service) fallbackJob(query string, skills []string, jobLevel string) []Job {
	telemetry.Warn("jobs.fallback_job", map[string]any{"query": query})
	return []Job{{
		Title:       "Fallback: " + query + " position",
		Company:     "Tech Company",
		Location:    "Remote",
		Description: fmt.Sprintf("## %s Position\n\n**Company:** Tech Company\n\n**Location:** Remote\n\nThis is a fallback entry because the AI service failed to generate jobs.", query),
		Skills:      skills,
		JobLevel:    orDefault(jobLevel, "N/A"),
		JobType:     "Hybrid",
		JobLink:     generatedJobLink,
		FirstSeen:   s.today(),
	}}
}

func (s *Service) today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format("2006-01-02")
}
