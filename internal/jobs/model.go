package jobs

import "strings"

// Job is the API-facing job posting shape. Description may be AI-generated.
type Job struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	JobLevel    string   `json:"job_level"`
	JobType     string   `json:"job_type"`
	JobLink     string   `json:"job_link"`
	FirstSeen   string   `json:"first_seen"`
}

// StoredJob mirrors a document in the job postings collection.
type StoredJob struct {
	Title     string `bson:"job_title"`
	Company   string `bson:"company"`
	Location  string `bson:"job_location"`
	Summary   string `bson:"job_summary"`
	Skills    string `bson:"job_skills"`
	Level     string `bson:"job level"`
	Type      string `bson:"job_type"`
	Link      string `bson:"job_link"`
	FirstSeen string `bson:"first_seen"`
}

// SearchResult is the jobs payload returned to the HTTP surface.
type SearchResult struct {
	Jobs        []Job  `json:"jobs"`
	Total       int    `json:"total"`
	Query       string `json:"query"`
	AIGenerated bool   `json:"ai_generated"`
}

const maxSkills = 10

// ParseSkills splits a stored skills string on commas, semicolons, and pipes,
// trims each token, drops empties and single characters, and caps the result
// at ten entries.
func ParseSkills(raw string) []string {
	skills := []string{}
	if raw == "" {
		return skills
	}
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if len(trimmed) <= 1 {
			continue
		}
		skills = append(skills, trimmed)
		if len(skills) == maxSkills {
			break
		}
	}
	return skills
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
