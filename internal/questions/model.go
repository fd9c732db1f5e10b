package questions

import "strings"

// StoredQuestion mirrors a document in the question bank. Fields default to
// "N/A" when absent from storage.
type StoredQuestion struct {
	QuestionNumber string `bson:"Question Number" json:"question_number"`
	Question       string `bson:"Question" json:"question"`
	Answer         string `bson:"Answer" json:"answer"`
	Category       string `bson:"Category" json:"category"`
	Difficulty     string `bson:"Difficulty" json:"difficulty"`
}

// SearchOutcome is the question-search payload. Message is set only when
// nothing matched; question search never synthesizes results.
type SearchOutcome struct {
	Questions []StoredQuestion `json:"questions"`
	Total     int              `json:"total"`
	Message   string           `json:"message,omitempty"`
}

// JobProfile is the caller-supplied job object questions are generated for.
// Skills is loosely typed because clients send arbitrary JSON; non-string
// entries are dropped during parsing.
type JobProfile struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      []any  `json:"skills"`
}

// Empty reports whether the profile carries no usable content.
func (p JobProfile) Empty() bool {
	return strings.TrimSpace(p.Title) == "" &&
		strings.TrimSpace(p.Description) == "" &&
		len(p.Skills) == 0
}

// GenerationResult is the payload for generated interview questions.
type GenerationResult struct {
	Questions  []string `json:"questions"`
	Total      int      `json:"total"`
	JobTitle   string   `json:"job_title"`
	TechSkills []string `json:"tech_skills"`
}

const maxSkills = 10

// ParseTechSkills keeps only string entries longer than one character after
// trimming, capped at ten.
func ParseTechSkills(items []any) []string {
	skills := []string{}
	for _, item := range items {
		str, ok := item.(string)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(str)
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
