package feedback

import "strings"

// QAPair is one interview question with the candidate's answer. Supplied by
// the caller; never persisted.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// JobProfile is the caller-supplied job object feedback is generated
// against. Skills is loosely typed; only string entries are used.
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

func (p JobProfile) skillList() string {
	var skills []string
	for _, item := range p.Skills {
		if str, ok := item.(string); ok {
			skills = append(skills, str)
		}
	}
	return strings.Join(skills, ", ")
}

// Result is the feedback payload: opaque narrative text, no structure.
type Result struct {
	Feedback string `json:"feedback"`
	JobTitle string `json:"job_title"`
}
