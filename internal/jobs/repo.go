package jobs

import "context"

// Repo defines read access to the job postings collection.
type Repo interface {
	// TextSearch runs a relevance-ranked text search and returns at most
	// limit documents, best match first.
	TextSearch(ctx context.Context, query string, techSkills []string, jobLevel string, limit int64) ([]StoredJob, error)
}
