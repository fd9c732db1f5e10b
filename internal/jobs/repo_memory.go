package jobs

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo implementation for tests and local runs.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs []StoredJob
	err  error
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Add stores documents for later matching.
func (r *MemoryRepo) Add(docs ...StoredJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, docs...)
}

// FailWith makes every subsequent search return err.
func (r *MemoryRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// TextSearch matches documents whose title or summary contains the query,
// case-insensitively. Relevance ranking is insertion order.
func (r *MemoryRepo) TextSearch(ctx context.Context, query string, techSkills []string, jobLevel string, limit int64) ([]StoredJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return nil, r.err
	}

	needle := strings.ToLower(query)
	var out []StoredJob
	for _, doc := range r.docs {
		if int64(len(out)) == limit {
			break
		}
		haystack := strings.ToLower(doc.Title + " " + doc.Summary)
		if strings.Contains(haystack, needle) {
			out = append(out, doc)
		}
	}
	return out, nil
}
