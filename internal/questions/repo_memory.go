package questions

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo implementation for tests and local runs.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs []StoredQuestion
	err  error
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Add stores questions for later matching.
func (r *MemoryRepo) Add(docs ...StoredQuestion) {
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

// Search matches questions sharing any whitespace-separated term with the
// phrase, case-insensitively. Ranking is insertion order.
func (r *MemoryRepo) Search(ctx context.Context, phrase string, limit int64) ([]StoredQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return nil, r.err
	}

	terms := strings.Fields(strings.ToLower(phrase))
	var out []StoredQuestion
	for _, doc := range r.docs {
		if int64(len(out)) == limit {
			break
		}
		haystack := strings.ToLower(doc.Question + " " + doc.Answer + " " + doc.Category)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				out = append(out, doc)
				break
			}
		}
	}
	return out, nil
}
