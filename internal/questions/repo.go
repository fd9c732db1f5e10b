package questions

import "context"

// Repo defines read access to the question bank.
type Repo interface {
	// Search runs a relevance-ranked text search over the bank and returns
	// at most limit questions, best match first.
	Search(ctx context.Context, phrase string, limit int64) ([]StoredQuestion, error)
}
