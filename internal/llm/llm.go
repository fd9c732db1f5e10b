package llm

import (
	"context"
	"errors"
)

// Generator abstracts the generative-model backend behind a single
// prompt-in/text-out call. An empty model selects the configured default.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// Typed failures replacing the upstream service's sentinel strings.
// Orchestration layers map both to an "AI service failed" response.
var (
	// ErrUnavailable means the model client could not be initialized or the
	// call itself failed.
	ErrUnavailable = errors.New("generative model unavailable")

	// ErrEmpty means the model returned a blank response.
	ErrEmpty = errors.New("empty response from model")
)

// IsGenerationFailure reports whether err is a generator-side failure that
// callers surface as a 502 rather than an internal error.
func IsGenerationFailure(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrEmpty)
}
