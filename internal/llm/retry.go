package llm

import (
	"context"
	"errors"

	"voice-listing-go/internal/retry"
)

type retryingGenerator struct {
	next   TextGenerator
	policy retry.Policy
}

// WithRetry retries failed generations under p. A missing configuration is
// not retried.
func WithRetry(gen TextGenerator, p retry.Policy) TextGenerator {
	return &retryingGenerator{next: gen, policy: p}
}

func (r *retryingGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return retry.Value(ctx, r.policy, func() (string, error) {
		out, err := r.next.GenerateText(ctx, prompt)
		if errors.Is(err, ErrNotConfigured) {
			return "", retry.Permanent(err)
		}
		return out, err
	})
}
