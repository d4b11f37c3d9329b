// Package retry runs an operation under an explicit attempt/backoff policy.
// Timing is injectable through Policy.NewTimer so callers can test without sleeping.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Policy struct {
	MaxAttempts int
	// Backoff returns the wait after failed attempt n (0-based).
	Backoff func(attempt int) time.Duration
	// NewTimer supplies the timer used between attempts; nil means wall clock.
	NewTimer func() backoff.Timer
	// Notify is called after each failed attempt that will be retried.
	Notify func(err error, wait time.Duration)
}

// DefaultPolicy is three attempts with 1s, 2s, 4s... waits.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, Backoff: Exponential(time.Second)}
}

// Exponential doubles base for every attempt.
func Exponential(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base << uint(attempt)
	}
}

// Permanent stops the retry loop and returns err unwrapped.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs op until it succeeds, returns a Permanent error, the context ends,
// or MaxAttempts is reached. The last error is returned.
func Do(ctx context.Context, p Policy, op func() error) error {
	var timer backoff.Timer
	if p.NewTimer != nil {
		timer = p.NewTimer()
	}
	var notify backoff.Notify
	if p.Notify != nil {
		notify = p.Notify
	}
	b := backoff.WithContext(&schedule{policy: p}, ctx)
	return backoff.RetryNotifyWithTimer(op, b, notify, timer)
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	var out T
	err := Do(ctx, p, func() error {
		v, err := op()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// schedule adapts a Policy to backoff.BackOff.
type schedule struct {
	policy  Policy
	attempt int
}

func (s *schedule) NextBackOff() time.Duration {
	max := s.policy.MaxAttempts
	if max < 1 {
		max = 1
	}
	if s.attempt >= max-1 {
		return backoff.Stop
	}
	wait := time.Duration(0)
	if s.policy.Backoff != nil {
		wait = s.policy.Backoff(s.attempt)
	}
	s.attempt++
	return wait
}

func (s *schedule) Reset() { s.attempt = 0 }
