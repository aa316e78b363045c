package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider retries transient failures with exponential backoff
// and jitter.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1 // a malformed batch gets exactly one more chance

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnceOnInvalid:
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitFor(attempt, err)):
		}
	}

	return nil, lastErr
}

type retryClass int

const (
	retryAlways retryClass = iota
	retryOnceOnInvalid
	retryNever
)

// classify buckets an error by how the retry loop should treat it.
// Unknown errors (network hiccups and the like) count as transient.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// A token budget that is too small fails identically on retry.
		return retryNever
	}
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return retryOnceOnInvalid
	}
	return retryAlways
}

// waitFor computes the backoff before the next attempt. A rate-limit
// error carrying a Retry-After hint wins over the computed curve.
func (r *retryProvider) waitFor(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
