package fetcher

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

// retrier retries transient fetch failures with exponential backoff.
type retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetrier(maxRetries int) *retrier {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &retrier{
		maxRetries:      maxRetries,
		initialInterval: 500 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}
}

// do executes op, retrying while it fails with a retryable error.
// Non-retryable errors abort immediately.
func (r *retrier) do(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.Multiplier = r.multiplier
	b.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.maxRetries)), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// isRetryable reports whether a fetch error is worth retrying: transport
// failures always, HTTP statuses only for rate limiting and server errors.
func isRetryable(err error) bool {
	if errors.HasCode(err, errors.CodeNetworkError) {
		return true
	}
	if !errors.HasCode(err, errors.CodeHTTPStatus) {
		return false
	}

	var ue *errors.UpdError
	if !errors.As(err, &ue) {
		return false
	}
	status, ok := ue.Details["status"].(int)
	if !ok {
		return false
	}
	return status == 429 || status >= 500
}
