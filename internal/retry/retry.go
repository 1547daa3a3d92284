package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxAttempts = 3

// Do runs op with a bounded timeout per attempt, retrying transient failures
// with exponential backoff. retryable decides whether an error is worth
// another attempt; confirmed outcomes (not-found, validation) must return
// false there so they surface immediately.
func Do(ctx context.Context, timeout time.Duration, retryable func(error) bool, op func(ctx context.Context) error) error {
	attempt := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		err := op(attemptCtx)
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(b, maxAttempts-1), ctx))
}
