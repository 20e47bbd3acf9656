package database

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	maxAttempts      = 3
	initialBackoff   = 1 * time.Second
	operationTimeout = 10 * time.Second
)

// Retry runs fn with bounded exponential backoff (1s, 2s between attempts).
// Only transient errors are retried; anything else fails immediately.
// A deadline hit during an attempt counts as that attempt failing.
func Retry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewExponential(initialBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
		defer cancel()

		err := fn(opCtx)
		if err == nil {
			return nil
		}
		if IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// IsTransient reports whether err is a network/timeout class failure worth retrying.
func IsTransient(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
