package shared

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ExecuteWithRetry runs an operation with exponential backoff retry logic.
// maxRetries bounds the number of retries after the initial attempt, so the
// operation runs at most maxRetries+1 times. Before retry n (1-based) the
// caller waits 2^(n-1) backoff units with a small jitter to prevent
// synchronized retries. Non-retryable errors and context cancellation abort
// the loop immediately.
func ExecuteWithRetry(ctx context.Context, operation string, maxRetries int, backoffUnit time.Duration, fn func(ctx context.Context) error) error {
	logger := logrus.WithFields(logrus.Fields{
		"component": "RetryExecutor",
		"operation": operation,
	})

	var lastExecutionError error

	for attemptNumber := 0; attemptNumber <= maxRetries; attemptNumber++ {
		if attemptNumber > 0 {
			// Calculate exponential backoff duration with jitter to prevent thundering herd
			baseBackoffDuration := time.Duration(1<<uint(attemptNumber-1)) * backoffUnit
			jitterDuration := time.Duration(float64(baseBackoffDuration) * 0.1 * (0.5 + 0.5*float64(attemptNumber%3)/2))
			totalBackoffDuration := baseBackoffDuration + jitterDuration

			logger.WithFields(logrus.Fields{
				"attempt":          attemptNumber + 1,
				"backoff_duration": totalBackoffDuration,
			}).Debug("Retrying operation after backoff")

			select {
			case <-time.After(totalBackoffDuration):
			case <-ctx.Done():
				return fmt.Errorf("retry aborted for %s: %w", operation, ctx.Err())
			}
		}

		lastExecutionError = fn(ctx)
		if lastExecutionError == nil {
			logger.WithField("attempt", attemptNumber+1).Debug("Operation successful")
			return nil
		}

		lastExecutionError = fmt.Errorf("attempt %d failed: %w", attemptNumber+1, lastExecutionError)
		logger.WithError(lastExecutionError).Debug("Operation attempt failed")

		if !IsRetryableError(lastExecutionError) {
			logger.WithError(lastExecutionError).Debug("Error is not retryable, aborting")
			return lastExecutionError
		}
	}

	// All retry attempts exhausted
	totalAttempts := maxRetries + 1
	logger.WithFields(logrus.Fields{
		"total_attempts": totalAttempts,
		"final_error":    lastExecutionError,
	}).Warn("Operation failed after all retry attempts")

	return fmt.Errorf("operation %s failed after %d attempts: %w", operation, totalAttempts, lastExecutionError)
}
