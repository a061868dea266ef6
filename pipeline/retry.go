package pipeline

import (
	"context"
	"time"

	"github.com/pagebrief/pagebrief"
)

// CallFunc is the signature of a retryable backend call.
type CallFunc func(ctx context.Context) (string, error)

// LogFunc is the signature of a logging function for retry attempts.
type LogFunc func(format string, args ...any)

// BackoffDelays returns the delay schedule for up to retries attempts
// after the first: base, 2*base, 4*base, ... capped at max.
func BackoffDelays(retries int, base, max time.Duration) []time.Duration {
	delays := make([]time.Duration, 0, retries)
	d := base
	for i := 0; i < retries; i++ {
		if d > max {
			d = max
		}
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// DefaultRetryDelays returns the backoff schedule for backend calls:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return BackoffDelays(pagebrief.DefaultMaxRetries, time.Second, 8*time.Second)
}

// FetchFunc is the signature of a page fetch.
type FetchFunc func(ctx context.Context, url string) (string, error)

// FetchWithRetry fetches the URL, retrying failed attempts with the
// default backoff schedule. Unlike backend calls, every fetch error is
// retried: browser automation fails in ways that don't map cleanly onto
// the transient/permanent split.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// CallWithRetry invokes call, retrying transient failures (EUNAVAILABLE)
// with the given delay schedule: len(delays) retries, 1+len(delays) total
// attempts. Permanent failures and context cancellation return
// immediately. When retries are exhausted the last transient error is
// surfaced as ESUMMARIZE, since no further attempt will be made.
func CallWithRetry(ctx context.Context, call CallFunc, delays []time.Duration, logger LogFunc) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := call(ctx)
		if err == nil {
			return out, nil
		}
		if code := pagebrief.ErrorCode(err); code != pagebrief.EUNAVAILABLE {
			return "", err
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retrying after transient failure (attempt %d): %v", attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", pagebrief.Errorf(pagebrief.ESUMMARIZE,
		"retries exhausted after %d attempts: %s", maxAttempts, pagebrief.ErrorMessage(lastErr))
}
