package middleware

import (
	"context"
	log "log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sethvargo/go-retry"
)

// RetryConfig bounds a retry policy: at most MaxAttempts invocations with a
// fixed Delay between failing attempts. The wrapped operation must be
// retry-safe by construction of the caller; the policy does not verify it.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryConfig mirrors the classic 3-attempt, fixed-delay policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, Delay: 2 * time.Second}
}

// Validate checks the config values.
func (c RetryConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MaxAttempts, validation.Required, validation.Min(1)),
		validation.Field(&c.Delay, validation.Min(time.Duration(0))),
	)
}

// WithRetry invokes op up to cfg.MaxAttempts times. After any failing
// attempt other than the last it waits cfg.Delay (a blocking wait on the
// calling goroutine) and retries; intermediate failures are logged and
// suppressed. A successful attempt short-circuits immediately. When all
// attempts are exhausted the final attempt's error is returned verbatim, so
// callers cannot distinguish "exhausted" from "failed once" without their
// own attempt bookkeeping.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if err := cfg.Validate(); err != nil {
		return zero, err
	}

	constant := retry.BackoffFunc(func() (time.Duration, bool) {
		return cfg.Delay, false
	})

	var out T
	attempt := 0
	err := retry.Do(ctx, retry.WithMaxRetries(uint64(cfg.MaxAttempts-1), constant), func(ctx context.Context) error {
		attempt++
		res, err := op(ctx)
		if err != nil {
			if attempt < cfg.MaxAttempts {
				log.Warn("middleware: attempt failed, retrying",
					"attempt", attempt,
					"max_attempts", cfg.MaxAttempts,
					"delay", cfg.Delay,
					"error", err)
			} else {
				log.Warn("middleware: all attempts failed", "attempts", attempt, "error", err)
			}
			// go-retry unwraps before returning, so the final error
			// surfaces exactly as op produced it.
			return retry.RetryableError(err)
		}
		out = res
		return nil
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}
