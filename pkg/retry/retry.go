// Package retry wraps remote calls with exponential backoff.
//
// Only errors classified as transient by the store adapter are retried
// (see utils.IsTransient). Everything else is returned after the first
// attempt.
package retry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vitatrack/pkg/metrics"
	"vitatrack/pkg/utils"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
)

// Policy allows at most MaxRetries+1 attempts. The wait before retry n
// (1 based) is InitialDelay * 2^(n-1).
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	Logger       *zap.Logger
}

func DefaultPolicy() Policy {
	return Policy{MaxRetries: DefaultMaxRetries, InitialDelay: DefaultInitialDelay}
}

// WorstCaseWait is the total backoff spent when every attempt fails.
func (p Policy) WorstCaseWait() time.Duration {
	if p.MaxRetries <= 0 {
		return 0
	}
	return p.InitialDelay * time.Duration((1<<p.MaxRetries)-1)
}

type Operation[T any] func(ctx context.Context) (T, error)

// Do runs op under the policy. name labels logs and metrics.
func Do[T any](ctx context.Context, p Policy, name string, op Operation[T]) (T, error) {
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	delay := p.InitialDelay
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !utils.IsTransient(err) {
			return result, err
		}
		if retries == 0 {
			if attempt > 1 {
				metrics.RetryExhausted.WithLabelValues(name).Inc()
			}
			return result, err
		}

		log.Warn("transient failure, retrying",
			zap.String("operation", name),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err))
		metrics.RetryAttempts.WithLabelValues(name).Inc()

		if werr := wait(ctx, delay); werr != nil {
			var zero T
			return zero, utils.Normalize(werr)
		}
		retries--
		delay *= 2
	}
}

// Exec is Do for operations without a result.
func Exec(ctx context.Context, p Policy, name string, op func(ctx context.Context) error) error {
	_, err := Do(ctx, p, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
