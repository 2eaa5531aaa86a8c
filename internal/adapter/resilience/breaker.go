package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/platform/metrics"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	DefaultOpenTimeout = 30 * time.Second
	breakerName        = "audit-sink"
)

// BreakingActivityLog guards an ActivityLog with a circuit breaker so a
// failing audit sink stops costing a round trip per mutation.
type BreakingActivityLog struct {
	next port.ActivityLog
	cb   *gobreaker.CircuitBreaker
}

var _ port.ActivityLog = (*BreakingActivityLog)(nil)

func NewBreakingActivityLog(next port.ActivityLog, logger *zap.Logger, openTimeout time.Duration) *BreakingActivityLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	if openTimeout <= 0 {
		openTimeout = DefaultOpenTimeout
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			metrics.AuditBreakerState.Set(stateValue(to))
			logger.Warn("circuit breaker state changed",
				zap.String("circuit", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	metrics.AuditBreakerState.Set(0)

	return &BreakingActivityLog{next: next, cb: cb}
}

func (b *BreakingActivityLog) Append(ctx context.Context, a domain.Activity) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Append(ctx, a)
	})
	return formatError(err)
}

func (b *BreakingActivityLog) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Recent(ctx, limit)
	})
	if err != nil {
		return nil, formatError(err)
	}
	return out.([]domain.Activity), nil
}

func (b *BreakingActivityLog) State() gobreaker.State {
	return b.cb.State()
}

// stateValue maps a breaker state to the gauge value (0=closed, 1=open, 2=half-open).
func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}

func formatError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState):
		return fmt.Errorf("circuit breaker %s is open: %w", breakerName, err)
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("circuit breaker %s: too many requests in half-open state: %w", breakerName, err)
	}
	return err
}
