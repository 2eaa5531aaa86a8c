package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/platform/metrics"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	defaultTxAttempts = 3
	tracerName        = "github.com/rl1809/warehouse-ledger/internal/core/service"
)

var ErrDuplicateRequest = domain.Conflictf("duplicate request")

// LedgerService owns the warehouse registry, the item catalog and the
// transfer coordinator. Every mutation runs in one store transaction.
type LedgerService struct {
	repo       port.LedgerRepository
	activity   port.ActivityLog
	idem       port.IdempotencyStore
	logger     *zap.Logger
	tracer     trace.Tracer
	validator  *validator.Validate
	txAttempts int
	now        func() time.Time
	newID      func() string
}

type Option func(*LedgerService)

// WithTxAttempts bounds how often a transaction is restarted after a lock conflict.
func WithTxAttempts(n int) Option {
	return func(s *LedgerService) {
		if n > 0 {
			s.txAttempts = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

func NewLedgerService(repo port.LedgerRepository, activity port.ActivityLog, idem port.IdempotencyStore, logger *zap.Logger, opts ...Option) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &LedgerService{
		repo:       repo,
		activity:   activity,
		idem:       idem,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
		validator:  newValidator(),
		txAttempts: defaultTxAttempts,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// inTx runs fn in a transaction, restarting it when the store reports a lock conflict.
func (s *LedgerService) inTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	var err error
	for attempt := 1; attempt <= s.txAttempts; attempt++ {
		err = s.repo.WithinTx(ctx, fn)
		if !errors.Is(err, port.ErrTxConflict) {
			return err
		}
		metrics.TxRetries.Inc()
		s.logger.Debug("retrying transaction", zap.Int("attempt", attempt), zap.Error(err))
	}
	return err
}

// observe starts a span for op and returns a func that records the outcome
// in the span, the operation metrics and, for internal failures, the log.
func (s *LedgerService) observe(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "ledger."+op, trace.WithAttributes(attrs...))

	return ctx, func(errp *error) {
		outcome := "ok"
		if err := *errp; err != nil {
			kind := domain.KindOf(err)
			outcome = strings.ToLower(string(kind))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if kind == domain.KindInternal {
				s.logger.Error("ledger operation failed", zap.String("operation", op), zap.Error(err))
			} else {
				s.logger.Info("ledger operation rejected", zap.String("operation", op), zap.String("kind", string(kind)), zap.Error(err))
			}
		} else {
			span.SetStatus(codes.Ok, "")
		}
		metrics.LedgerOperations.WithLabelValues(op, outcome).Inc()
		metrics.LedgerOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		span.End()
	}
}

// record appends to the audit trail. Failures are logged and swallowed.
func (s *LedgerService) record(ctx context.Context, a domain.Activity) {
	if s.activity == nil {
		return
	}
	a.ID = s.newID()
	a.Timestamp = s.now().UTC()
	if err := s.activity.Append(ctx, a); err != nil {
		metrics.AuditDropped.Inc()
		s.logger.Warn("failed to record activity",
			zap.String("type", string(a.Type)),
			zap.String("sku", a.SKU),
			zap.Error(err),
		)
	}
}
