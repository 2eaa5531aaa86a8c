package port

import (
	"context"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

// ActivityLog is the append-only audit trail written after successful
// mutations. It never gates a mutation.
type ActivityLog interface {
	Append(ctx context.Context, activity domain.Activity) error
	// Recent returns up to limit activities, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

type IdempotencyStore interface {
	// SetIdempotency sets a key for idempotency check, returns false if already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// ReleaseIdempotency removes a key so the request can be retried
	ReleaseIdempotency(ctx context.Context, key string) error
}
