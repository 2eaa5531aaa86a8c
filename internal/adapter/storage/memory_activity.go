package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const DefaultActivityCapacity = 50

// MemoryActivityLog keeps the newest activities in a bounded ring.
type MemoryActivityLog struct {
	mu       sync.Mutex
	capacity int
	entries  []domain.Activity // newest first
}

var _ port.ActivityLog = (*MemoryActivityLog)(nil)

func NewMemoryActivityLog(capacity int) *MemoryActivityLog {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &MemoryActivityLog{capacity: capacity}
}

func (l *MemoryActivityLog) Append(ctx context.Context, a domain.Activity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]domain.Activity{a}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
	return nil
}

func (l *MemoryActivityLog) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]domain.Activity, limit)
	copy(out, l.entries[:limit])
	return out, nil
}

// MemoryIdempotency is a process-local IdempotencyStore. Keys expire after
// the same TTL the Redis store uses.
type MemoryIdempotency struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	keys map[string]time.Time // key -> expiry
}

var _ port.IdempotencyStore = (*MemoryIdempotency)(nil)

func NewMemoryIdempotency() *MemoryIdempotency {
	return &MemoryIdempotency{
		ttl:  idempotencyKeyTTL,
		now:  time.Now,
		keys: make(map[string]time.Time),
	}
}

func (m *MemoryIdempotency) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, expiry := range m.keys {
		if !now.Before(expiry) {
			delete(m.keys, k)
		}
	}
	if _, ok := m.keys[key]; ok {
		return false, nil
	}
	m.keys[key] = now.Add(m.ttl)
	return true, nil
}

func (m *MemoryIdempotency) ReleaseIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}
