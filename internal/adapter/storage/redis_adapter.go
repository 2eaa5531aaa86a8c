package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	activityKey       = "ledger:activity"
	idempotencyKeyTTL = 24 * time.Hour
)

// pushCappedScript prepends an entry and trims the list to the capacity in one round trip.
var pushCappedScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[2])

redis.call('LPUSH', key, ARGV[1])
redis.call('LTRIM', key, 0, capacity - 1)

return redis.call('LLEN', key)
`)

// RedisAdapter keeps the activity log and transfer idempotency keys in Redis.
type RedisAdapter struct {
	client   *redis.Client
	capacity int
}

var (
	_ port.ActivityLog      = (*RedisAdapter)(nil)
	_ port.IdempotencyStore = (*RedisAdapter)(nil)
)

func NewRedisAdapter(client *redis.Client, capacity int) *RedisAdapter {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &RedisAdapter{client: client, capacity: capacity}
}

func (r *RedisAdapter) Append(ctx context.Context, a domain.Activity) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}
	if err := pushCappedScript.Run(ctx, r.client, []string{activityKey}, payload, r.capacity).Err(); err != nil {
		return fmt.Errorf("push activity: %w", err)
	}
	return nil
}

func (r *RedisAdapter) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		return []domain.Activity{}, nil
	}
	raw, err := r.client.LRange(ctx, activityKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("range activity: %w", err)
	}

	out := make([]domain.Activity, 0, len(raw))
	for _, entry := range raw {
		var a domain.Activity
		if err := json.Unmarshal([]byte(entry), &a); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (r *RedisAdapter) ReleaseIdempotency(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
