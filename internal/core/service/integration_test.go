package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/warehouse-ledger/internal/adapter/storage"
	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

type integrationEnv struct {
	redis   *redis.Client
	mysql   *sql.DB
	ledger  *LedgerService
	cleanup func()
}

func setupIntegrationEnv(t *testing.T) *integrationEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/warehouse?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cache := storage.NewRedisAdapter(rdb, storage.DefaultActivityCapacity)
	return &integrationEnv{
		redis:  rdb,
		mysql:  db,
		ledger: NewLedgerService(storage.NewMySQLAdapter(db), cache, cache, nil),
		cleanup: func() {
			rdb.Close()
			db.Close()
		},
	}
}

// removeWarehouses deletes the given warehouses and everything stored in them.
func (e *integrationEnv) removeWarehouses(ids ...string) {
	ctx := context.Background()
	for _, id := range ids {
		e.mysql.ExecContext(ctx, `DELETE FROM items WHERE warehouse_id = ?`, id)
		e.mysql.ExecContext(ctx, `DELETE FROM warehouses WHERE id = ?`, id)
	}
}

func TestIntegration_ConcurrentTransfers(t *testing.T) {
	env := setupIntegrationEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	w1, err := env.ledger.CreateWarehouse(ctx, WarehouseInput{Name: "it-src-" + suffix, Location: "A", MaxCapacity: 100})
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	w2, err := env.ledger.CreateWarehouse(ctx, WarehouseInput{Name: "it-dst-" + suffix, Location: "B", MaxCapacity: 15})
	if err != nil {
		t.Fatalf("create destination: %v", err)
	}
	defer env.removeWarehouses(w1.ID, w2.ID)

	item, err := env.ledger.CreateItem(ctx, NewItem{SKU: "it-" + suffix, Name: "Pallet", Quantity: 40, WarehouseID: w1.ID})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	// 30 single-unit transfers race for 15 units of destination room
	var successCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.ledger.Transfer(ctx, domain.TransferRequest{
				ItemID:                 item.ID,
				SourceWarehouseID:      w1.ID,
				DestinationWarehouseID: w2.ID,
				Quantity:               1,
			})
			if err == nil {
				successCount.Add(1)
			} else if domain.KindOf(err) != domain.KindCapacityExceeded {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successCount.Load() != 15 {
		t.Errorf("expected 15 successful transfers, got %d", successCount.Load())
	}

	src, _ := env.ledger.GetWarehouse(ctx, w1.ID)
	dst, _ := env.ledger.GetWarehouse(ctx, w2.ID)
	if src.CurrentCapacity != 25 || dst.CurrentCapacity != 15 {
		t.Errorf("expected 25/15, got %d/%d", src.CurrentCapacity, dst.CurrentCapacity)
	}
	if dst.ItemCount != 1 {
		t.Errorf("expected one merged row at destination, got %d", dst.ItemCount)
	}

	recent, err := env.ledger.RecentActivity(ctx, 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	found := false
	for _, a := range recent {
		if a.Type == domain.ActivityTransferred && a.SKU == item.SKU {
			found = true
		}
	}
	if !found {
		t.Error("expected a transfer entry in the Redis activity log")
	}
}

func TestIntegration_IdempotencyPreventsDoubleTransfer(t *testing.T) {
	env := setupIntegrationEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	suffix := uuid.NewString()[:8]
	key := "same-request-" + uuid.NewString()
	defer env.redis.Del(ctx, idempotencyKeyPrefix+key)

	w1, err := env.ledger.CreateWarehouse(ctx, WarehouseInput{Name: "it-a-" + suffix, Location: "A", MaxCapacity: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w2, err := env.ledger.CreateWarehouse(ctx, WarehouseInput{Name: "it-b-" + suffix, Location: "B", MaxCapacity: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer env.removeWarehouses(w1.ID, w2.ID)

	item, err := env.ledger.CreateItem(ctx, NewItem{SKU: "it-" + suffix, Name: "Crate", Quantity: 10, WarehouseID: w1.ID})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	req := domain.TransferRequest{
		ItemID:                 item.ID,
		SourceWarehouseID:      w1.ID,
		DestinationWarehouseID: w2.ID,
		Quantity:               1,
		IdempotencyKey:         key,
	}
	if _, err := env.ledger.Transfer(ctx, req); err != nil {
		t.Fatalf("first transfer failed: %v", err)
	}
	if _, err := env.ledger.Transfer(ctx, req); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("expected ErrDuplicateRequest, got: %v", err)
	}

	got, _ := env.ledger.GetItem(ctx, item.ID)
	if got.Quantity != 9 {
		t.Errorf("expected quantity 9, got %d", got.Quantity)
	}
}
