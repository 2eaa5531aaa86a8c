package port

import (
	"context"
	"errors"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

// ErrTxConflict marks a transaction that lost a lock race and can be retried
// from the start.
var ErrTxConflict = errors.New("transaction conflict")

// LedgerRepository is the backing store. Reads outside a transaction see a
// consistent snapshot per call; all writes go through WithinTx.
type LedgerRepository interface {
	// WithinTx runs fn in a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise; locks are held until then.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error

	// GetWarehouse returns nil, nil when the warehouse does not exist.
	GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	// SearchWarehouses matches name case-insensitively by substring.
	SearchWarehouses(ctx context.Context, name string) ([]domain.Warehouse, error)

	// GetItem returns nil, nil when the item does not exist.
	GetItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	SearchItems(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error)
	ListCategories(ctx context.Context) ([]string, error)

	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// LedgerTx is the view of the store inside a transaction.
//
// Locks must be taken in this order to stay deadlock free: LockWarehouses,
// LockWarehouseName, LockSKU, LockItems. Each call sorts its own ids and a
// transaction calls each at most once. Reads made after the relevant lock is
// held are stable until the transaction ends.
//
// Every write to an item is made while holding the lock of the warehouse the
// item is in, so a warehouse lock also pins the set of items it holds.
type LedgerTx interface {
	LockWarehouses(ctx context.Context, ids ...string) error
	LockWarehouseName(ctx context.Context, name string) error
	LockSKU(ctx context.Context, sku string) error
	LockItems(ctx context.Context, ids ...string) error

	GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error)
	WarehouseNameTaken(ctx context.Context, name, excludeID string) (bool, error)
	InsertWarehouse(ctx context.Context, w domain.Warehouse) error
	UpdateWarehouse(ctx context.Context, w domain.Warehouse) error
	DeleteWarehouse(ctx context.Context, id string) error

	GetItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	SKUExists(ctx context.Context, sku string) (bool, error)
	// FindItemBySKU returns the item row for sku in the given warehouse, or nil.
	FindItemBySKU(ctx context.Context, warehouseID, sku string) (*domain.InventoryItem, error)
	InsertItem(ctx context.Context, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error
}
