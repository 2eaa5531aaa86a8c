package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

type mysqlTx struct {
	tx *sql.Tx
}

var _ port.LedgerTx = (*mysqlTx)(nil)

// lockRows takes FOR UPDATE locks on the rows of table with the given ids,
// in primary key order.
func (t *mysqlTx) lockRows(ctx context.Context, table string, ids []string) error {
	keys := sortedKeys("", ids)
	if len(keys) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := t.tx.QueryContext(ctx,
		`SELECT id FROM `+table+` WHERE id IN (`+placeholders+`) ORDER BY id FOR UPDATE`, args...)
	if err != nil {
		return mapMySQLError("lock "+table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan locked %s: %w", table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return mapMySQLError("lock "+table, err)
	}
	return nil
}

// lockKey upserts and holds a row in ledger_locks. It serializes
// transactions on keys that have no row of their own yet.
func (t *mysqlTx) lockKey(ctx context.Context, key string) error {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO ledger_locks (lock_key) VALUES (?) ON DUPLICATE KEY UPDATE lock_key = lock_key`, key)
	if err != nil {
		return mapMySQLError("lock "+key, err)
	}
	return nil
}

// dropLockKey removes the ledger_locks row of a key whose owner was deleted,
// so the table does not grow with every name and SKU ever used.
func (t *mysqlTx) dropLockKey(ctx context.Context, key string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM ledger_locks WHERE lock_key = ?`, key); err != nil {
		return mapMySQLError("drop lock "+key, err)
	}
	return nil
}

func (t *mysqlTx) LockWarehouses(ctx context.Context, ids ...string) error {
	return t.lockRows(ctx, "warehouses", ids)
}

func (t *mysqlTx) LockWarehouseName(ctx context.Context, name string) error {
	return t.lockKey(ctx, warehouseNameKey+name)
}

func (t *mysqlTx) LockSKU(ctx context.Context, sku string) error {
	return t.lockKey(ctx, skuKey+sku)
}

func (t *mysqlTx) LockItems(ctx context.Context, ids ...string) error {
	return t.lockRows(ctx, "items", ids)
}

func (t *mysqlTx) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	return getWarehouse(ctx, t.tx, id)
}

func (t *mysqlTx) WarehouseNameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var n int
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM warehouses WHERE name = ? AND id <> ?`, name, excludeID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query warehouse name: %w", err)
	}
	return n > 0, nil
}

func (t *mysqlTx) InsertWarehouse(ctx context.Context, w domain.Warehouse) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO warehouses (id, name, location, max_capacity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Location, w.MaxCapacity, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return mapMySQLError("insert warehouse", err)
	}
	return nil
}

func (t *mysqlTx) UpdateWarehouse(ctx context.Context, w domain.Warehouse) error {
	var oldName string
	err := t.tx.QueryRowContext(ctx, `SELECT name FROM warehouses WHERE id = ?`, w.ID).Scan(&oldName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("query warehouse name: %w", err)
	}

	_, err = t.tx.ExecContext(ctx, `
		UPDATE warehouses
		SET name = ?, location = ?, max_capacity = ?, updated_at = ?
		WHERE id = ?`,
		w.Name, w.Location, w.MaxCapacity, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return mapMySQLError("update warehouse", err)
	}
	if oldName != "" && oldName != w.Name {
		return t.dropLockKey(ctx, warehouseNameKey+oldName)
	}
	return nil
}

func (t *mysqlTx) DeleteWarehouse(ctx context.Context, id string) error {
	var name string
	err := t.tx.QueryRowContext(ctx, `SELECT name FROM warehouses WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("Warehouse not found with id: %s", id)
	}
	if err != nil {
		return fmt.Errorf("query warehouse name: %w", err)
	}

	result, err := t.tx.ExecContext(ctx, `DELETE FROM warehouses WHERE id = ?`, id)
	if err != nil {
		return mapMySQLError("delete warehouse", err)
	}
	if err := expectRow(result, "Warehouse not found with id: %s", id); err != nil {
		return err
	}
	// names are unique, so nothing else can hold this key
	return t.dropLockKey(ctx, warehouseNameKey+name)
}

func (t *mysqlTx) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return getItem(ctx, t.tx, "WHERE i.id = ?", id)
}

func (t *mysqlTx) SKUExists(ctx context.Context, sku string) (bool, error) {
	var n int
	if err := t.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE sku = ?`, sku).Scan(&n); err != nil {
		return false, fmt.Errorf("query sku: %w", err)
	}
	return n > 0, nil
}

func (t *mysqlTx) FindItemBySKU(ctx context.Context, warehouseID, sku string) (*domain.InventoryItem, error) {
	return getItem(ctx, t.tx, "WHERE i.warehouse_id = ? AND i.sku = ?", warehouseID, sku)
}

func (t *mysqlTx) InsertItem(ctx context.Context, item domain.InventoryItem) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO items (id, sku, name, description, category, quantity, storage_location,
			warehouse_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.SKU, item.Name, item.Description, item.Category, item.Quantity,
		item.StorageLocation, item.WarehouseID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return mapMySQLError("insert item", err)
	}
	return nil
}

func (t *mysqlTx) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE items
		SET name = ?, description = ?, category = ?, quantity = ?, storage_location = ?,
			warehouse_id = ?, updated_at = ?
		WHERE id = ?`,
		item.Name, item.Description, item.Category, item.Quantity, item.StorageLocation,
		item.WarehouseID, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return mapMySQLError("update item", err)
	}
	return nil
}

func (t *mysqlTx) DeleteItem(ctx context.Context, id string) error {
	var sku string
	err := t.tx.QueryRowContext(ctx, `SELECT sku FROM items WHERE id = ?`, id).Scan(&sku)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("Inventory item not found with id: %s", id)
	}
	if err != nil {
		return fmt.Errorf("query item sku: %w", err)
	}

	result, err := t.tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return mapMySQLError("delete item", err)
	}
	if err := expectRow(result, "Inventory item not found with id: %s", id); err != nil {
		return err
	}

	// A SKU split across warehouses keeps its key until the last row goes.
	var remaining int
	if err := t.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE sku = ?`, sku).Scan(&remaining); err != nil {
		return fmt.Errorf("query sku: %w", err)
	}
	if remaining > 0 {
		return nil
	}
	return t.dropLockKey(ctx, skuKey+sku)
}

// expectRow reports NotFound when a DELETE matched nothing. Updates skip it:
// without clientFoundRows an UPDATE that changes nothing also reports zero.
func expectRow(result sql.Result, format string, id string) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf(format, id)
	}
	return nil
}
