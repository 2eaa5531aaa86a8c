package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	errDuplicateEntry  = 1062
	errLockWaitTimeout = 1205
	errDeadlock        = 1213
	errOutOfRange      = 1264
	errRowReferenced   = 1451
	errNoReferenced    = 1452
)

const warehouseColumns = `
	w.id, w.name, w.location, w.max_capacity, w.created_at, w.updated_at,
	COALESCE(SUM(i.quantity), 0), COUNT(i.id)`

const warehouseFrom = `
	FROM warehouses w LEFT JOIN items i ON i.warehouse_id = w.id`

const itemColumns = `
	i.id, i.sku, i.name, i.description, i.category, i.quantity,
	i.storage_location, i.warehouse_id, w.name, i.created_at, i.updated_at`

const itemFrom = `
	FROM items i JOIN warehouses w ON w.id = i.warehouse_id`

// MySQLAdapter is the InnoDB-backed LedgerRepository. Transactions run at
// READ COMMITTED; consistency comes from the row locks taken through LedgerTx.
// The DSN must set parseTime=true.
type MySQLAdapter struct {
	db *sql.DB
}

var _ port.LedgerRepository = (*MySQLAdapter)(nil)

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (m *MySQLAdapter) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &mysqlTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return mapMySQLError("commit", err)
	}
	return nil
}

func (m *MySQLAdapter) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	return getWarehouse(ctx, m.db, id)
}

func (m *MySQLAdapter) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	return queryWarehouses(ctx, m.db, "", "")
}

func (m *MySQLAdapter) SearchWarehouses(ctx context.Context, name string) ([]domain.Warehouse, error) {
	if name == "" {
		return m.ListWarehouses(ctx)
	}
	return queryWarehouses(ctx, m.db, "WHERE LOWER(w.name) LIKE ?", likePattern(name))
}

func (m *MySQLAdapter) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return getItem(ctx, m.db, "WHERE i.id = ?", id)
}

func (m *MySQLAdapter) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return m.SearchItems(ctx, domain.ItemFilter{})
}

func (m *MySQLAdapter) SearchItems(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	return searchItems(ctx, m.db, filter)
}

func (m *MySQLAdapter) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT DISTINCT category FROM items WHERE category <> ''`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

// Snapshot reads warehouses and items from one consistent read view.
func (m *MySQLAdapter) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	warehouses, err := queryWarehouses(ctx, tx, "", "")
	if err != nil {
		return domain.Snapshot{}, err
	}
	items, err := searchItems(ctx, tx, domain.ItemFilter{})
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("end snapshot: %w", err)
	}
	return domain.Snapshot{Warehouses: warehouses, Items: items}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWarehouse(row scanner) (domain.Warehouse, error) {
	var w domain.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.Location, &w.MaxCapacity, &w.CreatedAt, &w.UpdatedAt,
		&w.CurrentCapacity, &w.ItemCount)
	return w, err
}

func scanItem(row scanner) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(&item.ID, &item.SKU, &item.Name, &item.Description, &item.Category, &item.Quantity,
		&item.StorageLocation, &item.WarehouseID, &item.WarehouseName, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func getWarehouse(ctx context.Context, q querier, id string) (*domain.Warehouse, error) {
	w, err := scanWarehouse(q.QueryRowContext(ctx,
		`SELECT `+warehouseColumns+warehouseFrom+` WHERE w.id = ? GROUP BY w.id`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query warehouse: %w", err)
	}
	return &w, nil
}

func queryWarehouses(ctx context.Context, q querier, where string, args ...any) ([]domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + warehouseFrom + ` ` + where + ` GROUP BY w.id ORDER BY w.seq`
	if where == "" {
		args = nil
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query warehouses: %w", err)
	}
	defer rows.Close()

	out := []domain.Warehouse{}
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate warehouses: %w", err)
	}
	return out, nil
}

func getItem(ctx context.Context, q querier, where string, args ...any) (*domain.InventoryItem, error) {
	item, err := scanItem(q.QueryRowContext(ctx, `SELECT `+itemColumns+itemFrom+` `+where, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

func searchItems(ctx context.Context, q querier, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.WarehouseID != "" {
		conds = append(conds, "i.warehouse_id = ?")
		args = append(args, filter.WarehouseID)
	}
	if filter.Term != "" {
		p := likePattern(filter.Term)
		conds = append(conds, "(LOWER(i.name) LIKE ? OR LOWER(i.sku) LIKE ? OR LOWER(i.category) LIKE ?)")
		args = append(args, p, p, p)
	}

	query := `SELECT ` + itemColumns + itemFrom
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY i.seq`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	out := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// mapMySQLError turns lock conflicts into port.ErrTxConflict and constraint
// violations into domain errors. Anything else is wrapped as is.
func mapMySQLError(op string, err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDeadlock, errLockWaitTimeout:
			return fmt.Errorf("%s: %w", op, port.ErrTxConflict)
		case errDuplicateEntry:
			return domain.Conflictf("%s: duplicate entry", op)
		case errRowReferenced, errNoReferenced:
			return domain.Conflictf("%s: referenced row constraint", op)
		case errOutOfRange:
			return domain.InvalidArgumentf("%s: value out of range", op)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
