package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

type warehouseRow struct {
	seq int64
	w   domain.Warehouse
}

type itemRow struct {
	seq  int64
	item domain.InventoryItem
}

// MemoryAdapter is an in-process LedgerRepository. Transactions take keyed
// locks and stage their writes; a commit applies them under the store mutex,
// so readers always see either all or none of a transaction.
type MemoryAdapter struct {
	mu         sync.RWMutex
	seq        int64
	warehouses map[string]*warehouseRow
	items      map[string]*itemRow
	locks      *keyLocks
}

var _ port.LedgerRepository = (*MemoryAdapter)(nil)

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		warehouses: make(map[string]*warehouseRow),
		items:      make(map[string]*itemRow),
		locks:      newKeyLocks(),
	}
}

func (m *MemoryAdapter) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	tx := newMemoryTx(m)
	defer tx.releaseAll()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return tx.commit()
}

func (m *MemoryAdapter) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.warehouses[id]
	if !ok {
		return nil, nil
	}
	w := m.withUsage(row.w)
	return &w, nil
}

func (m *MemoryAdapter) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	return m.SearchWarehouses(ctx, "")
}

func (m *MemoryAdapter) SearchWarehouses(ctx context.Context, name string) ([]domain.Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.warehousesLocked(strings.ToLower(name)), nil
}

func (m *MemoryAdapter) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	item := m.withWarehouseName(row.item)
	return &item, nil
}

func (m *MemoryAdapter) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return m.SearchItems(ctx, domain.ItemFilter{})
}

func (m *MemoryAdapter) SearchItems(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.itemsLocked(filter), nil
}

func (m *MemoryAdapter) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]struct{})
	out := []string{}
	for _, row := range m.items {
		c := row.item.Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryAdapter) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Snapshot{
		Warehouses: m.warehousesLocked(""),
		Items:      m.itemsLocked(domain.ItemFilter{}),
	}, nil
}

// warehousesLocked returns warehouses whose lowercased name contains term,
// in insertion order. Caller holds m.mu.
func (m *MemoryAdapter) warehousesLocked(term string) []domain.Warehouse {
	rows := make([]*warehouseRow, 0, len(m.warehouses))
	for _, row := range m.warehouses {
		if term != "" && !strings.Contains(strings.ToLower(row.w.Name), term) {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]domain.Warehouse, 0, len(rows))
	for _, row := range rows {
		out = append(out, m.withUsage(row.w))
	}
	return out
}

func (m *MemoryAdapter) itemsLocked(filter domain.ItemFilter) []domain.InventoryItem {
	term := strings.ToLower(filter.Term)
	rows := make([]*itemRow, 0, len(m.items))
	for _, row := range m.items {
		if filter.WarehouseID != "" && row.item.WarehouseID != filter.WarehouseID {
			continue
		}
		if term != "" && !matchesTerm(row.item, term) {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, m.withWarehouseName(row.item))
	}
	return out
}

func (m *MemoryAdapter) withUsage(w domain.Warehouse) domain.Warehouse {
	w.CurrentCapacity, w.ItemCount = 0, 0
	for _, row := range m.items {
		if row.item.WarehouseID == w.ID {
			w.CurrentCapacity += row.item.Quantity
			w.ItemCount++
		}
	}
	return w
}

func (m *MemoryAdapter) withWarehouseName(item domain.InventoryItem) domain.InventoryItem {
	if row, ok := m.warehouses[item.WarehouseID]; ok {
		item.WarehouseName = row.w.Name
	}
	return item
}

// matchesTerm reports whether the lowercased term occurs in the item's name, SKU or category.
func matchesTerm(item domain.InventoryItem, term string) bool {
	return strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.SKU), term) ||
		strings.Contains(strings.ToLower(item.Category), term)
}
