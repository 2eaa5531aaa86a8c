package storage

import (
	"context"
	"fmt"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	warehouseKey     = "w:"
	warehouseNameKey = "wn:"
	skuKey           = "s:"
	itemKey          = "i:"
)

// memoryTx stages writes until commit. A nil staged entry marks a deletion.
type memoryTx struct {
	store *MemoryAdapter
	held  map[string]struct{}

	warehouses     map[string]*domain.Warehouse
	warehouseOrder []string
	items          map[string]*domain.InventoryItem
	itemOrder      []string
}

var _ port.LedgerTx = (*memoryTx)(nil)

func newMemoryTx(store *MemoryAdapter) *memoryTx {
	return &memoryTx{
		store:      store,
		held:       make(map[string]struct{}),
		warehouses: make(map[string]*domain.Warehouse),
		items:      make(map[string]*domain.InventoryItem),
	}
}

func (t *memoryTx) lock(ctx context.Context, prefix string, ids []string) error {
	for _, key := range sortedKeys(prefix, ids) {
		if _, ok := t.held[key]; ok {
			continue
		}
		if err := t.store.locks.acquire(ctx, key); err != nil {
			return fmt.Errorf("acquire %s: %w", key, err)
		}
		t.held[key] = struct{}{}
	}
	return nil
}

func (t *memoryTx) releaseAll() {
	for key := range t.held {
		t.store.locks.release(key)
	}
	t.held = nil
}

func (t *memoryTx) LockWarehouses(ctx context.Context, ids ...string) error {
	return t.lock(ctx, warehouseKey, ids)
}

func (t *memoryTx) LockWarehouseName(ctx context.Context, name string) error {
	return t.lock(ctx, warehouseNameKey, []string{name})
}

func (t *memoryTx) LockSKU(ctx context.Context, sku string) error {
	return t.lock(ctx, skuKey, []string{sku})
}

func (t *memoryTx) LockItems(ctx context.Context, ids ...string) error {
	return t.lock(ctx, itemKey, ids)
}

// warehouse returns the staged or committed warehouse without usage figures.
func (t *memoryTx) warehouse(id string) (domain.Warehouse, bool) {
	if w, staged := t.warehouses[id]; staged {
		if w == nil {
			return domain.Warehouse{}, false
		}
		return *w, true
	}
	row, ok := t.store.warehouses[id]
	if !ok {
		return domain.Warehouse{}, false
	}
	return row.w, true
}

// eachItem visits the transaction's view of every item.
func (t *memoryTx) eachItem(fn func(item domain.InventoryItem)) {
	for id, row := range t.store.items {
		if _, staged := t.items[id]; staged {
			continue
		}
		fn(row.item)
	}
	for _, item := range t.items {
		if item != nil {
			fn(*item)
		}
	}
}

func (t *memoryTx) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	w, ok := t.warehouse(id)
	if !ok {
		return nil, nil
	}
	w.CurrentCapacity, w.ItemCount = 0, 0
	t.eachItem(func(item domain.InventoryItem) {
		if item.WarehouseID == id {
			w.CurrentCapacity += item.Quantity
			w.ItemCount++
		}
	})
	return &w, nil
}

func (t *memoryTx) WarehouseNameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for id := range t.store.warehouses {
		if _, staged := t.warehouses[id]; staged {
			continue
		}
		if id != excludeID && t.store.warehouses[id].w.Name == name {
			return true, nil
		}
	}
	for id, w := range t.warehouses {
		if w != nil && id != excludeID && w.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) InsertWarehouse(ctx context.Context, w domain.Warehouse) error {
	t.store.mu.RLock()
	_, exists := t.warehouse(w.ID)
	t.store.mu.RUnlock()
	if exists {
		return domain.Conflictf("Warehouse already exists with id: %s", w.ID)
	}
	w.CurrentCapacity, w.ItemCount = 0, 0
	t.warehouses[w.ID] = &w
	t.warehouseOrder = append(t.warehouseOrder, w.ID)
	return nil
}

func (t *memoryTx) UpdateWarehouse(ctx context.Context, w domain.Warehouse) error {
	t.store.mu.RLock()
	_, exists := t.warehouse(w.ID)
	t.store.mu.RUnlock()
	if !exists {
		return domain.NotFoundf("Warehouse not found with id: %s", w.ID)
	}
	w.CurrentCapacity, w.ItemCount = 0, 0
	t.warehouses[w.ID] = &w
	return nil
}

func (t *memoryTx) DeleteWarehouse(ctx context.Context, id string) error {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	if _, exists := t.warehouse(id); !exists {
		return domain.NotFoundf("Warehouse not found with id: %s", id)
	}
	var held int
	t.eachItem(func(item domain.InventoryItem) {
		if item.WarehouseID == id {
			held++
		}
	})
	if held > 0 {
		return domain.Conflictf("warehouse %s still holds %d items", id, held)
	}
	t.warehouses[id] = nil
	return nil
}

func (t *memoryTx) item(id string) (domain.InventoryItem, bool) {
	if item, staged := t.items[id]; staged {
		if item == nil {
			return domain.InventoryItem{}, false
		}
		return *item, true
	}
	row, ok := t.store.items[id]
	if !ok {
		return domain.InventoryItem{}, false
	}
	return row.item, true
}

func (t *memoryTx) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	item, ok := t.item(id)
	if !ok {
		return nil, nil
	}
	if w, ok := t.warehouse(item.WarehouseID); ok {
		item.WarehouseName = w.Name
	}
	return &item, nil
}

func (t *memoryTx) SKUExists(ctx context.Context, sku string) (bool, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	var found bool
	t.eachItem(func(item domain.InventoryItem) {
		if item.SKU == sku {
			found = true
		}
	})
	return found, nil
}

func (t *memoryTx) FindItemBySKU(ctx context.Context, warehouseID, sku string) (*domain.InventoryItem, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.findBySKU(warehouseID, sku, ""), nil
}

// findBySKU must be called with the store read lock held.
func (t *memoryTx) findBySKU(warehouseID, sku, excludeID string) *domain.InventoryItem {
	var found *domain.InventoryItem
	t.eachItem(func(item domain.InventoryItem) {
		if found == nil && item.ID != excludeID && item.WarehouseID == warehouseID && item.SKU == sku {
			found = &item
		}
	})
	if found != nil {
		if w, ok := t.warehouse(found.WarehouseID); ok {
			found.WarehouseName = w.Name
		}
	}
	return found
}

func (t *memoryTx) InsertItem(ctx context.Context, item domain.InventoryItem) error {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	if _, exists := t.item(item.ID); exists {
		return domain.Conflictf("Inventory item already exists with id: %s", item.ID)
	}
	if err := t.checkItemRefs(item); err != nil {
		return err
	}
	t.items[item.ID] = &item
	t.itemOrder = append(t.itemOrder, item.ID)
	return nil
}

func (t *memoryTx) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	if _, exists := t.item(item.ID); !exists {
		return domain.NotFoundf("Inventory item not found with id: %s", item.ID)
	}
	if err := t.checkItemRefs(item); err != nil {
		return err
	}
	t.items[item.ID] = &item
	return nil
}

// checkItemRefs enforces the warehouse reference and the one row per
// (sku, warehouse) rule, the same constraints the SQL schema declares.
func (t *memoryTx) checkItemRefs(item domain.InventoryItem) error {
	if _, ok := t.warehouse(item.WarehouseID); !ok {
		return domain.NotFoundf("Warehouse not found with id: %s", item.WarehouseID)
	}
	if dup := t.findBySKU(item.WarehouseID, item.SKU, item.ID); dup != nil {
		return domain.Conflictf("Warehouse %s already holds SKU '%s'", dup.WarehouseName, item.SKU)
	}
	return nil
}

func (t *memoryTx) DeleteItem(ctx context.Context, id string) error {
	t.store.mu.RLock()
	_, exists := t.item(id)
	t.store.mu.RUnlock()
	if !exists {
		return domain.NotFoundf("Inventory item not found with id: %s", id)
	}
	t.items[id] = nil
	return nil
}

// commit applies the staged writes atomically. New rows get sequence numbers
// in the order they were inserted.
func (t *memoryTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range t.warehouseOrder {
		if w := t.warehouses[id]; w != nil {
			s.seq++
			s.warehouses[id] = &warehouseRow{seq: s.seq, w: *w}
		}
	}
	for id, w := range t.warehouses {
		switch row, ok := s.warehouses[id]; {
		case w == nil:
			delete(s.warehouses, id)
		case ok:
			row.w = *w
		}
	}

	for _, id := range t.itemOrder {
		if item := t.items[id]; item != nil {
			s.seq++
			s.items[id] = &itemRow{seq: s.seq, item: *item}
		}
	}
	for id, item := range t.items {
		switch row, ok := s.items[id]; {
		case item == nil:
			delete(s.items, id)
		case ok:
			row.item = *item
		}
	}
	return nil
}
