package service

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

// CreateItem adds a new SKU to a warehouse. The SKU must not exist anywhere
// in the catalog and the quantity must fit the warehouse's free capacity.
func (s *LedgerService) CreateItem(ctx context.Context, in NewItem) (item *domain.InventoryItem, err error) {
	ctx, done := s.observe(ctx, "item.create",
		attribute.String("item.sku", in.SKU),
		attribute.String("warehouse.id", in.WarehouseID),
		attribute.Int("item.quantity", in.Quantity),
	)
	defer done(&err)

	if err := s.validate(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created := domain.InventoryItem{
		ID:              s.newID(),
		SKU:             strings.TrimSpace(in.SKU),
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Category:        strings.TrimSpace(in.Category),
		Quantity:        in.Quantity,
		StorageLocation: in.StorageLocation,
		WarehouseID:     strings.TrimSpace(in.WarehouseID),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := tx.LockWarehouses(ctx, created.WarehouseID); err != nil {
			return err
		}
		if err := tx.LockSKU(ctx, created.SKU); err != nil {
			return err
		}

		exists, err := tx.SKUExists(ctx, created.SKU)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflictf("Item with SKU '%s' already exists", created.SKU)
		}

		w, err := tx.GetWarehouse(ctx, created.WarehouseID)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.NotFoundf("Warehouse not found with id: %s", created.WarehouseID)
		}
		if !w.HasCapacity(created.Quantity) {
			return domain.CapacityExceededf(
				"Insufficient warehouse capacity. Available: %d, Required: %d",
				w.AvailableCapacity(), created.Quantity,
			)
		}

		created.WarehouseName = w.Name
		return tx.InsertItem(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.Activity{
		Type:        domain.ActivityCreated,
		ItemName:    created.Name,
		SKU:         created.SKU,
		Warehouse:   created.WarehouseName,
		Quantity:    created.Quantity,
		Description: fmt.Sprintf("Added %d units of %s (%s) to %s", created.Quantity, created.Name, created.SKU, created.WarehouseName),
	})
	return &created, nil
}

// UpdateItem replaces the mutable fields of an item. Capacity is checked
// against the target warehouse; when the item stays put its own prior
// quantity is excluded from the check.
func (s *LedgerService) UpdateItem(ctx context.Context, id string, in ItemChanges) (item *domain.InventoryItem, err error) {
	ctx, done := s.observe(ctx, "item.update",
		attribute.String("item.id", id),
		attribute.String("warehouse.id", in.WarehouseID),
		attribute.Int("item.quantity", in.Quantity),
	)
	defer done(&err)

	if err := s.validate(in); err != nil {
		return nil, err
	}
	targetID := strings.TrimSpace(in.WarehouseID)

	var before, after domain.InventoryItem
	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		peek, err := tx.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if peek == nil {
			return domain.NotFoundf("Inventory item not found with id: %s", id)
		}

		if err := tx.LockWarehouses(ctx, peek.WarehouseID, targetID); err != nil {
			return err
		}
		if err := tx.LockItems(ctx, id); err != nil {
			return err
		}
		current, err := tx.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("Inventory item not found with id: %s", id)
		}
		if current.WarehouseID != peek.WarehouseID {
			// moved between the peek and the lock
			return port.ErrTxConflict
		}

		if sku := strings.TrimSpace(in.SKU); sku != "" && sku != current.SKU {
			return domain.InvalidArgumentf("SKU cannot be changed (current '%s', requested '%s')", current.SKU, sku)
		}

		target, err := tx.GetWarehouse(ctx, targetID)
		if err != nil {
			return err
		}
		if target == nil {
			return domain.NotFoundf("Warehouse not found with id: %s", targetID)
		}

		needed := in.Quantity
		if targetID == current.WarehouseID {
			needed = in.Quantity - current.Quantity
		} else {
			clash, err := tx.FindItemBySKU(ctx, targetID, current.SKU)
			if err != nil {
				return err
			}
			if clash != nil {
				return domain.Conflictf("Warehouse %s already holds SKU '%s'", target.Name, current.SKU)
			}
		}
		if needed > 0 && !target.HasCapacity(needed) {
			return domain.CapacityExceededf(
				"Insufficient warehouse capacity. Available: %d, Required: %d",
				target.AvailableCapacity(), needed,
			)
		}

		before = *current
		after = *current
		after.Name = strings.TrimSpace(in.Name)
		after.Description = in.Description
		after.Category = strings.TrimSpace(in.Category)
		after.Quantity = in.Quantity
		after.StorageLocation = in.StorageLocation
		after.WarehouseID = targetID
		after.WarehouseName = target.Name
		after.UpdatedAt = s.now().UTC()
		return tx.UpdateItem(ctx, after)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, updateActivity(before, after))
	return &after, nil
}

// DeleteItem removes an item, freeing its quantity in the owning warehouse.
func (s *LedgerService) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, done := s.observe(ctx, "item.delete", attribute.String("item.id", id))
	defer done(&err)

	var deleted domain.InventoryItem
	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		peek, err := tx.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if peek == nil {
			return domain.NotFoundf("Inventory item not found with id: %s", id)
		}
		if err := tx.LockWarehouses(ctx, peek.WarehouseID); err != nil {
			return err
		}
		if err := tx.LockItems(ctx, id); err != nil {
			return err
		}
		current, err := tx.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("Inventory item not found with id: %s", id)
		}
		if current.WarehouseID != peek.WarehouseID {
			return port.ErrTxConflict
		}
		deleted = *current
		return tx.DeleteItem(ctx, id)
	})
	if err != nil {
		return err
	}

	s.record(ctx, domain.Activity{
		Type:        domain.ActivityDeleted,
		ItemName:    deleted.Name,
		SKU:         deleted.SKU,
		Warehouse:   deleted.WarehouseName,
		Quantity:    deleted.Quantity,
		Description: fmt.Sprintf("Removed %s (%s) from %s", deleted.Name, deleted.SKU, deleted.WarehouseName),
	})
	return nil
}

func (s *LedgerService) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, domain.NotFoundf("Inventory item not found with id: %s", id)
	}
	return item, nil
}

func (s *LedgerService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListItemsByWarehouse returns the items stored in one warehouse.
func (s *LedgerService) ListItemsByWarehouse(ctx context.Context, warehouseID string) ([]domain.InventoryItem, error) {
	if _, err := s.GetWarehouse(ctx, warehouseID); err != nil {
		return nil, err
	}
	return s.SearchItems(ctx, domain.ItemFilter{WarehouseID: warehouseID})
}

// SearchItems matches filter.Term case-insensitively against name, SKU and
// category, optionally restricted to one warehouse. Results keep insertion order.
func (s *LedgerService) SearchItems(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	filter.Term = strings.TrimSpace(filter.Term)
	filter.WarehouseID = strings.TrimSpace(filter.WarehouseID)
	items, err := s.repo.SearchItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// ListCategories returns the distinct non-empty categories, sorted.
func (s *LedgerService) ListCategories(ctx context.Context) ([]string, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func updateActivity(before, after domain.InventoryItem) domain.Activity {
	a := domain.Activity{
		Type:      domain.ActivityUpdated,
		ItemName:  after.Name,
		SKU:       after.SKU,
		Warehouse: after.WarehouseName,
		Quantity:  after.Quantity,
	}
	switch {
	case after.Quantity > before.Quantity:
		a.Type = domain.ActivityStockAdded
		a.Quantity = after.Quantity - before.Quantity
		a.Description = fmt.Sprintf("Added %d units of %s (%s) in %s", a.Quantity, after.Name, after.SKU, after.WarehouseName)
	case after.Quantity < before.Quantity:
		a.Type = domain.ActivityStockRemoved
		a.Quantity = before.Quantity - after.Quantity
		a.Description = fmt.Sprintf("Removed %d units of %s (%s) from %s", a.Quantity, after.Name, after.SKU, after.WarehouseName)
	default:
		a.Description = fmt.Sprintf("Updated %s (%s) in %s", after.Name, after.SKU, after.WarehouseName)
	}
	return a
}
