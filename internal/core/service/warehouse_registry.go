package service

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

func (s *LedgerService) CreateWarehouse(ctx context.Context, in WarehouseInput) (w *domain.Warehouse, err error) {
	ctx, done := s.observe(ctx, "warehouse.create", attribute.String("warehouse.name", in.Name))
	defer done(&err)

	if err := s.validate(in); err != nil {
		return nil, err
	}
	in = trimWarehouse(in)

	now := s.now().UTC()
	created := domain.Warehouse{
		ID:          s.newID(),
		Name:        in.Name,
		Location:    in.Location,
		MaxCapacity: in.MaxCapacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := tx.LockWarehouseName(ctx, created.Name); err != nil {
			return err
		}
		taken, err := tx.WarehouseNameTaken(ctx, created.Name, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflictf("Warehouse with name '%s' already exists", created.Name)
		}
		return tx.InsertWarehouse(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.Activity{
		Type:        domain.ActivityWarehouseCreated,
		Warehouse:   created.Name,
		Description: fmt.Sprintf("Created warehouse %s in %s with capacity %d", created.Name, created.Location, created.MaxCapacity),
	})
	return &created, nil
}

// UpdateWarehouse replaces name, location and max capacity. The new max
// capacity may not drop below the units currently stored.
func (s *LedgerService) UpdateWarehouse(ctx context.Context, id string, in WarehouseInput) (w *domain.Warehouse, err error) {
	ctx, done := s.observe(ctx, "warehouse.update", attribute.String("warehouse.id", id))
	defer done(&err)

	if err := s.validate(in); err != nil {
		return nil, err
	}
	in = trimWarehouse(in)

	var updated domain.Warehouse
	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := tx.LockWarehouses(ctx, id); err != nil {
			return err
		}
		if err := tx.LockWarehouseName(ctx, in.Name); err != nil {
			return err
		}
		current, err := tx.GetWarehouse(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("Warehouse not found with id: %s", id)
		}
		if current.Name != in.Name {
			taken, err := tx.WarehouseNameTaken(ctx, in.Name, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.Conflictf("Warehouse with name '%s' already exists", in.Name)
			}
		}
		if in.MaxCapacity < current.CurrentCapacity {
			return domain.CapacityExceededf(
				"Cannot reduce capacity to %d. Current usage is %d items.",
				in.MaxCapacity, current.CurrentCapacity,
			)
		}

		updated = *current
		updated.Name = in.Name
		updated.Location = in.Location
		updated.MaxCapacity = in.MaxCapacity
		updated.UpdatedAt = s.now().UTC()
		return tx.UpdateWarehouse(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.Activity{
		Type:        domain.ActivityWarehouseUpdated,
		Warehouse:   updated.Name,
		Description: fmt.Sprintf("Updated warehouse %s", updated.Name),
	})
	return &updated, nil
}

// DeleteWarehouse removes an empty warehouse.
func (s *LedgerService) DeleteWarehouse(ctx context.Context, id string) (err error) {
	ctx, done := s.observe(ctx, "warehouse.delete", attribute.String("warehouse.id", id))
	defer done(&err)

	var deleted domain.Warehouse
	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := tx.LockWarehouses(ctx, id); err != nil {
			return err
		}
		current, err := tx.GetWarehouse(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("Warehouse not found with id: %s", id)
		}
		if current.ItemCount > 0 {
			return domain.Conflictf(
				"Cannot delete warehouse. It contains %d items. Please remove or transfer all items before deleting.",
				current.ItemCount,
			)
		}
		deleted = *current
		return tx.DeleteWarehouse(ctx, id)
	})
	if err != nil {
		return err
	}

	s.record(ctx, domain.Activity{
		Type:        domain.ActivityWarehouseDeleted,
		Warehouse:   deleted.Name,
		Description: fmt.Sprintf("Deleted warehouse %s", deleted.Name),
	})
	return nil
}

func (s *LedgerService) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	w, err := s.repo.GetWarehouse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if w == nil {
		return nil, domain.NotFoundf("Warehouse not found with id: %s", id)
	}
	return w, nil
}

func (s *LedgerService) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	ws, err := s.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return ws, nil
}

// SearchWarehouses matches name by case-insensitive substring. An empty name lists all.
func (s *LedgerService) SearchWarehouses(ctx context.Context, name string) ([]domain.Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.ListWarehouses(ctx)
	}
	ws, err := s.repo.SearchWarehouses(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search warehouses: %w", err)
	}
	return ws, nil
}

func trimWarehouse(in WarehouseInput) WarehouseInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	return in
}
