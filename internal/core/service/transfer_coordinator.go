package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/platform/metrics"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const idempotencyKeyPrefix = "transfer:"

// Transfer moves req.Quantity units of an item from its source warehouse to
// the destination as one atomic unit.
//
// Preconditions are checked in order, first failure wins: the item exists,
// it is in the stated source warehouse, source and destination differ, the
// quantity is between 1 and the item quantity, and the destination has room.
//
// A full-quantity transfer reassigns the item. A partial transfer decrements
// the source item and either increments the destination item with the same
// SKU or creates a new destination item carrying the source's attributes.
// A full-quantity transfer into a warehouse that already holds the SKU moves
// the item, folds the destination row's quantity into it and deletes that row.
func (s *LedgerService) Transfer(ctx context.Context, req domain.TransferRequest) (res *domain.TransferResult, err error) {
	ctx, done := s.observe(ctx, "transfer",
		attribute.String("item.id", req.ItemID),
		attribute.String("transfer.source", req.SourceWarehouseID),
		attribute.String("transfer.destination", req.DestinationWarehouseID),
		attribute.Int("transfer.quantity", req.Quantity),
	)
	defer done(&err)

	if req.IdempotencyKey != "" && s.idem != nil {
		key := idempotencyKeyPrefix + req.IdempotencyKey
		ok, setErr := s.idem.SetIdempotency(ctx, key)
		if setErr != nil {
			return nil, fmt.Errorf("idempotency check failed: %w", setErr)
		}
		if !ok {
			return nil, ErrDuplicateRequest
		}
		defer func() {
			if err == nil {
				return
			}
			// failed transfers leave no trace, so the key may be reused
			if relErr := s.idem.ReleaseIdempotency(context.WithoutCancel(ctx), key); relErr != nil {
				s.logger.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(relErr))
			}
		}()
	}

	var result domain.TransferResult
	var srcName, dstName string
	err = s.inTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		// Locking the requested source pins the item: it can neither leave
		// nor enter that warehouse while we hold the lock.
		if err := tx.LockWarehouses(ctx, req.SourceWarehouseID, req.DestinationWarehouseID); err != nil {
			return err
		}

		item, err := tx.GetItem(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFoundf("Inventory item not found with id: %s", req.ItemID)
		}
		if item.WarehouseID != req.SourceWarehouseID {
			return domain.InvalidStatef("Item is not currently in the stated source warehouse %s", req.SourceWarehouseID)
		}
		if req.SourceWarehouseID == req.DestinationWarehouseID {
			return domain.InvalidArgumentf("Source and destination warehouse must differ")
		}
		if req.Quantity < 1 {
			return domain.InvalidArgumentf("Transfer quantity must be at least 1")
		}
		if req.Quantity > item.Quantity {
			return domain.InvalidArgumentf(
				"Insufficient quantity at source: transfer quantity (%d) exceeds available quantity (%d)",
				req.Quantity, item.Quantity,
			)
		}

		dst, err := tx.GetWarehouse(ctx, req.DestinationWarehouseID)
		if err != nil {
			return err
		}
		if dst == nil {
			return domain.NotFoundf("Destination warehouse not found with id: %s", req.DestinationWarehouseID)
		}
		if dst.AvailableCapacity() < req.Quantity {
			return domain.CapacityExceededf(
				"Insufficient capacity in destination warehouse. Available: %d, Required: %d",
				dst.AvailableCapacity(), req.Quantity,
			)
		}

		existing, err := tx.FindItemBySKU(ctx, dst.ID, item.SKU)
		if err != nil {
			return err
		}
		lockIDs := []string{item.ID}
		if existing != nil {
			lockIDs = append(lockIDs, existing.ID)
		}
		if err := tx.LockItems(ctx, lockIDs...); err != nil {
			return err
		}

		srcName, dstName = item.WarehouseName, dst.Name
		now := s.now().UTC()
		result, err = s.applyTransfer(ctx, tx, *item, existing, *dst, req.Quantity, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.TransferUnits.WithLabelValues(string(result.Mode)).Add(float64(result.Quantity))
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("transfer.mode", string(result.Mode)))

	s.record(ctx, domain.Activity{
		Type:      domain.ActivityTransferred,
		ItemName:  result.Destination.Name,
		SKU:       result.Destination.SKU,
		Warehouse: dstName,
		Quantity:  result.Quantity,
		Description: fmt.Sprintf("Transferred %d units of %s (%s) from %s to %s",
			result.Quantity, result.Destination.Name, result.Destination.SKU, srcName, dstName),
	})
	return &result, nil
}

// applyTransfer writes the effect of a validated transfer.
func (s *LedgerService) applyTransfer(ctx context.Context, tx port.LedgerTx, item domain.InventoryItem, existing *domain.InventoryItem, dst domain.Warehouse, qty int, now time.Time) (domain.TransferResult, error) {
	full := qty == item.Quantity

	switch {
	case existing != nil && full:
		// The moved row absorbs the destination row and keeps its id. The
		// destination row goes first so (sku, warehouse) stays unique.
		if err := tx.DeleteItem(ctx, existing.ID); err != nil {
			return domain.TransferResult{}, err
		}
		item.Quantity += existing.Quantity
		item.WarehouseID = dst.ID
		item.WarehouseName = dst.Name
		item.UpdatedAt = now
		if err := tx.UpdateItem(ctx, item); err != nil {
			return domain.TransferResult{}, err
		}
		return domain.TransferResult{Mode: domain.TransferMerge, Quantity: qty, Destination: item}, nil

	case existing != nil:
		merged := *existing
		merged.Quantity += qty
		merged.UpdatedAt = now
		if err := tx.UpdateItem(ctx, merged); err != nil {
			return domain.TransferResult{}, err
		}
		item.Quantity -= qty
		item.UpdatedAt = now
		if err := tx.UpdateItem(ctx, item); err != nil {
			return domain.TransferResult{}, err
		}
		return domain.TransferResult{Mode: domain.TransferMerge, Quantity: qty, Source: &item, Destination: merged}, nil

	case full:
		item.WarehouseID = dst.ID
		item.WarehouseName = dst.Name
		item.UpdatedAt = now
		if err := tx.UpdateItem(ctx, item); err != nil {
			return domain.TransferResult{}, err
		}
		return domain.TransferResult{Mode: domain.TransferMove, Quantity: qty, Destination: item}, nil

	default:
		item.Quantity -= qty
		item.UpdatedAt = now
		if err := tx.UpdateItem(ctx, item); err != nil {
			return domain.TransferResult{}, err
		}
		split := domain.InventoryItem{
			ID:              s.newID(),
			SKU:             item.SKU,
			Name:            item.Name,
			Description:     item.Description,
			Category:        item.Category,
			Quantity:        qty,
			StorageLocation: item.StorageLocation,
			WarehouseID:     dst.ID,
			WarehouseName:   dst.Name,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.InsertItem(ctx, split); err != nil {
			return domain.TransferResult{}, err
		}
		return domain.TransferResult{Mode: domain.TransferSplit, Quantity: qty, Source: &item, Destination: split}, nil
	}
}
