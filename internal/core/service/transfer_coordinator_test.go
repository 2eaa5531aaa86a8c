package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

func transferReq(item *domain.InventoryItem, dst string, qty int) domain.TransferRequest {
	return domain.TransferRequest{
		ItemID:                 item.ID,
		SourceWarehouseID:      item.WarehouseID,
		DestinationWarehouseID: dst,
		Quantity:               qty,
	}
}

// Scenario B.
func TestTransfer_FullMove(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 100)
	w2 := l.mustWarehouse(t, "W2", 50)
	item := l.mustItem(t, w1.ID, "SKU-1", 40)

	res, err := l.Transfer(ctx, transferReq(item, w2.ID, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != domain.TransferMove || res.Source != nil {
		t.Errorf("expected move without source row, got %+v", res)
	}
	if res.Destination.ID != item.ID || res.Destination.SKU != "SKU-1" || res.Destination.WarehouseID != w2.ID {
		t.Errorf("expected the same item reassigned, got %+v", res.Destination)
	}

	if got := l.warehouse(t, w1.ID); got.CurrentCapacity != 0 || got.ItemCount != 0 {
		t.Errorf("expected W1 empty, got %+v", got)
	}
	if got := l.warehouse(t, w2.ID); got.CurrentCapacity != 40 || got.ItemCount != 1 {
		t.Errorf("expected W2 at 40 with 1 item, got %+v", got)
	}
	stored, _ := l.GetItem(ctx, item.ID)
	if stored.WarehouseID != w2.ID || stored.Quantity != 40 {
		t.Errorf("unexpected stored item %+v", stored)
	}
	l.assertInvariants(t)
}

// Scenario C.
func TestTransfer_PartialSplit(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 100)
	w2 := l.mustWarehouse(t, "W2", 50)
	item := l.mustItem(t, w1.ID, "SKU-1", 40)

	res, err := l.Transfer(ctx, transferReq(item, w2.ID, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != domain.TransferSplit {
		t.Errorf("expected split, got %s", res.Mode)
	}

	src, _ := l.GetItem(ctx, item.ID)
	if src.Quantity != 25 || src.SKU != "SKU-1" || src.WarehouseID != w1.ID {
		t.Errorf("unexpected source after split %+v", src)
	}

	dst := res.Destination
	if dst.ID == item.ID || dst.SKU != "SKU-1" || dst.Quantity != 15 || dst.WarehouseID != w2.ID {
		t.Errorf("unexpected destination item %+v", dst)
	}
	if dst.Name != item.Name || dst.Description != item.Description ||
		dst.Category != item.Category || dst.StorageLocation != item.StorageLocation {
		t.Errorf("expected copied attributes, got %+v", dst)
	}

	// conservation
	if src.Quantity+dst.Quantity != 40 {
		t.Errorf("quantity not conserved: %d + %d", src.Quantity, dst.Quantity)
	}
	if got := l.warehouse(t, w2.ID); got.CurrentCapacity != 15 {
		t.Errorf("expected W2 at 15, got %d", got.CurrentCapacity)
	}
	l.assertInvariants(t)
}

func TestTransfer_PartialMergesIntoExistingSKU(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 100)
	w2 := l.mustWarehouse(t, "W2", 100)
	item := l.mustItem(t, w1.ID, "SKU-1", 40)

	first, err := l.Transfer(ctx, transferReq(item, w2.ID, 10))
	if err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	second, err := l.Transfer(ctx, transferReq(item, w2.ID, 5))
	if err != nil {
		t.Fatalf("second transfer: %v", err)
	}
	if second.Mode != domain.TransferMerge || second.Destination.ID != first.Destination.ID {
		t.Errorf("expected merge into %s, got %+v", first.Destination.ID, second)
	}
	if second.Destination.Quantity != 15 || second.Source.Quantity != 25 {
		t.Errorf("expected 25 at source and 15 at destination, got %d / %d",
			second.Source.Quantity, second.Destination.Quantity)
	}

	inW2, _ := l.ListItemsByWarehouse(ctx, w2.ID)
	if len(inW2) != 1 {
		t.Errorf("expected one SKU-1 row in W2, got %d", len(inW2))
	}
	l.assertInvariants(t)
}

func TestTransfer_FullMergeKeepsMovedItem(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 100)
	w2 := l.mustWarehouse(t, "W2", 100)
	item := l.mustItem(t, w1.ID, "SKU-1", 40)

	split, err := l.Transfer(ctx, transferReq(item, w2.ID, 10))
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	// send the W2 row back in full; W1 still holds SKU-1
	back := split.Destination
	res, err := l.Transfer(ctx, transferReq(&back, w1.ID, 10))
	if err != nil {
		t.Fatalf("merge back: %v", err)
	}
	if res.Mode != domain.TransferMerge || res.Source != nil || res.Destination.ID != back.ID || res.Destination.Quantity != 40 {
		t.Errorf("unexpected merge result %+v", res)
	}
	if res.Destination.WarehouseID != w1.ID || res.Destination.WarehouseName != "W1" {
		t.Errorf("expected moved item in W1, got %+v", res.Destination)
	}

	_, err = l.GetItem(ctx, item.ID)
	assertKind(t, err, domain.KindNotFound)
	moved, err := l.GetItem(ctx, back.ID)
	if err != nil {
		t.Fatalf("moved item: %v", err)
	}
	if moved.Quantity != 40 || moved.WarehouseID != w1.ID {
		t.Errorf("unexpected moved item %+v", moved)
	}
	if got := l.warehouse(t, w1.ID); got.ItemCount != 1 || got.CurrentCapacity != 40 {
		t.Errorf("expected W1 to hold 40 units in one row, got %+v", got)
	}
	if got := l.warehouse(t, w2.ID); got.ItemCount != 0 || got.CurrentCapacity != 0 {
		t.Errorf("expected W2 empty, got %+v", got)
	}
	l.assertInvariants(t)
}

// Scenario E plus the remaining precondition failures, in check order.
func TestTransfer_Preconditions(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 100)
	w2 := l.mustWarehouse(t, "W2", 20)
	w3 := l.mustWarehouse(t, "W3", 100)
	item := l.mustItem(t, w1.ID, "SKU-1", 40)

	tests := []struct {
		name string
		req  domain.TransferRequest
		want domain.ErrorKind
	}{
		{"missing item",
			domain.TransferRequest{ItemID: "nope", SourceWarehouseID: w1.ID, DestinationWarehouseID: w2.ID, Quantity: 1},
			domain.KindNotFound},
		{"wrong source",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w3.ID, DestinationWarehouseID: w2.ID, Quantity: 1},
			domain.KindInvalidState},
		{"wrong source beats same destination",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w3.ID, DestinationWarehouseID: w3.ID, Quantity: 0},
			domain.KindInvalidState},
		{"same warehouse",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w1.ID, DestinationWarehouseID: w1.ID, Quantity: 1},
			domain.KindInvalidArgument},
		{"zero quantity",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w1.ID, DestinationWarehouseID: w3.ID, Quantity: 0},
			domain.KindInvalidArgument},
		{"more than stock",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w1.ID, DestinationWarehouseID: w3.ID, Quantity: 41},
			domain.KindInvalidArgument},
		{"quantity checked before capacity",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w1.ID, DestinationWarehouseID: w2.ID, Quantity: 41},
			domain.KindInvalidArgument},
		{"missing destination",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w1.ID, DestinationWarehouseID: "nope", Quantity: 1},
			domain.KindNotFound},
		{"destination full",
			domain.TransferRequest{ItemID: item.ID, SourceWarehouseID: w1.ID, DestinationWarehouseID: w2.ID, Quantity: 21},
			domain.KindCapacityExceeded},
	}

	before, _ := l.Snapshot(ctx)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Transfer(ctx, tt.req)
			assertKind(t, err, tt.want)
		})
	}

	after, _ := l.Snapshot(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("expected failed transfers to leave no state change")
	}
}

func TestTransfer_IdempotencyKey(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 100)
	w2 := l.mustWarehouse(t, "W2", 100)
	item := l.mustItem(t, w1.ID, "SKU-1", 40)

	req := transferReq(item, w2.ID, 5)
	req.IdempotencyKey = "req-1"
	if _, err := l.Transfer(ctx, req); err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	_, err := l.Transfer(ctx, req)
	if !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected duplicate request, got %v", err)
	}
	assertKind(t, err, domain.KindConflict)

	src, _ := l.GetItem(ctx, item.ID)
	if src.Quantity != 35 {
		t.Errorf("expected a single application, source at %d", src.Quantity)
	}

	// a failed transfer releases its key
	bad := transferReq(item, w2.ID, 500)
	bad.IdempotencyKey = "req-2"
	_, err = l.Transfer(ctx, bad)
	assertKind(t, err, domain.KindInvalidArgument)

	bad.Quantity = 5
	if _, err := l.Transfer(ctx, bad); err != nil {
		t.Errorf("expected retry with released key to succeed, got %v", err)
	}
}

func TestTransfer_ConcurrentSameItem(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 1000)
	w2 := l.mustWarehouse(t, "W2", 1000)
	item := l.mustItem(t, w1.ID, "SKU-1", 20)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Transfer(ctx, transferReq(item, w2.ID, 1))
			if err == nil {
				successCount.Add(1)
				return
			}
			// once the last unit moves, the item sits in W2
			if k := domain.KindOf(err); k != domain.KindInvalidArgument && k != domain.KindInvalidState {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 20 {
		t.Errorf("expected 20 successful transfers, got %d", successCount.Load())
	}
	if got := l.warehouse(t, w2.ID); got.CurrentCapacity != 20 || got.ItemCount != 1 {
		t.Errorf("expected W2 to hold all 20 units in one row, got %+v", got)
	}
	if got := l.warehouse(t, w1.ID); got.CurrentCapacity != 0 || got.ItemCount != 0 {
		t.Errorf("expected W1 empty, got %+v", got)
	}
	l.assertInvariants(t)
}

func TestTransfer_ConcurrentCrossingPairs(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 150)
	w2 := l.mustWarehouse(t, "W2", 150)
	a := l.mustItem(t, w1.ID, "SKU-A", 100)
	b := l.mustItem(t, w2.ID, "SKU-B", 100)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = l.Transfer(ctx, transferReq(a, w2.ID, 1))
		}()
		go func() {
			defer wg.Done()
			_, _ = l.Transfer(ctx, transferReq(b, w1.ID, 1))
		}()
	}
	wg.Wait()

	snap, _ := l.Snapshot(ctx)
	total := 0
	for _, it := range snap.Items {
		total += it.Quantity
	}
	if total != 200 {
		t.Errorf("expected 200 units in total, got %d", total)
	}
	l.assertInvariants(t)
}

func TestCapacityInvariant_MixedOperations(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w1 := l.mustWarehouse(t, "W1", 60)
	w2 := l.mustWarehouse(t, "W2", 60)

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wid := w1.ID
			if i%2 == 1 {
				wid = w2.ID
			}
			item, err := l.CreateItem(ctx, NewItem{SKU: fmt.Sprintf("SKU-%02d", i), Name: "Box", Quantity: 7, WarehouseID: wid})
			if err != nil {
				return
			}
			created.Add(1)
			other := w2.ID
			if wid == w2.ID {
				other = w1.ID
			}
			_, _ = l.Transfer(ctx, transferReq(item, other, 3))
			_, _ = l.UpdateItem(ctx, item.ID, ItemChanges{Name: "Box", Quantity: 9, WarehouseID: wid})
		}(i)
	}
	wg.Wait()

	if created.Load() == 0 {
		t.Fatal("expected some creates to succeed")
	}
	l.assertInvariants(t)
}
