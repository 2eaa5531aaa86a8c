package service

import (
	"context"
	"testing"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

func TestCreateWarehouse_Validation(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.CreateWarehouse(context.Background(), WarehouseInput{Name: "  ", Location: "", MaxCapacity: 0})
	assertKind(t, err, domain.KindValidation)

	fields := domain.FieldErrors(err)
	want := map[string]string{
		"name":        "Warehouse name is required",
		"location":    "Location is required",
		"maxCapacity": "Maximum capacity must be at least 1",
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d field errors, got %v", len(want), fields)
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, fields[field])
		}
	}

	ws, _ := l.ListWarehouses(context.Background())
	if len(ws) != 0 {
		t.Errorf("expected no warehouses, got %d", len(ws))
	}
}

func TestCreateWarehouse_TrimsAndStartsEmpty(t *testing.T) {
	l := newTestLedger(t)

	w, err := l.CreateWarehouse(context.Background(), WarehouseInput{Name: " North ", Location: " Oslo ", MaxCapacity: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Name != "North" || w.Location != "Oslo" {
		t.Errorf("expected trimmed fields, got %q / %q", w.Name, w.Location)
	}
	if w.CurrentCapacity != 0 || w.ItemCount != 0 || w.AvailableCapacity() != 100 {
		t.Errorf("expected empty warehouse, got %+v", w)
	}
	if !w.CreatedAt.Equal(testNow) {
		t.Errorf("expected created at %v, got %v", testNow, w.CreatedAt)
	}
}

func TestCreateWarehouse_DuplicateName(t *testing.T) {
	l := newTestLedger(t)
	l.mustWarehouse(t, "North", 100)

	_, err := l.CreateWarehouse(context.Background(), WarehouseInput{Name: "North", Location: "Elsewhere", MaxCapacity: 5})
	assertKind(t, err, domain.KindConflict)
}

func TestUpdateWarehouse(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w := l.mustWarehouse(t, "North", 100)
	l.mustWarehouse(t, "South", 100)
	l.mustItem(t, w.ID, "SKU-1", 40)

	tests := []struct {
		name string
		in   WarehouseInput
		want domain.ErrorKind
	}{
		{"below usage", WarehouseInput{Name: "North", Location: "Oslo", MaxCapacity: 39}, domain.KindCapacityExceeded},
		{"name taken", WarehouseInput{Name: "South", Location: "Oslo", MaxCapacity: 100}, domain.KindConflict},
		{"blank location", WarehouseInput{Name: "North", Location: " ", MaxCapacity: 100}, domain.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.UpdateWarehouse(ctx, w.ID, tt.in)
			assertKind(t, err, tt.want)
		})
	}

	updated, err := l.UpdateWarehouse(ctx, w.ID, WarehouseInput{Name: "North Hub", Location: "Bergen", MaxCapacity: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "North Hub" || updated.MaxCapacity != 40 || updated.CurrentCapacity != 40 {
		t.Errorf("unexpected update result %+v", updated)
	}

	items, _ := l.ListItems(ctx)
	if items[0].WarehouseName != "North Hub" {
		t.Errorf("expected item reads to follow the rename, got %q", items[0].WarehouseName)
	}

	_, err = l.UpdateWarehouse(ctx, "missing", WarehouseInput{Name: "X", Location: "Y", MaxCapacity: 1})
	assertKind(t, err, domain.KindNotFound)
	l.assertInvariants(t)
}

func TestDeleteWarehouse_Guard(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	w := l.mustWarehouse(t, "North", 100)
	item := l.mustItem(t, w.ID, "SKU-1", 10)

	err := l.DeleteWarehouse(ctx, w.ID)
	assertKind(t, err, domain.KindConflict)

	if err := l.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if err := l.DeleteWarehouse(ctx, w.ID); err != nil {
		t.Fatalf("expected delete of empty warehouse to succeed, got %v", err)
	}

	_, err = l.GetWarehouse(ctx, w.ID)
	assertKind(t, err, domain.KindNotFound)
	assertKind(t, l.DeleteWarehouse(ctx, w.ID), domain.KindNotFound)
}

func TestSearchWarehouses(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	l.mustWarehouse(t, "Main Distribution Center", 100)
	l.mustWarehouse(t, "West Coast Hub", 100)
	l.mustWarehouse(t, "Midwest Warehouse", 100)

	got, err := l.SearchWarehouses(ctx, "WEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "West Coast Hub" || got[1].Name != "Midwest Warehouse" {
		t.Errorf("unexpected matches %+v", got)
	}

	all, _ := l.SearchWarehouses(ctx, "  ")
	if len(all) != 3 {
		t.Errorf("expected blank search to list all, got %d", len(all))
	}
}
