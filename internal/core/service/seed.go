package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type seedItem struct {
	sku, name, description, category string
	quantity                         int
	location                         string
	warehouse                        int
}

var seedWarehouses = []WarehouseInput{
	{Name: "Main Distribution Center", Location: "New York, NY", MaxCapacity: 10000},
	{Name: "West Coast Hub", Location: "Los Angeles, CA", MaxCapacity: 8000},
	{Name: "Midwest Warehouse", Location: "Chicago, IL", MaxCapacity: 7500},
	{Name: "Southern Distribution", Location: "Atlanta, GA", MaxCapacity: 6000},
	{Name: "Pacific Northwest", Location: "Seattle, WA", MaxCapacity: 5500},
}

var seedItems = []seedItem{
	{"LAPTOP-001", "Dell Latitude 5520", "15-inch business laptop", "Electronics", 150, "A1-R1-S3", 0},
	{"LAPTOP-002", "MacBook Pro 16", "Professional laptop", "Electronics", 85, "A1-R2-S1", 1},
	{"LAPTOP-003", "HP EliteBook 840", "Lightweight laptop", "Electronics", 120, "A2-R1-S2", 2},
	{"DESK-CHAIR-001", "ErgoMax Executive Chair", "Ergonomic office chair", "Furniture", 200, "B1-R3-S1", 0},
	{"DESK-001", "Standing Desk Pro", "Adjustable height desk", "Furniture", 75, "B2-R1-S2", 1},
	{"DESK-002", "Corner Desk Unit", "L-shaped desk", "Furniture", 60, "B1-R2-S3", 3},
	{"MONITOR-001", "Dell UltraSharp 27", "27-inch 4K monitor", "Electronics", 180, "A3-R1-S1", 0},
	{"MONITOR-002", "LG 34 Ultrawide", "34-inch curved monitor", "Electronics", 95, "A1-R3-S2", 2},
	{"KEYBOARD-001", "Mechanical Keyboard RGB", "Gaming keyboard", "Electronics", 300, "A2-R2-S1", 1},
	{"MOUSE-001", "Wireless Ergonomic Mouse", "Vertical mouse", "Electronics", 250, "A2-R2-S2", 1},
	{"PRINTER-001", "HP LaserJet Pro", "Network printer", "Electronics", 45, "C1-R1-S1", 0},
	{"PRINTER-002", "Canon ImageClass", "Color laser printer", "Electronics", 30, "C1-R2-S1", 3},
	{"PHONE-001", "VoIP Desk Phone", "Business phone", "Electronics", 400, "A3-R2-S1", 0},
	{"TABLET-001", "iPad Pro 12.9", "Professional tablet", "Electronics", 120, "A1-R1-S1", 1},
	{"CABLE-001", "USB-C Cable 6ft", "Charging cable", "Accessories", 1000, "D1-R1-S1", 4},
	{"ADAPTER-001", "USB-C Hub", "Multi-port adapter", "Accessories", 500, "D1-R1-S2", 4},
	{"WHITEBOARD-001", "Mobile Whiteboard", "Rolling whiteboard", "Office Supplies", 35, "B3-R1-S1", 2},
	{"FILING-001", "4-Drawer File Cabinet", "Locking file cabinet", "Furniture", 80, "B2-R3-S1", 3},
	{"LAMP-001", "LED Desk Lamp", "Adjustable desk lamp", "Office Supplies", 150, "D2-R1-S1", 0},
	{"WEBCAM-001", "HD Webcam 1080p", "Conference camera", "Electronics", 200, "A3-R3-S1", 2},
	{"HEADSET-001", "Noise-Canceling Headset", "Wireless headset", "Electronics", 175, "A2-R3-S1", 1},
}

// SeedIfEmpty loads the demo dataset when the store holds no warehouses.
// It reports whether anything was written.
func (s *LedgerService) SeedIfEmpty(ctx context.Context) (bool, error) {
	existing, err := s.repo.ListWarehouses(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: list warehouses: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("skipping seed, store not empty", zap.Int("warehouses", len(existing)))
		return false, nil
	}

	ids := make([]string, len(seedWarehouses))
	for i, in := range seedWarehouses {
		w, err := s.CreateWarehouse(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed warehouse %q: %w", in.Name, err)
		}
		ids[i] = w.ID
	}
	for _, it := range seedItems {
		_, err := s.CreateItem(ctx, NewItem{
			SKU:             it.sku,
			Name:            it.name,
			Description:     it.description,
			Category:        it.category,
			Quantity:        it.quantity,
			StorageLocation: it.location,
			WarehouseID:     ids[it.warehouse],
		})
		if err != nil {
			return false, fmt.Errorf("seed item %s: %w", it.sku, err)
		}
	}

	s.logger.Info("seeded demo data",
		zap.Int("warehouses", len(seedWarehouses)),
		zap.Int("items", len(seedItems)),
	)
	return true, nil
}
