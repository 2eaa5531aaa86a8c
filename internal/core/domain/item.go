package domain

import "time"

// InventoryItem belongs to exactly one warehouse at a time. WarehouseName is
// joined in on reads for display.
type InventoryItem struct {
	ID              string
	SKU             string
	Name            string
	Description     string
	Category        string
	Quantity        int
	StorageLocation string
	WarehouseID     string
	WarehouseName   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemFilter narrows catalog searches. An empty Term means no text filter and
// an empty WarehouseID means every warehouse.
type ItemFilter struct {
	Term        string
	WarehouseID string
}
