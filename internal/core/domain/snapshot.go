package domain

// Snapshot is a consistent read of every warehouse and item.
type Snapshot struct {
	Warehouses []Warehouse
	Items      []InventoryItem
}
