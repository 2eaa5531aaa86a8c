package domain

import "time"

type ActivityType string

const (
	ActivityCreated          ActivityType = "CREATED"
	ActivityStockAdded       ActivityType = "STOCK_ADDED"
	ActivityStockRemoved     ActivityType = "STOCK_REMOVED"
	ActivityTransferred      ActivityType = "TRANSFERRED"
	ActivityUpdated          ActivityType = "UPDATED"
	ActivityDeleted          ActivityType = "DELETED"
	ActivityWarehouseCreated ActivityType = "WAREHOUSE_CREATED"
	ActivityWarehouseUpdated ActivityType = "WAREHOUSE_UPDATED"
	ActivityWarehouseDeleted ActivityType = "WAREHOUSE_DELETED"
)

// Activity is one entry of the append-only audit trail.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	ItemName    string       `json:"itemName,omitempty"`
	SKU         string       `json:"sku,omitempty"`
	Warehouse   string       `json:"warehouse,omitempty"`
	Quantity    int          `json:"quantity,omitempty"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}
