package domain

type TransferRequest struct {
	ItemID                 string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Quantity               int
	// IdempotencyKey is optional; when set a repeated key is rejected.
	IdempotencyKey string
}

type TransferMode string

const (
	// TransferMove reassigns the whole item to the destination.
	TransferMove TransferMode = "move"
	// TransferSplit decrements the source and creates a new destination item.
	TransferSplit TransferMode = "split"
	// TransferMerge adds the quantity to the destination item with the same SKU.
	TransferMerge TransferMode = "merge"
)

// TransferResult describes the committed effect of a transfer. Source is nil
// when the whole item left the source warehouse.
type TransferResult struct {
	Mode        TransferMode
	Quantity    int
	Source      *InventoryItem
	Destination InventoryItem
}
