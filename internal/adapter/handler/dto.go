package handler

import (
	"time"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

type WarehouseResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Location              string    `json:"location"`
	MaxCapacity           int       `json:"maxCapacity"`
	CurrentCapacity       int       `json:"currentCapacity"`
	AvailableCapacity     int       `json:"availableCapacity"`
	UtilizationPercentage float64   `json:"utilizationPercentage"`
	ItemCount             int       `json:"itemCount"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type ItemResponse struct {
	ID              string    `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	StorageLocation string    `json:"storageLocation"`
	WarehouseID     string    `json:"warehouseId"`
	WarehouseName   string    `json:"warehouseName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TransferHTTPRequest struct {
	ItemID                 string `json:"itemId"`
	SourceWarehouseID      string `json:"sourceWarehouseId"`
	DestinationWarehouseID string `json:"destinationWarehouseId"`
	Quantity               int    `json:"quantity"`
	IdempotencyKey         string `json:"idempotencyKey,omitempty"`
}

type TransferHTTPResponse struct {
	Mode        string        `json:"mode"`
	Quantity    int           `json:"quantity"`
	Source      *ItemResponse `json:"source,omitempty"`
	Destination ItemResponse  `json:"destination"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Timestamp        time.Time         `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

func toWarehouseResponse(w domain.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:                    w.ID,
		Name:                  w.Name,
		Location:              w.Location,
		MaxCapacity:           w.MaxCapacity,
		CurrentCapacity:       w.CurrentCapacity,
		AvailableCapacity:     w.AvailableCapacity(),
		UtilizationPercentage: w.UtilizationPercentage(),
		ItemCount:             w.ItemCount,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
	}
}

func toWarehouseResponses(ws []domain.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWarehouseResponse(w))
	}
	return out
}

func toItemResponse(it domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:              it.ID,
		SKU:             it.SKU,
		Name:            it.Name,
		Description:     it.Description,
		Category:        it.Category,
		Quantity:        it.Quantity,
		StorageLocation: it.StorageLocation,
		WarehouseID:     it.WarehouseID,
		WarehouseName:   it.WarehouseName,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

func toItemResponses(items []domain.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toTransferResponse(res domain.TransferResult) TransferHTTPResponse {
	out := TransferHTTPResponse{
		Mode:        string(res.Mode),
		Quantity:    res.Quantity,
		Destination: toItemResponse(res.Destination),
	}
	if res.Source != nil {
		src := toItemResponse(*res.Source)
		out.Source = &src
	}
	return out
}
