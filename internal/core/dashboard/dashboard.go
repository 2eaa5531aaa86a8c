// Package dashboard computes the aggregate figures shown on the inventory
// dashboard. Everything here is a pure function of a domain.Snapshot.
package dashboard

import (
	"sort"
	"strings"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

// DefaultThreshold is the utilization percentage above which a warehouse is
// reported as near capacity.
const DefaultThreshold = 80.0

const Uncategorized = "Uncategorized"

type CategoryQuantity struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Items    int    `json:"items"`
}

type WarehouseUsage struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	CurrentCapacity       int     `json:"currentCapacity"`
	MaxCapacity           int     `json:"maxCapacity"`
	AvailableCapacity     int     `json:"availableCapacity"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	ItemCount             int     `json:"itemCount"`
}

type Summary struct {
	TotalWarehouses    int                `json:"totalWarehouses"`
	TotalItems         int                `json:"totalItems"`
	TotalQuantity      int                `json:"totalQuantity"`
	TotalCapacity      int                `json:"totalCapacity"`
	CurrentUsage       int                `json:"currentUsage"`
	OverallUtilization float64            `json:"overallUtilization"`
	Threshold          float64            `json:"threshold"`
	NearCapacity       []WarehouseUsage   `json:"nearCapacity"`
	Warehouses         []WarehouseUsage   `json:"warehouses"`
	QuantityByCategory []CategoryQuantity `json:"quantityByCategory"`
}

// Compute builds the dashboard summary for snap.
func Compute(snap domain.Snapshot, threshold float64) Summary {
	s := Summary{
		TotalWarehouses:    len(snap.Warehouses),
		TotalItems:         len(snap.Items),
		TotalQuantity:      TotalQuantity(snap.Items),
		Threshold:          threshold,
		NearCapacity:       []WarehouseUsage{},
		Warehouses:         make([]WarehouseUsage, 0, len(snap.Warehouses)),
		QuantityByCategory: QuantityByCategory(snap.Items),
	}

	for _, w := range snap.Warehouses {
		s.TotalCapacity += w.MaxCapacity
		s.CurrentUsage += w.CurrentCapacity
		s.Warehouses = append(s.Warehouses, usage(w))
	}
	for _, w := range AboveThreshold(snap.Warehouses, threshold) {
		s.NearCapacity = append(s.NearCapacity, usage(w))
	}
	s.OverallUtilization = OverallUtilization(snap.Warehouses)
	return s
}

func TotalQuantity(items []domain.InventoryItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// OverallUtilization is sum(current)/sum(max)*100, or 0 without capacity.
func OverallUtilization(ws []domain.Warehouse) float64 {
	var current, capacity int64
	for _, w := range ws {
		current += int64(w.CurrentCapacity)
		capacity += int64(w.MaxCapacity)
	}
	return domain.Percentage(current, capacity)
}

// AboveThreshold returns warehouses whose utilization is strictly greater than threshold.
func AboveThreshold(ws []domain.Warehouse, threshold float64) []domain.Warehouse {
	var out []domain.Warehouse
	for _, w := range ws {
		if w.UtilizationPercentage() > threshold {
			out = append(out, w)
		}
	}
	return out
}

// QuantityByCategory groups quantities by category, sorted by category name.
// Blank categories land in Uncategorized.
func QuantityByCategory(items []domain.InventoryItem) []CategoryQuantity {
	byCat := make(map[string]*CategoryQuantity)
	for _, it := range items {
		cat := strings.TrimSpace(it.Category)
		if cat == "" {
			cat = Uncategorized
		}
		cq, ok := byCat[cat]
		if !ok {
			cq = &CategoryQuantity{Category: cat}
			byCat[cat] = cq
		}
		cq.Quantity += it.Quantity
		cq.Items++
	}

	out := make([]CategoryQuantity, 0, len(byCat))
	for _, cq := range byCat {
		out = append(out, *cq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func usage(w domain.Warehouse) WarehouseUsage {
	return WarehouseUsage{
		ID:                    w.ID,
		Name:                  w.Name,
		CurrentCapacity:       w.CurrentCapacity,
		MaxCapacity:           w.MaxCapacity,
		AvailableCapacity:     w.AvailableCapacity(),
		UtilizationPercentage: w.UtilizationPercentage(),
		ItemCount:             w.ItemCount,
	}
}
