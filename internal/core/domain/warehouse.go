package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse is a warehouse row plus the usage figures derived from the
// items assigned to it. CurrentCapacity and ItemCount are filled in by the
// repository at read time and are never persisted.
type Warehouse struct {
	ID          string
	Name        string
	Location    string
	MaxCapacity int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CurrentCapacity int
	ItemCount       int
}

func (w Warehouse) AvailableCapacity() int {
	return w.MaxCapacity - w.CurrentCapacity
}

// HasCapacity reports whether qty more units fit.
func (w Warehouse) HasCapacity(qty int) bool {
	return qty <= w.AvailableCapacity()
}

// UtilizationPercentage is CurrentCapacity/MaxCapacity*100 rounded to two places.
func (w Warehouse) UtilizationPercentage() float64 {
	return Percentage(int64(w.CurrentCapacity), int64(w.MaxCapacity))
}

// Percentage returns part/whole*100 rounded to two decimal places, 0 when
// whole is not positive.
func Percentage(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(whole)).
		Round(2).
		InexactFloat64()
}
