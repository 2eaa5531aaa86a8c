package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

// WarehouseInput carries the writable warehouse fields for create and update.
type WarehouseInput struct {
	Name        string `json:"name" validate:"notblank"`
	Location    string `json:"location" validate:"notblank"`
	MaxCapacity int    `json:"maxCapacity" validate:"min=1,max=2147483647"`
}

// NewItem carries the fields of an item to create.
type NewItem struct {
	SKU             string `json:"sku" validate:"notblank"`
	Name            string `json:"name" validate:"notblank"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Quantity        int    `json:"quantity" validate:"min=0,max=2147483647"`
	StorageLocation string `json:"storageLocation"`
	WarehouseID     string `json:"warehouseId" validate:"notblank"`
}

// ItemChanges replaces the mutable fields of an item. SKU may be left empty;
// when set it must equal the stored SKU.
type ItemChanges struct {
	SKU             string `json:"sku"`
	Name            string `json:"name" validate:"notblank"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Quantity        int    `json:"quantity" validate:"min=0,max=2147483647"`
	StorageLocation string `json:"storageLocation"`
	WarehouseID     string `json:"warehouseId" validate:"notblank"`
}

var fieldMessages = map[string]string{
	"WarehouseInput.name.notblank":     "Warehouse name is required",
	"WarehouseInput.location.notblank": "Location is required",
	"WarehouseInput.maxCapacity.min":   "Maximum capacity must be at least 1",
	"WarehouseInput.maxCapacity.max":   "Maximum capacity cannot exceed 2147483647",
	"NewItem.sku.notblank":             "SKU is required",
	"NewItem.name.notblank":            "Item name is required",
	"NewItem.quantity.min":             "Quantity cannot be negative",
	"NewItem.quantity.max":             "Quantity cannot exceed 2147483647",
	"NewItem.warehouseId.notblank":     "Warehouse ID is required",
	"ItemChanges.name.notblank":        "Item name is required",
	"ItemChanges.quantity.min":         "Quantity cannot be negative",
	"ItemChanges.quantity.max":         "Quantity cannot exceed 2147483647",
	"ItemChanges.warehouseId.notblank": "Warehouse ID is required",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validate collects every field failure of s into one validation error.
func (s *LedgerService) validate(in any) error {
	err := s.validator.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace() + "." + fe.Tag()
		msg, ok := fieldMessages[key]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		fields[fe.Field()] = msg
	}
	return domain.NewValidationError(fields)
}
