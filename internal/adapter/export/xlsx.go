// Package export renders ledger snapshots as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

const (
	WarehousesSheet = "Warehouses"
	ItemsSheet      = "Items"
	ContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	warehouseHeader = []interface{}{
		"ID", "Name", "Location", "Max Capacity", "Current Capacity", "Available", "Utilization %", "Items",
	}
	itemHeader = []interface{}{
		"ID", "SKU", "Name", "Description", "Category", "Quantity", "Storage Location", "Warehouse ID", "Warehouse",
	}
)

// WriteWorkbook writes one sheet of warehouses and one of items.
func WriteWorkbook(w io.Writer, snap domain.Snapshot) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), WarehousesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return fmt.Errorf("create items sheet: %w", err)
	}

	rows := make([][]interface{}, 0, len(snap.Warehouses))
	for _, wh := range snap.Warehouses {
		rows = append(rows, []interface{}{
			wh.ID,
			wh.Name,
			wh.Location,
			wh.MaxCapacity,
			wh.CurrentCapacity,
			wh.AvailableCapacity(),
			wh.UtilizationPercentage(),
			wh.ItemCount,
		})
	}
	if err := writeSheet(f, WarehousesSheet, warehouseHeader, rows); err != nil {
		return err
	}

	rows = make([][]interface{}, 0, len(snap.Items))
	for _, it := range snap.Items {
		rows = append(rows, []interface{}{
			it.ID,
			it.SKU,
			it.Name,
			it.Description,
			it.Category,
			it.Quantity,
			it.StorageLocation,
			it.WarehouseID,
			it.WarehouseName,
		})
	}
	if err := writeSheet(f, ItemsSheet, itemHeader, rows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
