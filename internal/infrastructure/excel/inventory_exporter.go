// Package excel genera el export XLSX del inventario por ubicación.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jpcastillo/warehouse-api/internal/application/stock"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ stock.InventoryExporter = (*InventoryExporter)(nil)

// InventoryExporter implementa stock.InventoryExporter usando excelize.
type InventoryExporter struct{}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter() *InventoryExporter { return &InventoryExporter{} }

const sheetName = "Inventario"

// ExportInventory genera el workbook con una fila por (ubicación, producto, lote).
func (e *InventoryExporter) ExportInventory(_ context.Context, rows []repository.LocationInventoryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Ubicazione", "Corsia", "Scaffale", "Livello", "Posto", "SKU", "Prodotto", "Lotto", "Quantità", "Riservata"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("excel: coordenada: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{row.LocationBarcode, row.Aisle, row.Rack, row.Level, row.Bin,
			row.ProductSKU, row.ProductName, row.LotNumber, row.Quantity, row.Reserved}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("excel: coordenada: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: celda: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir workbook: %w", err)
	}
	return buf.Bytes(), nil
}
