package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"ejsmarket/internal/domain"
)

const ordersSheet = "Orders"

// WriteOrdersXLSX renders the order rows as a single-sheet workbook and
// writes it to w.
func WriteOrdersXLSX(w io.Writer, rows []domain.OrderExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ordersSheet)
	if err != nil {
		return fmt.Errorf("export.WriteOrdersXLSX: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export.WriteOrdersXLSX: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return fmt.Errorf("export.WriteOrdersXLSX: %w", err)
	}

	for i := range rows {
		row := &rows[i]
		cells := []interface{}{
			row.ID.String(),
			row.Reference,
			row.CustomerName,
			row.CustomerEmail,
			string(row.Status),
			float64(row.TotalHT) / 100,
			float64(row.TotalVAT) / 100,
			float64(row.TotalTTC) / 100,
			row.ItemCount,
			row.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ordersSheet, cell, &cells); err != nil {
			return fmt.Errorf("export.WriteOrdersXLSX: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteOrdersXLSX: %w", err)
	}
	return nil
}
