package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"ejsmarket/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Order ID",
	"Reference",
	"Customer Name",
	"Customer Email",
	"Status",
	"Total HT",
	"Total VAT",
	"Total TTC",
	"Item Count",
	"Created At",
}

// CSVWriter wraps csv.Writer for exporting orders as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteOrders converts a batch of order rows to CSV and writes them.
func (w *CSVWriter) WriteOrders(rows []domain.OrderExportRow) error {
	for i := range rows {
		if err := w.csv.Write(orderToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func orderToRow(row *domain.OrderExportRow) []string {
	return []string{
		row.ID.String(),
		row.Reference,
		row.CustomerName,
		row.CustomerEmail,
		string(row.Status),
		formatCents(row.TotalHT),
		formatCents(row.TotalVAT),
		formatCents(row.TotalTTC),
		strconv.Itoa(row.ItemCount),
		row.CreatedAt.Format(time.RFC3339),
	}
}

// formatCents renders integer cents as a decimal amount with two places.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// BuildFilename returns a filename for the Content-Disposition header.
// Format: orders_{YYYY-MM-DD}.{ext}
func BuildFilename(ext string) string {
	return fmt.Sprintf("orders_%s.%s", time.Now().Format("2006-01-02"), ext)
}
