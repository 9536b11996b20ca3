package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ejsmarket/internal/domain"
)

func sampleRow() domain.OrderExportRow {
	return domain.OrderExportRow{
		ID:            uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Reference:     "EJS-20260315-A1B2C3D4",
		CustomerName:  "Claire Client",
		CustomerEmail: "claire@example.fr",
		Status:        domain.OrderStatusPaid,
		TotalHT:       2000,
		TotalVAT:      400,
		TotalTTC:      2400,
		ItemCount:     2,
		CreatedAt:     time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestCSVWriter_HeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	assert.NoError(t, w.WriteHeader())
	assert.NoError(t, w.WriteOrders([]domain.OrderExportRow{sampleRow()}))
	w.Flush()
	assert.NoError(t, w.Error())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Order ID,Reference,Customer Name,Customer Email,Status,Total HT,Total VAT,Total TTC,Item Count,Created At", lines[0])
	assert.Contains(t, lines[1], "EJS-20260315-A1B2C3D4")
	assert.Contains(t, lines[1], "PAID")
	assert.Contains(t, lines[1], "20.00")
	assert.Contains(t, lines[1], "24.00")
	assert.Contains(t, lines[1], "2026-03-15T10:00:00Z")
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "12.50", formatCents(1250))
	assert.Equal(t, "-3.07", formatCents(-307))
}

func TestOrderToRow(t *testing.T) {
	row := sampleRow()
	fields := orderToRow(&row)

	assert.Len(t, fields, len(columns))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", fields[0])
	assert.Equal(t, "Claire Client", fields[2])
	assert.Equal(t, "4.00", fields[6])
	assert.Equal(t, "2", fields[8])
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("csv")
	assert.True(t, strings.HasPrefix(name, "orders_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}

func TestWriteOrdersXLSX_ProducesWorkbook(t *testing.T) {
	var buf bytes.Buffer

	err := WriteOrdersXLSX(&buf, []domain.OrderExportRow{sampleRow()})

	assert.NoError(t, err)
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
