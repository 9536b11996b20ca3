package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderExportRow is one row of the admin order export, flattened with
// customer details and item count.
type OrderExportRow struct {
	ID            uuid.UUID   `db:"id"`
	Reference     string      `db:"reference"`
	CustomerName  string      `db:"customer_name"`
	CustomerEmail string      `db:"customer_email"`
	Status        OrderStatus `db:"status"`
	TotalHT       int64       `db:"total_ht"`
	TotalVAT      int64       `db:"total_vat"`
	TotalTTC      int64       `db:"total_ttc"`
	ItemCount     int         `db:"item_count"`
	CreatedAt     time.Time   `db:"created_at"`
}
