package domain

import (
	"time"

	"github.com/google/uuid"
)

// RevenueStats holds tax-inclusive revenue sums in cents over rolling windows.
type RevenueStats struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
	Year  int64 `json:"year"`
}

// OrderCountStats holds order counts (any status) over rolling windows.
type OrderCountStats struct {
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
}

// ProductCountStats holds catalog size and low-stock counts.
type ProductCountStats struct {
	Total    int `json:"total"`
	LowStock int `json:"low_stock"`
}

// DailyRevenuePoint is one day of the trailing 30-day revenue series.
// Days with no qualifying orders report zeros rather than being omitted.
type DailyRevenuePoint struct {
	Date   string `db:"date" json:"date"`
	Label  string `db:"-" json:"label"`
	Total  int64  `db:"total" json:"total"`
	Orders int    `db:"orders" json:"orders"`
}

// RecentOrder is a compact order row for the dashboard activity feed.
type RecentOrder struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	Status        OrderStatus `db:"status" json:"status"`
	TotalTTC      int64       `db:"total_ttc" json:"total_ttc"`
	CustomerName  string      `db:"customer_name" json:"customer_name"`
	CustomerEmail string      `db:"customer_email" json:"customer_email"`
}

// TopProduct is one entry of the best-sellers ranking by quantity sold.
type TopProduct struct {
	ProductID   uuid.UUID     `db:"product_id" json:"product_id"`
	Name        LocalizedText `db:"name" json:"name"`
	UnitPriceHT int64         `db:"unit_price_ht" json:"unit_price_ht"`
	Sales       int           `db:"sales" json:"sales"`
	Orders      int           `db:"orders" json:"orders"`
}

// StatusCount is one entry of the order status histogram. Only statuses
// actually present in the data appear.
type StatusCount struct {
	Status OrderStatus `db:"status" json:"status"`
	Count  int         `db:"count" json:"count"`
}

// DashboardStats is the full statistics document returned by the admin
// dashboard endpoint. Every field is always present; list fields are empty
// slices rather than null when there is nothing to report.
type DashboardStats struct {
	Revenue         RevenueStats        `json:"revenue"`
	Orders          OrderCountStats     `json:"orders"`
	Products        ProductCountStats   `json:"products"`
	PendingOrders   int                 `json:"pendingOrders"`
	TopProducts     []TopProduct        `json:"topProducts"`
	RecentOrders    []RecentOrder       `json:"recentOrders"`
	DailyRevenue    []DailyRevenuePoint `json:"dailyRevenue"`
	StatusBreakdown []StatusCount       `json:"statusBreakdown"`
}
