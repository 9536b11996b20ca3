package port

import (
	"context"
	"time"

	"ejsmarket/internal/domain"
)

// StatsRepository defines the aggregate queries backing the admin dashboard.
// All monetary results are tax-inclusive integer cents.
type StatsRepository interface {
	// RevenueSince sums total_ttc over revenue-generating orders created at
	// or after from. Returns 0 when nothing matches.
	RevenueSince(ctx context.Context, from time.Time) (int64, error)
	// OrderCountSince counts orders of any status created at or after from.
	OrderCountSince(ctx context.Context, from time.Time) (int, error)
	// RecentOrders returns the most recently created orders with buyer details.
	RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error)
	// DailyRevenue groups revenue-generating orders created at or after from
	// by calendar day. Days without orders are absent from the result.
	DailyRevenue(ctx context.Context, from time.Time) ([]domain.DailyRevenuePoint, error)
	// ProductCounts returns the total product count and the count of products
	// with stock strictly below lowStockBelow.
	ProductCounts(ctx context.Context, lowStockBelow int) (total, lowStock int, err error)
	PendingOrderCount(ctx context.Context) (int, error)
	// TopProducts ranks products by total line-item quantity sold.
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	// StatusBreakdown counts orders per status actually present in the data.
	StatusBreakdown(ctx context.Context) ([]domain.StatusCount, error)
}
