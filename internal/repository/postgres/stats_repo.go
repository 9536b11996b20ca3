package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// revenueStatusList matches domain.RevenueStatuses; inlined so the aggregate
// queries stay single round trips without parameter expansion.
const revenueStatusList = `('PAID', 'PROCESSING', 'SHIPPED', 'DELIVERED')`

func (r *statsRepo) RevenueSince(ctx context.Context, from time.Time) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(total_ttc), 0) FROM orders
		 WHERE status IN `+revenueStatusList+` AND created_at >= $1`, from)
	if err != nil {
		return 0, fmt.Errorf("statsRepo.RevenueSince: %w", err)
	}
	return total, nil
}

func (r *statsRepo) OrderCountSince(ctx context.Context, from time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM orders WHERE created_at >= $1", from)
	if err != nil {
		return 0, fmt.Errorf("statsRepo.OrderCountSince: %w", err)
	}
	return count, nil
}

func (r *statsRepo) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	var orders []domain.RecentOrder
	err := r.db.SelectContext(ctx, &orders, `
		SELECT o.id, o.created_at, o.status, o.total_ttc,
		       u.full_name AS customer_name, u.email AS customer_email
		FROM orders o
		INNER JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.RecentOrders: %w", err)
	}
	return orders, nil
}

func (r *statsRepo) DailyRevenue(ctx context.Context, from time.Time) ([]domain.DailyRevenuePoint, error) {
	var points []domain.DailyRevenuePoint
	err := r.db.SelectContext(ctx, &points, `
		SELECT TO_CHAR(DATE_TRUNC('day', created_at), 'YYYY-MM-DD') AS date,
		       COALESCE(SUM(total_ttc), 0) AS total,
		       COUNT(*) AS orders
		FROM orders
		WHERE status IN `+revenueStatusList+` AND created_at >= $1
		GROUP BY 1
		ORDER BY 1`, from)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.DailyRevenue: %w", err)
	}
	return points, nil
}

func (r *statsRepo) ProductCounts(ctx context.Context, lowStockBelow int) (int, int, error) {
	var counts struct {
		Total    int `db:"total"`
		LowStock int `db:"low_stock"`
	}
	err := r.db.GetContext(ctx, &counts, `
		SELECT COUNT(*) AS total,
		       COUNT(CASE WHEN stock < $1 THEN 1 END) AS low_stock
		FROM products`, lowStockBelow)
	if err != nil {
		return 0, 0, fmt.Errorf("statsRepo.ProductCounts: %w", err)
	}
	return counts.Total, counts.LowStock, nil
}

func (r *statsRepo) PendingOrderCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM orders WHERE status = $1", domain.OrderStatusPending)
	if err != nil {
		return 0, fmt.Errorf("statsRepo.PendingOrderCount: %w", err)
	}
	return count, nil
}

func (r *statsRepo) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	var products []domain.TopProduct
	err := r.db.SelectContext(ctx, &products, `
		SELECT oi.product_id, p.name, p.price_ht AS unit_price_ht,
		       COALESCE(SUM(oi.quantity), 0) AS sales,
		       COUNT(DISTINCT oi.order_id) AS orders
		FROM order_items oi
		INNER JOIN products p ON p.id = oi.product_id
		GROUP BY oi.product_id, p.name, p.price_ht
		ORDER BY sales DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.TopProducts: %w", err)
	}
	return products, nil
}

func (r *statsRepo) StatusBreakdown(ctx context.Context) ([]domain.StatusCount, error) {
	var breakdown []domain.StatusCount
	err := r.db.SelectContext(ctx, &breakdown, `
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status
		ORDER BY count DESC`)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.StatusBreakdown: %w", err)
	}
	return breakdown, nil
}
