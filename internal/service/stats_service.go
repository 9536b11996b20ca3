package service

import (
	"context"
	"fmt"
	"time"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

const (
	dailyWindowDays   = 30
	topProductsLimit  = 5
	recentOrdersLimit = 5
)

// StatsService assembles the admin dashboard snapshot.
type StatsService interface {
	GetDashboardStats(ctx context.Context, role domain.Role) (*domain.DashboardStats, error)
}

type statsService struct {
	statsRepo         port.StatsRepository
	lowStockThreshold int
	now               func() time.Time
}

// NewStatsService creates a new StatsService implementation. A nil clock
// defaults to time.Now.
func NewStatsService(statsRepo port.StatsRepository, lowStockThreshold int, clock func() time.Time) StatsService {
	if clock == nil {
		clock = time.Now
	}
	return &statsService{
		statsRepo:         statsRepo,
		lowStockThreshold: lowStockThreshold,
		now:               clock,
	}
}

func (s *statsService) GetDashboardStats(ctx context.Context, role domain.Role) (*domain.DashboardStats, error) {
	if !domain.CanViewSalesStats(role) {
		return nil, domain.ErrForbidden
	}

	// All windows derive from a single snapshot of the clock so the figures
	// are mutually consistent.
	now := s.now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)
	yearStart := now.AddDate(0, 0, -365)

	stats := &domain.DashboardStats{}

	var err error
	if stats.Revenue.Today, err = s.statsRepo.RevenueSince(ctx, startOfToday); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.Revenue.Week, err = s.statsRepo.RevenueSince(ctx, weekStart); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.Revenue.Month, err = s.statsRepo.RevenueSince(ctx, monthStart); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.Revenue.Year, err = s.statsRepo.RevenueSince(ctx, yearStart); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}

	if stats.Orders.Today, err = s.statsRepo.OrderCountSince(ctx, startOfToday); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.Orders.Week, err = s.statsRepo.OrderCountSince(ctx, weekStart); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.Orders.Month, err = s.statsRepo.OrderCountSince(ctx, monthStart); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}

	total, lowStock, err := s.statsRepo.ProductCounts(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	stats.Products = domain.ProductCountStats{Total: total, LowStock: lowStock}

	if stats.PendingOrders, err = s.statsRepo.PendingOrderCount(ctx); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}

	// Ranking individual products is reserved to roles holding the full
	// stats permission; managers get the revenue figures without it.
	stats.TopProducts = []domain.TopProduct{}
	if domain.CanViewAllStats(role) {
		if stats.TopProducts, err = s.statsRepo.TopProducts(ctx, topProductsLimit); err != nil {
			return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
		}
		if stats.TopProducts == nil {
			stats.TopProducts = []domain.TopProduct{}
		}
	}

	if stats.RecentOrders, err = s.statsRepo.RecentOrders(ctx, recentOrdersLimit); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.RecentOrders == nil {
		stats.RecentOrders = []domain.RecentOrder{}
	}

	seriesStart := startOfToday.AddDate(0, 0, -(dailyWindowDays - 1))
	sparse, err := s.statsRepo.DailyRevenue(ctx, seriesStart)
	if err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	stats.DailyRevenue = fillDailySeries(seriesStart, dailyWindowDays, sparse)

	if stats.StatusBreakdown, err = s.statsRepo.StatusBreakdown(ctx); err != nil {
		return nil, fmt.Errorf("stats.GetDashboardStats: %w", err)
	}
	if stats.StatusBreakdown == nil {
		stats.StatusBreakdown = []domain.StatusCount{}
	}

	return stats, nil
}

// fillDailySeries expands a sparse per-day aggregation into a dense series of
// exactly days points, oldest first, with zero totals for days without orders.
func fillDailySeries(start time.Time, days int, sparse []domain.DailyRevenuePoint) []domain.DailyRevenuePoint {
	byDate := make(map[string]domain.DailyRevenuePoint, len(sparse))
	for _, p := range sparse {
		byDate[p.Date] = p
	}

	series := make([]domain.DailyRevenuePoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		point := domain.DailyRevenuePoint{Date: key}
		if found, ok := byDate[key]; ok {
			point.Total = found.Total
			point.Orders = found.Orders
		}
		point.Label = day.Format("02 Jan")
		series = append(series, point)
	}
	return series
}
