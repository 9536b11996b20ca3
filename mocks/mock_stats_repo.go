package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) RevenueSince(ctx context.Context, from time.Time) (int64, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) OrderCountSince(ctx context.Context, from time.Time) (int, error) {
	args := m.Called(ctx, from)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepo) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentOrder), args.Error(1)
}

func (m *MockStatsRepo) DailyRevenue(ctx context.Context, from time.Time) ([]domain.DailyRevenuePoint, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRevenuePoint), args.Error(1)
}

func (m *MockStatsRepo) ProductCounts(ctx context.Context, lowStockBelow int) (int, int, error) {
	args := m.Called(ctx, lowStockBelow)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockStatsRepo) PendingOrderCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepo) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopProduct), args.Error(1)
}

func (m *MockStatsRepo) StatusBreakdown(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}
