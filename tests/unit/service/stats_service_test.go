package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

const lowStockThreshold = 5

// fixedClock pins the dashboard snapshot to an afternoon in mid-March.
var fixedNow = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func emptyStatsExpectations(repo *mocks.MockStatsRepo) {
	repo.On("RevenueSince", mock.Anything, mock.Anything).Return(int64(0), nil)
	repo.On("OrderCountSince", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("ProductCounts", mock.Anything, lowStockThreshold).Return(0, 0, nil)
	repo.On("PendingOrderCount", mock.Anything).Return(0, nil)
	repo.On("RecentOrders", mock.Anything, 5).Return([]domain.RecentOrder{}, nil)
	repo.On("DailyRevenue", mock.Anything, mock.Anything).Return([]domain.DailyRevenuePoint{}, nil)
	repo.On("StatusBreakdown", mock.Anything).Return([]domain.StatusCount{}, nil)
}

func TestStatsService_AdminGetsFullSnapshot(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)

	startOfToday := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	mockRepo.On("RevenueSince", mock.Anything, startOfToday).Return(int64(12500), nil)
	mockRepo.On("RevenueSince", mock.Anything, fixedNow.AddDate(0, 0, -7)).Return(int64(84000), nil)
	mockRepo.On("RevenueSince", mock.Anything, fixedNow.AddDate(0, 0, -30)).Return(int64(312000), nil)
	mockRepo.On("RevenueSince", mock.Anything, fixedNow.AddDate(0, 0, -365)).Return(int64(4100000), nil)
	mockRepo.On("OrderCountSince", mock.Anything, startOfToday).Return(3, nil)
	mockRepo.On("OrderCountSince", mock.Anything, fixedNow.AddDate(0, 0, -7)).Return(21, nil)
	mockRepo.On("OrderCountSince", mock.Anything, fixedNow.AddDate(0, 0, -30)).Return(90, nil)
	mockRepo.On("ProductCounts", mock.Anything, lowStockThreshold).Return(42, 4, nil)
	mockRepo.On("PendingOrderCount", mock.Anything).Return(7, nil)
	mockRepo.On("TopProducts", mock.Anything, 5).Return([]domain.TopProduct{
		{Name: domain.LocalizedText{Fr: "Huile d'olive"}, Sales: 120, Orders: 48},
	}, nil)
	mockRepo.On("RecentOrders", mock.Anything, 5).Return([]domain.RecentOrder{
		{CustomerName: "Claire Client", TotalTTC: 4500},
	}, nil)
	mockRepo.On("DailyRevenue", mock.Anything, startOfToday.AddDate(0, 0, -29)).
		Return([]domain.DailyRevenuePoint{}, nil)
	mockRepo.On("StatusBreakdown", mock.Anything).Return([]domain.StatusCount{
		{Status: domain.OrderStatusPaid, Count: 12},
	}, nil)

	stats, err := svc.GetDashboardStats(context.Background(), domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, int64(12500), stats.Revenue.Today)
	assert.Equal(t, int64(84000), stats.Revenue.Week)
	assert.Equal(t, int64(312000), stats.Revenue.Month)
	assert.Equal(t, int64(4100000), stats.Revenue.Year)
	assert.Equal(t, 3, stats.Orders.Today)
	assert.Equal(t, 21, stats.Orders.Week)
	assert.Equal(t, 90, stats.Orders.Month)
	assert.Equal(t, 42, stats.Products.Total)
	assert.Equal(t, 4, stats.Products.LowStock)
	assert.Equal(t, 7, stats.PendingOrders)
	assert.Len(t, stats.TopProducts, 1)
	assert.Len(t, stats.RecentOrders, 1)
	assert.Len(t, stats.DailyRevenue, 30)
	assert.Len(t, stats.StatusBreakdown, 1)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_ManagerDeniedTopProducts(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)
	emptyStatsExpectations(mockRepo)

	stats, err := svc.GetDashboardStats(context.Background(), domain.RoleManager)

	assert.NoError(t, err)
	assert.NotNil(t, stats.TopProducts)
	assert.Empty(t, stats.TopProducts)
	mockRepo.AssertNotCalled(t, "TopProducts", mock.Anything, mock.Anything)
}

func TestStatsService_CustomerForbiddenBeforeAnyQuery(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)

	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleB2BCustomer, ""} {
		stats, err := svc.GetDashboardStats(context.Background(), role)
		assert.ErrorIs(t, err, domain.ErrForbidden, "role %q", role)
		assert.Nil(t, stats)
	}
	mockRepo.AssertNotCalled(t, "RevenueSince", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "TopProducts", mock.Anything, mock.Anything)
}

func TestStatsService_EmptyStoreYieldsZeroes(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)
	emptyStatsExpectations(mockRepo)
	mockRepo.On("TopProducts", mock.Anything, 5).Return([]domain.TopProduct{}, nil)

	stats, err := svc.GetDashboardStats(context.Background(), domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Revenue.Today)
	assert.Equal(t, int64(0), stats.Revenue.Year)
	assert.Equal(t, 0, stats.Orders.Month)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.Len(t, stats.DailyRevenue, 30)
	for _, p := range stats.DailyRevenue {
		assert.Equal(t, int64(0), p.Total)
		assert.Equal(t, 0, p.Orders)
	}
}

func TestStatsService_DailySeriesZeroFilledAroundSparseDays(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)

	seriesStart := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -29)

	mockRepo.On("RevenueSince", mock.Anything, mock.Anything).Return(int64(0), nil)
	mockRepo.On("OrderCountSince", mock.Anything, mock.Anything).Return(0, nil)
	mockRepo.On("ProductCounts", mock.Anything, lowStockThreshold).Return(0, 0, nil)
	mockRepo.On("PendingOrderCount", mock.Anything).Return(0, nil)
	mockRepo.On("TopProducts", mock.Anything, 5).Return([]domain.TopProduct{}, nil)
	mockRepo.On("RecentOrders", mock.Anything, 5).Return([]domain.RecentOrder{}, nil)
	mockRepo.On("StatusBreakdown", mock.Anything).Return([]domain.StatusCount{}, nil)
	mockRepo.On("DailyRevenue", mock.Anything, seriesStart).Return([]domain.DailyRevenuePoint{
		{Date: "2026-03-01", Total: 9900, Orders: 2},
		{Date: "2026-03-15", Total: 12500, Orders: 3},
	}, nil)

	stats, err := svc.GetDashboardStats(context.Background(), domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Len(t, stats.DailyRevenue, 30)

	assert.Equal(t, "2026-02-14", stats.DailyRevenue[0].Date)
	assert.Equal(t, "2026-03-15", stats.DailyRevenue[29].Date)

	byDate := make(map[string]domain.DailyRevenuePoint)
	for _, p := range stats.DailyRevenue {
		byDate[p.Date] = p
	}
	assert.Equal(t, int64(9900), byDate["2026-03-01"].Total)
	assert.Equal(t, 2, byDate["2026-03-01"].Orders)
	assert.Equal(t, int64(12500), byDate["2026-03-15"].Total)
	assert.Equal(t, int64(0), byDate["2026-03-14"].Total)
	assert.Equal(t, 0, byDate["2026-03-14"].Orders)
	assert.NotEmpty(t, stats.DailyRevenue[0].Label)
}

func TestStatsService_TodayWindowStartsAtMidnight(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)
	emptyStatsExpectations(mockRepo)
	mockRepo.On("TopProducts", mock.Anything, 5).Return([]domain.TopProduct{}, nil)

	_, err := svc.GetDashboardStats(context.Background(), domain.RoleAdmin)
	assert.NoError(t, err)

	midnight := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	mockRepo.AssertCalled(t, "RevenueSince", mock.Anything, midnight)
	mockRepo.AssertCalled(t, "OrderCountSince", mock.Anything, midnight)
}

func TestStatsService_RepoErrorAbortsSnapshot(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(mockRepo, lowStockThreshold, fixedClock)

	mockRepo.On("RevenueSince", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	stats, err := svc.GetDashboardStats(context.Background(), domain.RoleAdmin)

	assert.Error(t, err)
	assert.Nil(t, stats)
}
