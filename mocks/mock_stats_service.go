package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
)

// MockStatsService is a mock implementation of service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetDashboardStats(ctx context.Context, role domain.Role) (*domain.DashboardStats, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
