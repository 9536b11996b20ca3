package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
)

// MockSettingsRepo is a mock implementation of port.SettingsRepository.
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteSettings), args.Error(1)
}

func (m *MockSettingsRepo) Update(ctx context.Context, settings *domain.SiteSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
