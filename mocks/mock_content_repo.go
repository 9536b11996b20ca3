package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
)

// MockContentRepo is a mock implementation of port.ContentRepository.
type MockContentRepo struct {
	mock.Mock
}

func (m *MockContentRepo) ListBanners(ctx context.Context, activeOnly bool) ([]domain.HeroBanner, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeroBanner), args.Error(1)
}

func (m *MockContentRepo) CreateBanner(ctx context.Context, banner *domain.HeroBanner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockContentRepo) UpdateBanner(ctx context.Context, banner *domain.HeroBanner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockContentRepo) DeleteBanner(ctx context.Context, bannerID uuid.UUID) error {
	args := m.Called(ctx, bannerID)
	return args.Error(0)
}

func (m *MockContentRepo) ListTestimonials(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *MockContentRepo) CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockContentRepo) UpdateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockContentRepo) DeleteTestimonial(ctx context.Context, testimonialID uuid.UUID) error {
	args := m.Called(ctx, testimonialID)
	return args.Error(0)
}

func (m *MockContentRepo) ListPartners(ctx context.Context, activeOnly bool) ([]domain.Partner, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockContentRepo) CreatePartner(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockContentRepo) UpdatePartner(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockContentRepo) DeletePartner(ctx context.Context, partnerID uuid.UUID) error {
	args := m.Called(ctx, partnerID)
	return args.Error(0)
}
