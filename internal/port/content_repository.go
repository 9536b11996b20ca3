package port

import (
	"context"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
)

// ContentRepository defines persistence operations for storefront marketing
// content (hero banners, testimonials, partner logos).
type ContentRepository interface {
	ListBanners(ctx context.Context, activeOnly bool) ([]domain.HeroBanner, error)
	CreateBanner(ctx context.Context, banner *domain.HeroBanner) error
	UpdateBanner(ctx context.Context, banner *domain.HeroBanner) error
	DeleteBanner(ctx context.Context, bannerID uuid.UUID) error

	ListTestimonials(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error
	UpdateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error
	DeleteTestimonial(ctx context.Context, testimonialID uuid.UUID) error

	ListPartners(ctx context.Context, activeOnly bool) ([]domain.Partner, error)
	CreatePartner(ctx context.Context, partner *domain.Partner) error
	UpdatePartner(ctx context.Context, partner *domain.Partner) error
	DeletePartner(ctx context.Context, partnerID uuid.UUID) error
}
