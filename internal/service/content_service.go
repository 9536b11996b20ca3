package service

import (
	"context"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

// HeroBannerInput is the DTO for banner create and update requests.
type HeroBannerInput struct {
	Title    domain.LocalizedText `json:"title" binding:"required"`
	Subtitle domain.LocalizedText `json:"subtitle"`
	ImageURL string               `json:"image_url" binding:"required"`
	LinkURL  string               `json:"link_url"`
	Position int                  `json:"position"`
	IsActive bool                 `json:"is_active"`
}

// TestimonialInput is the DTO for testimonial create and update requests.
type TestimonialInput struct {
	AuthorName string               `json:"author_name" binding:"required"`
	Quote      domain.LocalizedText `json:"quote" binding:"required"`
	Rating     int                  `json:"rating" binding:"required"`
	Position   int                  `json:"position"`
	IsActive   bool                 `json:"is_active"`
}

// PartnerInput is the DTO for partner create and update requests.
type PartnerInput struct {
	Name     string `json:"name" binding:"required"`
	LogoURL  string `json:"logo_url" binding:"required"`
	SiteURL  string `json:"site_url"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

// HomeContent bundles everything the storefront landing page needs.
type HomeContent struct {
	Banners      []domain.HeroBanner  `json:"banners"`
	Testimonials []domain.Testimonial `json:"testimonials"`
	Partners     []domain.Partner     `json:"partners"`
}

// ContentService defines storefront marketing content operations.
type ContentService interface {
	GetHomeContent(ctx context.Context) (*HomeContent, error)

	ListBanners(ctx context.Context) ([]domain.HeroBanner, error)
	CreateBanner(ctx context.Context, input HeroBannerInput) (*domain.HeroBanner, error)
	UpdateBanner(ctx context.Context, bannerID uuid.UUID, input HeroBannerInput) (*domain.HeroBanner, error)
	DeleteBanner(ctx context.Context, bannerID uuid.UUID) error

	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, input TestimonialInput) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonialID uuid.UUID, input TestimonialInput) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, testimonialID uuid.UUID) error

	ListPartners(ctx context.Context) ([]domain.Partner, error)
	CreatePartner(ctx context.Context, input PartnerInput) (*domain.Partner, error)
	UpdatePartner(ctx context.Context, partnerID uuid.UUID, input PartnerInput) (*domain.Partner, error)
	DeletePartner(ctx context.Context, partnerID uuid.UUID) error
}

type contentService struct {
	contentRepo port.ContentRepository
}

// NewContentService creates a new ContentService implementation.
func NewContentService(contentRepo port.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) GetHomeContent(ctx context.Context) (*HomeContent, error) {
	banners, err := s.contentRepo.ListBanners(ctx, true)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.contentRepo.ListTestimonials(ctx, true)
	if err != nil {
		return nil, err
	}
	partners, err := s.contentRepo.ListPartners(ctx, true)
	if err != nil {
		return nil, err
	}

	content := &HomeContent{
		Banners:      banners,
		Testimonials: testimonials,
		Partners:     partners,
	}
	if content.Banners == nil {
		content.Banners = []domain.HeroBanner{}
	}
	if content.Testimonials == nil {
		content.Testimonials = []domain.Testimonial{}
	}
	if content.Partners == nil {
		content.Partners = []domain.Partner{}
	}
	return content, nil
}

func (s *contentService) ListBanners(ctx context.Context) ([]domain.HeroBanner, error) {
	return s.contentRepo.ListBanners(ctx, false)
}

func (s *contentService) CreateBanner(ctx context.Context, input HeroBannerInput) (*domain.HeroBanner, error) {
	banner := &domain.HeroBanner{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: input.IsActive,
	}
	if err := s.contentRepo.CreateBanner(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *contentService) UpdateBanner(ctx context.Context, bannerID uuid.UUID, input HeroBannerInput) (*domain.HeroBanner, error) {
	banner := &domain.HeroBanner{
		ID:       bannerID,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: input.IsActive,
	}
	if err := s.contentRepo.UpdateBanner(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *contentService) DeleteBanner(ctx context.Context, bannerID uuid.UUID) error {
	return s.contentRepo.DeleteBanner(ctx, bannerID)
}

func (s *contentService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.contentRepo.ListTestimonials(ctx, false)
}

func (s *contentService) CreateTestimonial(ctx context.Context, input TestimonialInput) (*domain.Testimonial, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	testimonial := &domain.Testimonial{
		AuthorName: input.AuthorName,
		Quote:      input.Quote,
		Rating:     input.Rating,
		Position:   input.Position,
		IsActive:   input.IsActive,
	}
	if err := s.contentRepo.CreateTestimonial(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *contentService) UpdateTestimonial(ctx context.Context, testimonialID uuid.UUID, input TestimonialInput) (*domain.Testimonial, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	testimonial := &domain.Testimonial{
		ID:         testimonialID,
		AuthorName: input.AuthorName,
		Quote:      input.Quote,
		Rating:     input.Rating,
		Position:   input.Position,
		IsActive:   input.IsActive,
	}
	if err := s.contentRepo.UpdateTestimonial(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *contentService) DeleteTestimonial(ctx context.Context, testimonialID uuid.UUID) error {
	return s.contentRepo.DeleteTestimonial(ctx, testimonialID)
}

func (s *contentService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return s.contentRepo.ListPartners(ctx, false)
}

func (s *contentService) CreatePartner(ctx context.Context, input PartnerInput) (*domain.Partner, error) {
	partner := &domain.Partner{
		Name:     input.Name,
		LogoURL:  input.LogoURL,
		SiteURL:  input.SiteURL,
		Position: input.Position,
		IsActive: input.IsActive,
	}
	if err := s.contentRepo.CreatePartner(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *contentService) UpdatePartner(ctx context.Context, partnerID uuid.UUID, input PartnerInput) (*domain.Partner, error) {
	partner := &domain.Partner{
		ID:       partnerID,
		Name:     input.Name,
		LogoURL:  input.LogoURL,
		SiteURL:  input.SiteURL,
		Position: input.Position,
		IsActive: input.IsActive,
	}
	if err := s.contentRepo.UpdatePartner(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *contentService) DeletePartner(ctx context.Context, partnerID uuid.UUID) error {
	return s.contentRepo.DeletePartner(ctx, partnerID)
}
