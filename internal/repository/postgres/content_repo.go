package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type contentRepo struct {
	db *sqlx.DB
}

// NewContentRepo creates a new PostgreSQL-backed ContentRepository.
func NewContentRepo(db *sqlx.DB) port.ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) ListBanners(ctx context.Context, activeOnly bool) ([]domain.HeroBanner, error) {
	query := "SELECT * FROM hero_banners"
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY position ASC, created_at ASC"

	var banners []domain.HeroBanner
	if err := r.db.SelectContext(ctx, &banners, query); err != nil {
		return nil, fmt.Errorf("contentRepo.ListBanners: %w", err)
	}
	return banners, nil
}

func (r *contentRepo) CreateBanner(ctx context.Context, banner *domain.HeroBanner) error {
	banner.ID = uuid.New()
	now := time.Now().UTC()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hero_banners (id, title, subtitle, image_url, link_url, position, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		banner.ID, banner.Title, banner.Subtitle, banner.ImageURL, banner.LinkURL,
		banner.Position, banner.IsActive, banner.CreatedAt, banner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("contentRepo.CreateBanner: %w", err)
	}
	return nil
}

func (r *contentRepo) UpdateBanner(ctx context.Context, banner *domain.HeroBanner) error {
	banner.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE hero_banners SET title = $1, subtitle = $2, image_url = $3, link_url = $4,
			position = $5, is_active = $6, updated_at = $7 WHERE id = $8`,
		banner.Title, banner.Subtitle, banner.ImageURL, banner.LinkURL,
		banner.Position, banner.IsActive, banner.UpdatedAt, banner.ID)
	if err != nil {
		return fmt.Errorf("contentRepo.UpdateBanner: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) DeleteBanner(ctx context.Context, bannerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM hero_banners WHERE id = $1", bannerID)
	if err != nil {
		return fmt.Errorf("contentRepo.DeleteBanner: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) ListTestimonials(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error) {
	query := "SELECT * FROM testimonials"
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY position ASC, created_at ASC"

	var testimonials []domain.Testimonial
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("contentRepo.ListTestimonials: %w", err)
	}
	return testimonials, nil
}

func (r *contentRepo) CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error {
	testimonial.ID = uuid.New()
	now := time.Now().UTC()
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO testimonials (id, author_name, quote, rating, position, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		testimonial.ID, testimonial.AuthorName, testimonial.Quote, testimonial.Rating,
		testimonial.Position, testimonial.IsActive, testimonial.CreatedAt, testimonial.UpdatedAt)
	if err != nil {
		return fmt.Errorf("contentRepo.CreateTestimonial: %w", err)
	}
	return nil
}

func (r *contentRepo) UpdateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error {
	testimonial.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE testimonials SET author_name = $1, quote = $2, rating = $3, position = $4,
			is_active = $5, updated_at = $6 WHERE id = $7`,
		testimonial.AuthorName, testimonial.Quote, testimonial.Rating,
		testimonial.Position, testimonial.IsActive, testimonial.UpdatedAt, testimonial.ID)
	if err != nil {
		return fmt.Errorf("contentRepo.UpdateTestimonial: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) DeleteTestimonial(ctx context.Context, testimonialID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = $1", testimonialID)
	if err != nil {
		return fmt.Errorf("contentRepo.DeleteTestimonial: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) ListPartners(ctx context.Context, activeOnly bool) ([]domain.Partner, error) {
	query := "SELECT * FROM partners"
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY position ASC, created_at ASC"

	var partners []domain.Partner
	if err := r.db.SelectContext(ctx, &partners, query); err != nil {
		return nil, fmt.Errorf("contentRepo.ListPartners: %w", err)
	}
	return partners, nil
}

func (r *contentRepo) CreatePartner(ctx context.Context, partner *domain.Partner) error {
	partner.ID = uuid.New()
	now := time.Now().UTC()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO partners (id, name, logo_url, site_url, position, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		partner.ID, partner.Name, partner.LogoURL, partner.SiteURL,
		partner.Position, partner.IsActive, partner.CreatedAt, partner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("contentRepo.CreatePartner: %w", err)
	}
	return nil
}

func (r *contentRepo) UpdatePartner(ctx context.Context, partner *domain.Partner) error {
	partner.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE partners SET name = $1, logo_url = $2, site_url = $3, position = $4,
			is_active = $5, updated_at = $6 WHERE id = $7`,
		partner.Name, partner.LogoURL, partner.SiteURL,
		partner.Position, partner.IsActive, partner.UpdatedAt, partner.ID)
	if err != nil {
		return fmt.Errorf("contentRepo.UpdatePartner: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) DeletePartner(ctx context.Context, partnerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM partners WHERE id = $1", partnerID)
	if err != nil {
		return fmt.Errorf("contentRepo.DeletePartner: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
