package port

import (
	"context"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) error
	Delete(ctx context.Context, productID uuid.UUID) error
}

// CategoryRepository defines persistence operations for catalog categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, categoryID uuid.UUID) error
}
