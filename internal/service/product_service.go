package service

import (
	"context"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

// CreateProductInput is the DTO for product creation.
type CreateProductInput struct {
	Name        domain.LocalizedText `json:"name" binding:"required"`
	Description domain.LocalizedText `json:"description"`
	Slug        string               `json:"slug" binding:"required"`
	CategoryID  *uuid.UUID           `json:"category_id"`
	PriceHT     int64                `json:"price_ht" binding:"required,min=0"`
	VATRate     int64                `json:"vat_rate" binding:"min=0"`
	B2BPriceHT  *int64               `json:"b2b_price_ht"`
	Stock       int                  `json:"stock" binding:"min=0"`
	ImageURL    string               `json:"image_url"`
	IsActive    *bool                `json:"is_active"`
}

// UpdateProductInput is the DTO for product updates. Nil fields are unchanged.
type UpdateProductInput struct {
	Name        *domain.LocalizedText `json:"name"`
	Description *domain.LocalizedText `json:"description"`
	Slug        *string               `json:"slug"`
	CategoryID  *uuid.UUID            `json:"category_id"`
	PriceHT     *int64                `json:"price_ht"`
	VATRate     *int64                `json:"vat_rate"`
	B2BPriceHT  *int64                `json:"b2b_price_ht"`
	Stock       *int                  `json:"stock"`
	ImageURL    *string               `json:"image_url"`
	IsActive    *bool                 `json:"is_active"`
}

// ProductService defines catalog operations.
type ProductService interface {
	// ListCatalog returns active products for the storefront. Trade prices
	// are only surfaced to roles with B2B catalog access.
	ListCatalog(ctx context.Context, categoryID *uuid.UUID, role domain.Role, offset, limit int) ([]domain.Product, int, error)
	GetBySlug(ctx context.Context, slug string, role domain.Role) (*domain.Product, error)

	List(ctx context.Context, filter port.ProductFilter, offset, limit int) ([]domain.Product, int, error)
	GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (*domain.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
}

type productService struct {
	productRepo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(productRepo port.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListCatalog(ctx context.Context, categoryID *uuid.UUID, role domain.Role, offset, limit int) ([]domain.Product, int, error) {
	filter := port.ProductFilter{CategoryID: categoryID, ActiveOnly: true}
	products, total, err := s.productRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	if !domain.CanAccessB2B(role) {
		for i := range products {
			products[i].B2BPriceHT = nil
		}
	}
	return products, total, nil
}

func (s *productService) GetBySlug(ctx context.Context, slug string, role domain.Role) (*domain.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.ErrNotFound
	}
	if !domain.CanAccessB2B(role) {
		product.B2BPriceHT = nil
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, filter port.ProductFilter, offset, limit int) ([]domain.Product, int, error) {
	return s.productRepo.List(ctx, filter, offset, limit)
}

func (s *productService) GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Slug:        input.Slug,
		CategoryID:  input.CategoryID,
		PriceHT:     input.PriceHT,
		VATRate:     input.VATRate,
		B2BPriceHT:  input.B2BPriceHT,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.PriceHT != nil {
		product.PriceHT = *input.PriceHT
	}
	if input.VATRate != nil {
		product.VATRate = *input.VATRate
	}
	if input.B2BPriceHT != nil {
		product.B2BPriceHT = input.B2BPriceHT
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (*domain.Product, error) {
	if err := s.productRepo.AdjustStock(ctx, productID, delta); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, productID)
}

func (s *productService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}
