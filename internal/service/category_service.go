package service

import (
	"context"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

// CategoryInput is the DTO for category create and update requests.
type CategoryInput struct {
	Name     domain.LocalizedText `json:"name" binding:"required"`
	Slug     string               `json:"slug" binding:"required"`
	Position int                  `json:"position"`
}

// CategoryService defines catalog category operations.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, input CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, categoryID uuid.UUID, input CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type categoryService struct {
	categoryRepo port.CategoryRepository
}

// NewCategoryService creates a new CategoryService implementation.
func NewCategoryService(categoryRepo port.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		Position: input.Position,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, categoryID uuid.UUID, input CategoryInput) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Slug = input.Slug
	category.Position = input.Position

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, categoryID)
}
