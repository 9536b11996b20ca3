package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uuid.New()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products (id, name, description, slug, category_id, price_ht, vat_rate,
		b2b_price_ht, stock, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Description, product.Slug, product.CategoryID,
		product.PriceHT, product.VATRate, product.B2BPriceHT, product.Stock,
		product.ImageURL, product.IsActive, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &product, nil
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, "SELECT * FROM products WHERE slug = $1", slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetBySlug: %w", err)
	}
	return &product, nil
}

func (r *productRepo) List(ctx context.Context, filter port.ProductFilter, offset, limit int) ([]domain.Product, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.ActiveOnly {
		where = append(where, "is_active = true")
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM products WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT * FROM products WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)-1, len(args))

	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()
	query := `UPDATE products SET name = $1, description = $2, slug = $3, category_id = $4,
		price_ht = $5, vat_rate = $6, b2b_price_ht = $7, stock = $8, image_url = $9,
		is_active = $10, updated_at = $11 WHERE id = $12`
	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Slug, product.CategoryID,
		product.PriceHT, product.VATRate, product.B2BPriceHT, product.Stock,
		product.ImageURL, product.IsActive, product.UpdatedAt, product.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) error {
	// Guard against going negative in the same statement.
	result, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = stock + $1, updated_at = NOW()
		 WHERE id = $2 AND stock + $1 >= 0`, delta, productID)
	if err != nil {
		return fmt.Errorf("productRepo.AdjustStock: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, productID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", productID)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type categoryRepo struct {
	db *sqlx.DB
}

// NewCategoryRepo creates a new PostgreSQL-backed CategoryRepository.
func NewCategoryRepo(db *sqlx.DB) port.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.Category) error {
	category.ID = uuid.New()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Name, category.Slug, category.Position,
		category.CreatedAt, category.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("categoryRepo.Create: %w", err)
	}
	return nil
}

func (r *categoryRepo) GetByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	err := r.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE id = $1", categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("categoryRepo.GetByID: %w", err)
	}
	return &category, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.SelectContext(ctx, &categories,
		"SELECT * FROM categories ORDER BY position ASC, created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.List: %w", err)
	}
	return categories, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, slug = $2, position = $3, updated_at = $4 WHERE id = $5`,
		category.Name, category.Slug, category.Position, category.UpdatedAt, category.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("categoryRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, categoryID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", categoryID)
	if err != nil {
		return fmt.Errorf("categoryRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
