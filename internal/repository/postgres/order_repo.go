package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	order.ID = uuid.New()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("orderRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, reference, status, total_ht, total_vat, total_ttc,
			shipping_address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID, order.UserID, order.Reference, order.Status,
		order.TotalHT, order.TotalVAT, order.TotalTTC,
		order.ShippingAddress, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("orderRepo.Create order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.ID = uuid.New()
		item.OrderID = order.ID

		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, product_name, unit_price_ht,
				vat_rate, quantity, total_ttc)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.OrderID, item.ProductID, item.ProductName,
			item.UnitPriceHT, item.VATRate, item.Quantity, item.TotalTTC)
		if err != nil {
			return fmt.Errorf("orderRepo.Create item: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = NOW()
			 WHERE id = $2 AND stock >= $1`, item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("orderRepo.Create stock: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrInsufficientStock
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("orderRepo.Create commit: %w", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetByID: %w", err)
	}

	if err := r.db.SelectContext(ctx, &order.Items,
		"SELECT * FROM order_items WHERE order_id = $1 ORDER BY id", orderID); err != nil {
		return nil, fmt.Errorf("orderRepo.GetByID items: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM orders WHERE user_id = $1", userID); err != nil {
		return nil, 0, fmt.Errorf("orderRepo.ListByUser count: %w", err)
	}

	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("orderRepo.ListByUser: %w", err)
	}
	return orders, total, nil
}

func (r *orderRepo) List(ctx context.Context, status *domain.OrderStatus, offset, limit int) ([]domain.Order, int, error) {
	var (
		total  int
		orders []domain.Order
		err    error
	)

	if status != nil {
		err = r.db.GetContext(ctx, &total,
			"SELECT COUNT(*) FROM orders WHERE status = $1", *status)
		if err != nil {
			return nil, 0, fmt.Errorf("orderRepo.List count: %w", err)
		}
		err = r.db.SelectContext(ctx, &orders,
			"SELECT * FROM orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
			*status, limit, offset)
	} else {
		err = r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM orders")
		if err != nil {
			return nil, 0, fmt.Errorf("orderRepo.List count: %w", err)
		}
		err = r.db.SelectContext(ctx, &orders,
			"SELECT * FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List: %w", err)
	}
	return orders, total, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2", status, orderID)
	if err != nil {
		return fmt.Errorf("orderRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *orderRepo) ListForExport(ctx context.Context) ([]domain.OrderExportRow, error) {
	var rows []domain.OrderExportRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT o.id, o.reference, u.full_name AS customer_name, u.email AS customer_email,
		       o.status, o.total_ht, o.total_vat, o.total_ttc,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count,
		       o.created_at
		FROM orders o
		INNER JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.ListForExport: %w", err)
	}
	return rows, nil
}
