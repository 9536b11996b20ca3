package port

import (
	"context"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create inserts the order with its items and decrements product stock
	// in a single transaction.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Order, int, error)
	List(ctx context.Context, status *domain.OrderStatus, offset, limit int) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
	// ListForExport returns every order joined with its customer, oldest first.
	ListForExport(ctx context.Context) ([]domain.OrderExportRow, error)
}
