package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

// OrderItemInput is one cart line in a checkout request.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// CreateOrderInput is the DTO for checkout. Prices are never accepted from
// the client; every amount is recomputed from the catalog.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" binding:"required"`
	ShippingAddress string           `json:"shipping_address" binding:"required"`
}

// UpdateOrderStatusInput is the DTO for admin status changes.
type UpdateOrderStatusInput struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// OrderService defines checkout and order management operations.
type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, role domain.Role, input CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, orderID, requesterID uuid.UUID, role domain.Role) (*domain.Order, error)
	ListMine(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Order, int, error)
	List(ctx context.Context, status *domain.OrderStatus, offset, limit int) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, role domain.Role, status domain.OrderStatus) (*domain.Order, error)
	ListForExport(ctx context.Context) ([]domain.OrderExportRow, error)
}

type orderService struct {
	orderRepo   port.OrderRepository
	productRepo port.ProductRepository
	userRepo    port.UserRepository
	emailSender port.EmailSender
}

// NewOrderService creates a new OrderService implementation.
func NewOrderService(
	orderRepo port.OrderRepository,
	productRepo port.ProductRepository,
	userRepo port.UserRepository,
	emailSender port.EmailSender,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		emailSender: emailSender,
	}
}

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, role domain.Role, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order.Create: %w", err)
	}

	order := &domain.Order{
		UserID:          userID,
		Reference:       newOrderReference(),
		Status:          domain.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
		Items:           make([]domain.OrderItem, 0, len(input.Items)),
	}

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("order.Create: %w", err)
		}
		if !product.IsActive {
			return nil, domain.ErrProductInactive
		}
		if product.Stock < line.Quantity {
			return nil, domain.ErrInsufficientStock
		}

		unitHT := product.PriceHT
		if domain.IsB2BCustomer(role) && product.B2BPriceHT != nil {
			unitHT = *product.B2BPriceHT
		}

		lineHT := unitHT * int64(line.Quantity)
		lineTTC := domain.AddVAT(lineHT, product.VATRate)

		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPriceHT: unitHT,
			VATRate:     product.VATRate,
			Quantity:    line.Quantity,
			TotalTTC:    lineTTC,
		})

		order.TotalHT += lineHT
		order.TotalTTC += lineTTC
	}
	order.TotalVAT = order.TotalTTC - order.TotalHT

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Checkout succeeded at this point; a failed confirmation email must not
	// fail the order.
	if err := s.emailSender.SendOrderConfirmation(ctx, user.Email, user.FullName, order); err != nil {
		log.Printf("order %s: sending confirmation email: %v", order.Reference, err)
	}

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID, requesterID uuid.UUID, role domain.Role) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !domain.CanAccessAdmin(role) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListMine(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Order, int, error) {
	return s.orderRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *orderService) List(ctx context.Context, status *domain.OrderStatus, offset, limit int) ([]domain.Order, int, error) {
	if status != nil && !domain.ValidOrderStatuses[*status] {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.orderRepo.List(ctx, status, offset, limit)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, role domain.Role, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	if status == domain.OrderStatusRefunded && !domain.CanRefundOrders(role) {
		return nil, domain.ErrForbidden
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionOrder(order.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *orderService) ListForExport(ctx context.Context) ([]domain.OrderExportRow, error) {
	rows, err := s.orderRepo.ListForExport(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.OrderExportRow{}
	}
	return rows, nil
}

func newOrderReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("EJS-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
