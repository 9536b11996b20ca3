package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func newOrderServiceUnderTest() (service.OrderService, *mocks.MockOrderRepo, *mocks.MockProductRepo, *mocks.MockUserRepo, *mocks.MockEmailSender) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewOrderService(orderRepo, productRepo, userRepo, emailSender)
	return svc, orderRepo, productRepo, userRepo, emailSender
}

func testCustomer(id uuid.UUID) *domain.User {
	return &domain.User{
		ID:       id,
		Email:    "claire@example.fr",
		FullName: "Claire Client",
		Role:     domain.RoleCustomer,
		IsActive: true,
	}
}

func testProduct() *domain.Product {
	return &domain.Product{
		ID:       uuid.New(),
		Name:     domain.LocalizedText{Fr: "Huile d'olive", En: "Olive oil"},
		PriceHT:  1000,
		VATRate:  2000,
		Stock:    50,
		IsActive: true,
	}
}

func TestOrderService_Create_RecomputesTotalsFromCatalog(t *testing.T) {
	svc, orderRepo, productRepo, userRepo, emailSender := newOrderServiceUnderTest()

	userID := uuid.New()
	product := testProduct()

	userRepo.On("GetByID", mock.Anything, userID).Return(testCustomer(userID), nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	emailSender.On("SendOrderConfirmation", mock.Anything, "claire@example.fr", "Claire Client", mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), userID, domain.RoleCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, int64(2000), order.TotalHT)
	assert.Equal(t, int64(2400), order.TotalTTC)
	assert.Equal(t, int64(400), order.TotalVAT)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(1000), order.Items[0].UnitPriceHT)
	assert.Equal(t, product.Name, order.Items[0].ProductName)
	assert.NotEmpty(t, order.Reference)
	orderRepo.AssertExpectations(t)
	emailSender.AssertExpectations(t)
}

func TestOrderService_Create_B2BCustomerPaysTradePrice(t *testing.T) {
	svc, orderRepo, productRepo, userRepo, emailSender := newOrderServiceUnderTest()

	userID := uuid.New()
	product := testProduct()
	product.B2BPriceHT = int64Ptr(800)

	user := testCustomer(userID)
	user.Role = domain.RoleB2BCustomer

	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	emailSender.On("SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), userID, domain.RoleB2BCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "ZA des Bruyères, 69100 Villeurbanne",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(800), order.Items[0].UnitPriceHT)
	assert.Equal(t, int64(800), order.TotalHT)
	assert.Equal(t, int64(960), order.TotalTTC)
}

func TestOrderService_Create_RetailCustomerNeverGetsTradePrice(t *testing.T) {
	svc, orderRepo, productRepo, userRepo, emailSender := newOrderServiceUnderTest()

	userID := uuid.New()
	product := testProduct()
	product.B2BPriceHT = int64Ptr(800)

	userRepo.On("GetByID", mock.Anything, userID).Return(testCustomer(userID), nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	emailSender.On("SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), userID, domain.RoleCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), order.Items[0].UnitPriceHT)
}

func TestOrderService_Create_EmptyCart(t *testing.T) {
	svc, _, _, _, _ := newOrderServiceUnderTest()

	_, err := svc.Create(context.Background(), uuid.New(), domain.RoleCustomer, service.CreateOrderInput{
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestOrderService_Create_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _, userRepo, _ := newOrderServiceUnderTest()

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(testCustomer(userID), nil)

	_, err := svc.Create(context.Background(), userID, domain.RoleCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestOrderService_Create_RejectsInactiveProduct(t *testing.T) {
	svc, _, productRepo, userRepo, _ := newOrderServiceUnderTest()

	userID := uuid.New()
	product := testProduct()
	product.IsActive = false

	userRepo.On("GetByID", mock.Anything, userID).Return(testCustomer(userID), nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	_, err := svc.Create(context.Background(), userID, domain.RoleCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.ErrorIs(t, err, domain.ErrProductInactive)
}

func TestOrderService_Create_RejectsInsufficientStock(t *testing.T) {
	svc, _, productRepo, userRepo, _ := newOrderServiceUnderTest()

	userID := uuid.New()
	product := testProduct()
	product.Stock = 1

	userRepo.On("GetByID", mock.Anything, userID).Return(testCustomer(userID), nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	_, err := svc.Create(context.Background(), userID, domain.RoleCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: product.ID, Quantity: 3}},
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestOrderService_Create_EmailFailureDoesNotFailOrder(t *testing.T) {
	svc, orderRepo, productRepo, userRepo, emailSender := newOrderServiceUnderTest()

	userID := uuid.New()
	product := testProduct()

	userRepo.On("GetByID", mock.Anything, userID).Return(testCustomer(userID), nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	emailSender.On("SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("ses unavailable"))

	order, err := svc.Create(context.Background(), userID, domain.RoleCustomer, service.CreateOrderInput{
		Items:           []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "12 rue de la Paix, 75002 Paris",
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetByID_OwnerAndAdminAllowed(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderServiceUnderTest()

	ownerID := uuid.New()
	orderID := uuid.New()
	order := &domain.Order{ID: orderID, UserID: ownerID, Status: domain.OrderStatusPaid}

	orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)

	got, err := svc.GetByID(context.Background(), orderID, ownerID, domain.RoleCustomer)
	assert.NoError(t, err)
	assert.Equal(t, order, got)

	got, err = svc.GetByID(context.Background(), orderID, uuid.New(), domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetByID_OtherCustomerForbidden(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderServiceUnderTest()

	orderID := uuid.New()
	order := &domain.Order{ID: orderID, UserID: uuid.New(), Status: domain.OrderStatusPaid}

	orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)

	_, err := svc.GetByID(context.Background(), orderID, uuid.New(), domain.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderService_List_RejectsUnknownStatusFilter(t *testing.T) {
	svc, _, _, _, _ := newOrderServiceUnderTest()

	bogus := domain.OrderStatus("ARCHIVED")
	_, _, err := svc.List(context.Background(), &bogus, 0, 20)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_ValidTransition(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderServiceUnderTest()

	orderID := uuid.New()
	order := &domain.Order{ID: orderID, Status: domain.OrderStatusPending}

	orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)
	orderRepo.On("UpdateStatus", mock.Anything, orderID, domain.OrderStatusPaid).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), orderID, domain.RoleManager, domain.OrderStatusPaid)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, updated.Status)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderServiceUnderTest()

	orderID := uuid.New()
	order := &domain.Order{ID: orderID, Status: domain.OrderStatusDelivered}

	orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)

	_, err := svc.UpdateStatus(context.Background(), orderID, domain.RoleManager, domain.OrderStatusPending)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _, _ := newOrderServiceUnderTest()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), domain.RoleAdmin, domain.OrderStatus("LOST"))

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_RefundReservedToAdmin(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderServiceUnderTest()

	orderID := uuid.New()

	_, err := svc.UpdateStatus(context.Background(), orderID, domain.RoleManager, domain.OrderStatusRefunded)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	orderRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	order := &domain.Order{ID: orderID, Status: domain.OrderStatusDelivered}
	orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)
	orderRepo.On("UpdateStatus", mock.Anything, orderID, domain.OrderStatusRefunded).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), orderID, domain.RoleAdmin, domain.OrderStatusRefunded)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRefunded, updated.Status)
}

func TestOrderService_ListForExport_NeverNil(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderServiceUnderTest()

	orderRepo.On("ListForExport", mock.Anything).Return(nil, nil)

	rows, err := svc.ListForExport(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
