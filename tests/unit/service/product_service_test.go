package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

func TestProductService_ListCatalog_StripsTradePriceForRetail(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(productRepo)

	products := []domain.Product{
		{ID: uuid.New(), PriceHT: 1000, B2BPriceHT: int64Ptr(800), IsActive: true},
	}
	productRepo.On("List", mock.Anything, port.ProductFilter{ActiveOnly: true}, 0, 20).
		Return(products, 1, nil)

	got, total, err := svc.ListCatalog(context.Background(), nil, domain.RoleCustomer, 0, 20)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Nil(t, got[0].B2BPriceHT)
}

func TestProductService_ListCatalog_KeepsTradePriceForB2B(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(productRepo)

	products := []domain.Product{
		{ID: uuid.New(), PriceHT: 1000, B2BPriceHT: int64Ptr(800), IsActive: true},
	}
	productRepo.On("List", mock.Anything, port.ProductFilter{ActiveOnly: true}, 0, 20).
		Return(products, 1, nil)

	got, _, err := svc.ListCatalog(context.Background(), nil, domain.RoleB2BCustomer, 0, 20)

	assert.NoError(t, err)
	assert.NotNil(t, got[0].B2BPriceHT)
	assert.Equal(t, int64(800), *got[0].B2BPriceHT)
}

func TestProductService_ListCatalog_AnonymousIsRetail(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(productRepo)

	products := []domain.Product{
		{ID: uuid.New(), B2BPriceHT: int64Ptr(800), IsActive: true},
	}
	productRepo.On("List", mock.Anything, port.ProductFilter{ActiveOnly: true}, 0, 20).
		Return(products, 1, nil)

	got, _, err := svc.ListCatalog(context.Background(), nil, "", 0, 20)

	assert.NoError(t, err)
	assert.Nil(t, got[0].B2BPriceHT)
}

func TestProductService_GetBySlug_HidesInactiveProduct(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(productRepo)

	product := &domain.Product{ID: uuid.New(), Slug: "huile-olive", IsActive: false}
	productRepo.On("GetBySlug", mock.Anything, "huile-olive").Return(product, nil)

	_, err := svc.GetBySlug(context.Background(), "huile-olive", domain.RoleCustomer)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_GetBySlug_StripsTradePriceForRetail(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(productRepo)

	product := &domain.Product{ID: uuid.New(), Slug: "huile-olive", B2BPriceHT: int64Ptr(800), IsActive: true}
	productRepo.On("GetBySlug", mock.Anything, "huile-olive").Return(product, nil)

	got, err := svc.GetBySlug(context.Background(), "huile-olive", domain.RoleCustomer)

	assert.NoError(t, err)
	assert.Nil(t, got.B2BPriceHT)
}

func TestProductService_AdjustStock_RefetchesProduct(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(productRepo)

	productID := uuid.New()
	productRepo.On("AdjustStock", mock.Anything, productID, -2).Return(nil)
	productRepo.On("GetByID", mock.Anything, productID).
		Return(&domain.Product{ID: productID, Stock: 48, IsActive: true}, nil)

	got, err := svc.AdjustStock(context.Background(), productID, -2)

	assert.NoError(t, err)
	assert.Equal(t, 48, got.Stock)
	productRepo.AssertExpectations(t)
}

func TestProductService_VATMath(t *testing.T) {
	p := &domain.Product{PriceHT: 1000, VATRate: 2000}
	assert.Equal(t, int64(1200), p.PriceTTC())

	p = &domain.Product{PriceHT: 999, VATRate: 550}
	assert.Equal(t, int64(1054), p.PriceTTC())

	assert.Equal(t, int64(0), domain.AddVAT(0, 2000))
}
