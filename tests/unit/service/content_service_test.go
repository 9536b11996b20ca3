package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

func TestContentService_GetHomeContent_ActiveOnlyAndNeverNil(t *testing.T) {
	contentRepo := new(mocks.MockContentRepo)
	svc := service.NewContentService(contentRepo)

	contentRepo.On("ListBanners", mock.Anything, true).Return(nil, nil)
	contentRepo.On("ListTestimonials", mock.Anything, true).Return(nil, nil)
	contentRepo.On("ListPartners", mock.Anything, true).Return(nil, nil)

	content, err := svc.GetHomeContent(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, content.Banners)
	assert.NotNil(t, content.Testimonials)
	assert.NotNil(t, content.Partners)
	contentRepo.AssertExpectations(t)
}

func TestContentService_AdminListsIncludeInactive(t *testing.T) {
	contentRepo := new(mocks.MockContentRepo)
	svc := service.NewContentService(contentRepo)

	contentRepo.On("ListBanners", mock.Anything, false).Return([]domain.HeroBanner{}, nil)

	_, err := svc.ListBanners(context.Background())

	assert.NoError(t, err)
	contentRepo.AssertCalled(t, "ListBanners", mock.Anything, false)
}

func TestContentService_TestimonialRatingBounds(t *testing.T) {
	contentRepo := new(mocks.MockContentRepo)
	svc := service.NewContentService(contentRepo)

	input := service.TestimonialInput{
		AuthorName: "Claire Client",
		Quote:      domain.LocalizedText{Fr: "Excellents produits"},
	}

	for _, rating := range []int{0, -1, 6} {
		input.Rating = rating
		_, err := svc.CreateTestimonial(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", rating)

		_, err = svc.UpdateTestimonial(context.Background(), uuid.New(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", rating)
	}
	contentRepo.AssertNotCalled(t, "CreateTestimonial", mock.Anything, mock.Anything)
	contentRepo.AssertNotCalled(t, "UpdateTestimonial", mock.Anything, mock.Anything)

	contentRepo.On("CreateTestimonial", mock.Anything, mock.Anything).Return(nil)
	input.Rating = 5
	created, err := svc.CreateTestimonial(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, 5, created.Rating)
}
