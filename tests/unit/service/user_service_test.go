package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

func TestUserService_Register_DefaultsToCustomer(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), service.CreateUserInput{
		Email:    "Claire@Example.FR ",
		Password: "motdepasse123",
		FullName: "Claire Client",
		Role:     domain.RoleAdmin,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "claire@example.fr", user.Email)
	assert.True(t, user.IsActive)
}

func TestUserService_Register_CompanyDetailsUpgradeToB2B(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), service.CreateUserInput{
		Email:       "pro@distribution.fr",
		Password:    "motdepasse123",
		FullName:    "Paul Pro",
		CompanyName: "Pro Distribution SARL",
		VATNumber:   "FR32123456789",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleB2BCustomer, user.Role)
}

func TestUserService_Register_CompanyNameAloneStaysCustomer(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), service.CreateUserInput{
		Email:       "semi@pro.fr",
		Password:    "motdepasse123",
		FullName:    "Sam Semi",
		CompanyName: "Semi Pro SAS",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "marc@example.fr",
		Password: "motdepasse123",
		FullName: "Marc Manager",
		Role:     domain.RoleManager,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "motdepasse123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("motdepasse123")))
}

func TestUserService_Create_RejectsUnknownRole(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "x@example.fr",
		Password: "motdepasse123",
		FullName: "X",
		Role:     domain.Role("SUPERUSER"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_DuplicateEmailPropagates(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "claire@example.fr",
		Password: "motdepasse123",
		FullName: "Claire Client",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}
