package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"ejsmarket/internal/config"
	"ejsmarket/internal/domain"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

var testJWTConfig = config.JWTConfig{
	Secret:             "test-secret-for-unit-tests",
	AccessTokenExpiry:  15 * time.Minute,
	RefreshTokenExpiry: 7 * 24 * time.Hour,
	Issuer:             "ejsmarket-test",
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "claire@example.fr",
		PasswordHash: string(hash),
		FullName:     "Claire Client",
		Role:         domain.RoleCustomer,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	user := activeUser(t, "motdepasse123")
	userRepo.On("GetByEmail", mock.Anything, "claire@example.fr").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "claire@example.fr",
		Password: "motdepasse123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	user := activeUser(t, "motdepasse123")
	userRepo.On("GetByEmail", mock.Anything, "claire@example.fr").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "claire@example.fr",
		Password: "mauvais-mot-de-passe",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailHidesExistence(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.fr").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.fr",
		Password: "motdepasse123",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	user := activeUser(t, "motdepasse123")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, "claire@example.fr").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "claire@example.fr",
		Password: "motdepasse123",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	user := activeUser(t, "motdepasse123")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "motdepasse123",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	user := activeUser(t, "motdepasse123")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "motdepasse123",
	})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_RefreshToken_IssuesNewPair(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	user := activeUser(t, "motdepasse123")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "motdepasse123",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshToken_GarbageRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
