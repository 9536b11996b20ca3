package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

// CreateUserInput is the DTO for account creation.
type CreateUserInput struct {
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=8"`
	FullName    string      `json:"full_name" binding:"required"`
	Role        domain.Role `json:"role"`
	CompanyName string      `json:"company_name"`
	VATNumber   string      `json:"vat_number"`
}

// UpdateUserInput is the DTO for account updates. Nil fields are unchanged.
type UpdateUserInput struct {
	FullName    *string      `json:"full_name"`
	Role        *domain.Role `json:"role"`
	CompanyName *string      `json:"company_name"`
	VATNumber   *string      `json:"vat_number"`
	IsActive    *bool        `json:"is_active"`
}

// UserService defines account management operations.
type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	userRepo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register is the public signup path. Company details opt the account into
// the B2B role; everything else becomes a regular customer.
func (s *userService) Register(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	input.Role = domain.RoleCustomer
	if strings.TrimSpace(input.CompanyName) != "" && strings.TrimSpace(input.VATNumber) != "" {
		input.Role = domain.RoleB2BCustomer
	}
	return s.Create(ctx, input)
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Role == "" {
		input.Role = domain.RoleCustomer
	}
	if !domain.ValidRoles[input.Role] {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         input.Role,
		CompanyName:  input.CompanyName,
		VATNumber:    input.VATNumber,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.userRepo.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		if !domain.ValidRoles[*input.Role] {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.VATNumber != nil {
		user.VATNumber = *input.VATNumber
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.Delete(ctx, userID)
}
