package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrProductInactive    = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
