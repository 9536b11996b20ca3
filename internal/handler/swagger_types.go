package handler

import (
	"time"

	"github.com/google/uuid"

	"ejsmarket/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@ejsmarket.fr"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// RegisterRequest represents the public signup request body.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required" example:"marie.dupont@example.fr"`
	Password    string `json:"password" binding:"required" example:"securepassword123"`
	FullName    string `json:"full_name" binding:"required" example:"Marie Dupont"`
	CompanyName string `json:"company_name" example:"Dupont Distribution SARL"`
	VATNumber   string `json:"vat_number" example:"FR32123456789"`
}

// CreateUserRequest represents the admin create user request body.
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required" example:"jean.martin@ejsmarket.fr"`
	Password string      `json:"password" binding:"required" example:"securepassword123"`
	FullName string      `json:"full_name" binding:"required" example:"Jean Martin"`
	Role     domain.Role `json:"role" example:"MANAGER"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	FullName    *string      `json:"full_name" example:"Jean Martin"`
	Role        *domain.Role `json:"role" example:"MANAGER"`
	CompanyName *string      `json:"company_name" example:"Martin et Fils"`
	VATNumber   *string      `json:"vat_number" example:"FR32123456789"`
	IsActive    *bool        `json:"is_active" example:"true"`
}

// UpdateMeRequest represents the self profile update request body.
type UpdateMeRequest struct {
	FullName    *string `json:"full_name" example:"Jean Martin"`
	CompanyName *string `json:"company_name" example:"Martin et Fils"`
	VATNumber   *string `json:"vat_number" example:"FR32123456789"`
}

// CreateProductRequest represents the create product request body.
type CreateProductRequest struct {
	Name        domain.LocalizedText `json:"name" binding:"required"`
	Description domain.LocalizedText `json:"description"`
	Slug        string               `json:"slug" binding:"required" example:"huile-olive-bio-1l"`
	CategoryID  *uuid.UUID           `json:"category_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	PriceHT     int64                `json:"price_ht" binding:"required" example:"1250"`
	VATRate     int64                `json:"vat_rate" example:"550"`
	B2BPriceHT  *int64               `json:"b2b_price_ht" example:"980"`
	Stock       int                  `json:"stock" example:"120"`
	ImageURL    string               `json:"image_url" example:"https://cdn.ejsmarket.fr/products/huile-olive.jpg"`
}

// UpdateProductRequest represents the update product request body.
type UpdateProductRequest struct {
	Name       *domain.LocalizedText `json:"name"`
	Slug       *string               `json:"slug" example:"huile-olive-bio-1l"`
	PriceHT    *int64                `json:"price_ht" example:"1290"`
	VATRate    *int64                `json:"vat_rate" example:"550"`
	B2BPriceHT *int64                `json:"b2b_price_ht" example:"990"`
	Stock      *int                  `json:"stock" example:"80"`
	IsActive   *bool                 `json:"is_active" example:"true"`
}

// AdjustStockRequest represents the stock adjustment request body.
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required" example:"-5"`
}

// CategoryRequest represents the category create/update request body.
type CategoryRequest struct {
	Name     domain.LocalizedText `json:"name" binding:"required"`
	Slug     string               `json:"slug" binding:"required" example:"epicerie-fine"`
	Position int                  `json:"position" example:"1"`
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required"`
	ShippingAddress string             `json:"shipping_address" binding:"required" example:"12 rue de la Paix, 75002 Paris"`
}

// OrderItemRequest represents a single cart line.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity  int       `json:"quantity" binding:"required" example:"3"`
}

// UpdateOrderStatusRequest represents the status change request body.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required" example:"SHIPPED"`
}

// HeroBannerRequest represents the banner create/update request body.
type HeroBannerRequest struct {
	Title    domain.LocalizedText `json:"title" binding:"required"`
	Subtitle domain.LocalizedText `json:"subtitle"`
	ImageURL string               `json:"image_url" binding:"required" example:"https://cdn.ejsmarket.fr/banners/rentree.jpg"`
	LinkURL  string               `json:"link_url" example:"/promotions"`
	Position int                  `json:"position" example:"1"`
	IsActive bool                 `json:"is_active" example:"true"`
}

// TestimonialRequest represents the testimonial create/update request body.
type TestimonialRequest struct {
	AuthorName string               `json:"author_name" binding:"required" example:"Sophie L."`
	Quote      domain.LocalizedText `json:"quote" binding:"required"`
	Rating     int                  `json:"rating" binding:"required" example:"5"`
	Position   int                  `json:"position" example:"1"`
	IsActive   bool                 `json:"is_active" example:"true"`
}

// PartnerRequest represents the partner create/update request body.
type PartnerRequest struct {
	Name     string `json:"name" binding:"required" example:"Ferme du Soleil"`
	LogoURL  string `json:"logo_url" binding:"required" example:"https://cdn.ejsmarket.fr/partners/ferme-soleil.png"`
	SiteURL  string `json:"site_url" example:"https://fermedusoleil.fr"`
	Position int    `json:"position" example:"1"`
	IsActive bool   `json:"is_active" example:"true"`
}

// UpdateSettingsRequest represents the site settings update request body.
type UpdateSettingsRequest struct {
	NewsbarText    domain.LocalizedText `json:"newsbar_text"`
	NewsbarEnabled bool                 `json:"newsbar_enabled" example:"true"`
	ContactEmail   string               `json:"contact_email" example:"contact@ejsmarket.fr"`
	ContactPhone   string               `json:"contact_phone" example:"+33 1 23 45 67 89"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
