package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LocalizedText holds a piece of display text in the supported locales.
// Stored as jsonb; French is the primary locale, English optional.
type LocalizedText struct {
	Fr string `json:"fr"`
	En string `json:"en,omitempty"`
}

// Value implements driver.Valuer so LocalizedText can be written as jsonb.
func (t LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for jsonb columns.
func (t *LocalizedText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = LocalizedText{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into LocalizedText", src)
	}
}

// User represents a shop account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         Role      `db:"role" json:"role"`
	CompanyName  string    `db:"company_name" json:"company_name,omitempty"`
	VATNumber    string    `db:"vat_number" json:"vat_number,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Category groups products in the catalog.
type Category struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      LocalizedText `db:"name" json:"name"`
	Slug      string        `db:"slug" json:"slug"`
	Position  int           `db:"position" json:"position"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// Product is a catalog entry. All prices are integer cents; PriceHT is
// tax-exclusive and VATRate is expressed in basis points (2000 = 20%).
type Product struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        LocalizedText `db:"name" json:"name"`
	Description LocalizedText `db:"description" json:"description"`
	Slug        string        `db:"slug" json:"slug"`
	CategoryID  *uuid.UUID    `db:"category_id" json:"category_id"`
	PriceHT     int64         `db:"price_ht" json:"price_ht"`
	VATRate     int64         `db:"vat_rate" json:"vat_rate"`
	B2BPriceHT  *int64        `db:"b2b_price_ht" json:"b2b_price_ht,omitempty"`
	Stock       int           `db:"stock" json:"stock"`
	ImageURL    string        `db:"image_url" json:"image_url"`
	IsActive    bool          `db:"is_active" json:"is_active"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// PriceTTC returns the tax-inclusive unit price in cents, rounded to the
// nearest cent.
func (p *Product) PriceTTC() int64 {
	return AddVAT(p.PriceHT, p.VATRate)
}

// AddVAT applies a basis-point VAT rate to a tax-exclusive amount in cents.
func AddVAT(amountHT, vatRate int64) int64 {
	return (amountHT*(10000+vatRate) + 5000) / 10000
}

// Order is a placed order with totals snapshotted in integer cents.
type Order struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	UserID          uuid.UUID   `db:"user_id" json:"user_id"`
	Reference       string      `db:"reference" json:"reference"`
	Status          OrderStatus `db:"status" json:"status"`
	TotalHT         int64       `db:"total_ht" json:"total_ht"`
	TotalVAT        int64       `db:"total_vat" json:"total_vat"`
	TotalTTC        int64       `db:"total_ttc" json:"total_ttc"`
	ShippingAddress string      `db:"shipping_address" json:"shipping_address"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem is one line of an order. Product name and unit price are
// snapshotted at purchase time.
type OrderItem struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	OrderID     uuid.UUID     `db:"order_id" json:"order_id"`
	ProductID   uuid.UUID     `db:"product_id" json:"product_id"`
	ProductName LocalizedText `db:"product_name" json:"product_name"`
	UnitPriceHT int64         `db:"unit_price_ht" json:"unit_price_ht"`
	VATRate     int64         `db:"vat_rate" json:"vat_rate"`
	Quantity    int           `db:"quantity" json:"quantity"`
	TotalTTC    int64         `db:"total_ttc" json:"total_ttc"`
}

// HeroBanner is a storefront hero slide.
type HeroBanner struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Title     LocalizedText `db:"title" json:"title"`
	Subtitle  LocalizedText `db:"subtitle" json:"subtitle"`
	ImageURL  string        `db:"image_url" json:"image_url"`
	LinkURL   string        `db:"link_url" json:"link_url"`
	Position  int           `db:"position" json:"position"`
	IsActive  bool          `db:"is_active" json:"is_active"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// Testimonial is a customer quote shown on the storefront.
type Testimonial struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	AuthorName string        `db:"author_name" json:"author_name"`
	Quote      LocalizedText `db:"quote" json:"quote"`
	Rating     int           `db:"rating" json:"rating"`
	Position   int           `db:"position" json:"position"`
	IsActive   bool          `db:"is_active" json:"is_active"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updated_at"`
}

// Partner is a partner logo shown on the storefront.
type Partner struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	LogoURL   string    `db:"logo_url" json:"logo_url"`
	SiteURL   string    `db:"site_url" json:"site_url"`
	Position  int       `db:"position" json:"position"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SiteSettings is the single mutable configuration record shared across
// instances (newsbar text and contact details). Persisted, never held as
// in-process global state.
type SiteSettings struct {
	ID             int           `db:"id" json:"-"`
	NewsbarText    LocalizedText `db:"newsbar_text" json:"newsbar_text"`
	NewsbarEnabled bool          `db:"newsbar_enabled" json:"newsbar_enabled"`
	ContactEmail   string        `db:"contact_email" json:"contact_email"`
	ContactPhone   string        `db:"contact_phone" json:"contact_phone"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}
