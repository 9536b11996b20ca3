package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Catalog CatalogConfig
	Payment PaymentConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	StoreURL    string `mapstructure:"store_url"`
}

// CatalogConfig holds catalog business settings.
type CatalogConfig struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

// PaymentConfig holds the bank transfer details quoted in order
// confirmations. No payment gateway is integrated.
type PaymentConfig struct {
	BankName string `mapstructure:"bank_name"`
	IBAN     string `mapstructure:"iban"`
	BIC      string `mapstructure:"bic"`
}

// Load reads configuration from environment variables with the EJS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EJS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "ejsmarket")
	v.SetDefault("db.password", "ejsmarket_secret")
	v.SetDefault("db.name", "ejsmarket_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "ejsmarket")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-3")
	v.SetDefault("email.from_address", "commandes@ejsmarket.com")
	v.SetDefault("email.from_name", "eJS MARKET")
	v.SetDefault("email.store_url", "http://localhost:3000")

	// Catalog defaults
	v.SetDefault("catalog.low_stock_threshold", 5)

	// Payment defaults
	v.SetDefault("payment.bank_name", "")
	v.SetDefault("payment.iban", "")
	v.SetDefault("payment.bic", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "EJS_SERVER_PORT",
		"server.read_timeout":         "EJS_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "EJS_SERVER_WRITE_TIMEOUT",
		"server.environment":          "EJS_SERVER_ENVIRONMENT",
		"db.host":                     "EJS_DB_HOST",
		"db.port":                     "EJS_DB_PORT",
		"db.user":                     "EJS_DB_USER",
		"db.password":                 "EJS_DB_PASSWORD",
		"db.name":                     "EJS_DB_NAME",
		"db.sslmode":                  "EJS_DB_SSLMODE",
		"db.max_open":                 "EJS_DB_MAX_OPEN",
		"db.max_idle":                 "EJS_DB_MAX_IDLE",
		"jwt.secret":                  "EJS_JWT_SECRET",
		"jwt.access_expiry":           "EJS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":          "EJS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                  "EJS_JWT_ISSUER",
		"log.level":                   "EJS_LOG_LEVEL",
		"log.format":                  "EJS_LOG_FORMAT",
		"cors.allowed_origins":        "EJS_CORS_ALLOWED_ORIGINS",
		"email.provider":              "EJS_EMAIL_PROVIDER",
		"email.region":                "EJS_EMAIL_REGION",
		"email.from_address":          "EJS_EMAIL_FROM_ADDRESS",
		"email.from_name":             "EJS_EMAIL_FROM_NAME",
		"email.store_url":             "EJS_EMAIL_STORE_URL",
		"catalog.low_stock_threshold": "EJS_CATALOG_LOW_STOCK_THRESHOLD",
		"payment.bank_name":           "EJS_PAYMENT_BANK_NAME",
		"payment.iban":                "EJS_PAYMENT_IBAN",
		"payment.bic":                 "EJS_PAYMENT_BIC",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if EJS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("EJS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		StoreURL:    v.GetString("email.store_url"),
	}

	cfg.Catalog = CatalogConfig{
		LowStockThreshold: v.GetInt("catalog.low_stock_threshold"),
	}

	cfg.Payment = PaymentConfig{
		BankName: v.GetString("payment.bank_name"),
		IBAN:     v.GetString("payment.iban"),
		BIC:      v.GetString("payment.bic"),
	}

	return cfg, nil
}
