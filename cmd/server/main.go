// @title eJS MARKET API
// @version 1.0
// @description E-commerce backend for eJS MARKET: catalog, orders, content, and admin statistics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"log"

	"ejsmarket/internal/config"
	"ejsmarket/internal/email/noop"
	"ejsmarket/internal/email/ses"
	"ejsmarket/internal/handler"
	"ejsmarket/internal/port"
	"ejsmarket/internal/repository/postgres"
	"ejsmarket/internal/router"
	"ejsmarket/internal/service"

	_ "ejsmarket/docs"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	productRepo := postgres.NewProductRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	contentRepo := postgres.NewContentRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email, cfg.Payment)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, userRepo, emailSender)
	contentSvc := service.NewContentService(contentRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	statsSvc := service.NewStatsService(statsRepo, cfg.Catalog.LowStockThreshold, nil)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, userSvc)
	userH := handler.NewUserHandler(userSvc)
	productH := handler.NewProductHandler(productSvc, categorySvc)
	orderH := handler.NewOrderHandler(orderSvc)
	contentH := handler.NewContentHandler(contentSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, userH, productH, orderH, contentH, settingsH, statsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
