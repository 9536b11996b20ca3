package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/handler"
	"ejsmarket/internal/middleware"
	"ejsmarket/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	contentH *handler.ContentHandler,
	settingsH *handler.SettingsHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public storefront routes
	v1.GET("/products", productH.ListCatalog)
	v1.GET("/products/:slug", productH.GetBySlug)
	v1.GET("/categories", productH.ListCategories)
	v1.GET("/content/home", contentH.GetHomeContent)
	v1.GET("/settings", settingsH.Get)

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/register", authH.Register)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)
	protected.PUT("/auth/me", authH.UpdateMe)
	protected.GET("/auth/permissions", authH.Permissions)

	orders := protected.Group("/orders")
	orders.POST("", orderH.Create)
	orders.GET("", orderH.ListMine)
	orders.GET("/:id", orderH.Get)

	// B2B catalog - same listing, trade prices included
	b2b := protected.Group("/b2b")
	b2b.Use(middleware.RequireB2B())
	b2b.GET("/products", productH.ListCatalog)

	// Back-office routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireAdminAccess())

	admin.GET("/stats", statsH.GetDashboard)

	admin.GET("/products", productH.AdminList)
	admin.POST("/products", productH.Create)
	admin.GET("/products/:id", productH.AdminGet)
	admin.PUT("/products/:id", productH.Update)
	admin.POST("/products/:id/stock", productH.AdjustStock)
	admin.DELETE("/products/:id", middleware.RequirePermission(domain.CanDeleteProducts), productH.Delete)

	admin.POST("/categories", productH.CreateCategory)
	admin.PUT("/categories/:id", productH.UpdateCategory)
	admin.DELETE("/categories/:id", productH.DeleteCategory)

	admin.GET("/orders", orderH.AdminList)
	admin.GET("/orders/export", middleware.RequirePermission(domain.CanExportData), orderH.Export)
	admin.PUT("/orders/:id/status", orderH.UpdateStatus)

	users := admin.Group("/users")
	users.Use(middleware.RequirePermission(domain.CanManageUsers))
	users.GET("", userH.List)
	users.POST("", userH.Create)
	users.GET("/:id", userH.Get)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", userH.Delete)

	// Storefront content edits share the settings permission.
	content := admin.Group("/content")
	content.GET("/banners", contentH.ListBanners)
	content.GET("/testimonials", contentH.ListTestimonials)
	content.GET("/partners", contentH.ListPartners)

	contentWrite := content.Group("")
	contentWrite.Use(middleware.RequirePermission(domain.CanManageSettings))
	contentWrite.POST("/banners", contentH.CreateBanner)
	contentWrite.PUT("/banners/:id", contentH.UpdateBanner)
	contentWrite.DELETE("/banners/:id", contentH.DeleteBanner)
	contentWrite.POST("/testimonials", contentH.CreateTestimonial)
	contentWrite.PUT("/testimonials/:id", contentH.UpdateTestimonial)
	contentWrite.DELETE("/testimonials/:id", contentH.DeleteTestimonial)
	contentWrite.POST("/partners", contentH.CreatePartner)
	contentWrite.PUT("/partners/:id", contentH.UpdatePartner)
	contentWrite.DELETE("/partners/:id", contentH.DeletePartner)

	settings := admin.Group("/settings")
	settings.Use(middleware.RequirePermission(domain.CanManageSettings))
	settings.PUT("", settingsH.Update)

	return r
}
