package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ejsmarket/internal/middleware"
	"ejsmarket/internal/port"
	"ejsmarket/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService  service.ProductService
	categoryService service.CategoryService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService, categoryService service.CategoryService) *ProductHandler {
	return &ProductHandler{productService: productService, categoryService: categoryService}
}

// ListCatalog handles GET /api/v1/products
// @Summary List catalog products
// @Description Public storefront listing of active products. Trade prices are included only for authenticated B2B accounts.
// @Tags products
// @Produce json
// @Param category query string false "Category ID filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Product} "Products"
// @Router /products [get]
func (h *ProductHandler) ListCatalog(c *gin.Context) {
	offset, limit := parsePagination(c)

	var categoryID *uuid.UUID
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category id")
			return
		}
		categoryID = &id
	}

	// Unauthenticated requests carry no role and see public prices only.
	role := middleware.GetRole(c)

	products, total, err := h.productService.ListCatalog(c.Request.Context(), categoryID, role, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetBySlug handles GET /api/v1/products/:slug
// @Summary Get a product by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} Response{data=domain.Product} "Product"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	role := middleware.GetRole(c)

	product, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"), role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// ListCategories handles GET /api/v1/categories
// @Summary List categories
// @Tags products
// @Produce json
// @Success 200 {object} Response{data=[]domain.Category} "Categories"
// @Router /categories [get]
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, categories)
}

// AdminList handles GET /api/v1/admin/products
// @Summary List all products
// @Description Back-office listing including inactive products.
// @Tags products
// @Produce json
// @Param category query string false "Category ID filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Product} "Products"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /admin/products [get]
func (h *ProductHandler) AdminList(c *gin.Context) {
	offset, limit := parsePagination(c)

	filter := port.ProductFilter{}
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category id")
			return
		}
		filter.CategoryID = &id
	}

	products, total, err := h.productService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// AdminGet handles GET /api/v1/admin/products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response{data=domain.Product} "Product"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/products/{id} [get]
func (h *ProductHandler) AdminGet(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Create handles POST /api/v1/admin/products
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product details"
// @Success 201 {object} Response{data=domain.Product} "Created product"
// @Failure 409 {object} ErrorResponseBody "Slug already exists"
// @Security BearerAuth
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, product)
}

// Update handles PUT /api/v1/admin/products/:id
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Product} "Updated product"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	var input service.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// AdjustStock handles POST /api/v1/admin/products/:id/stock
// @Summary Adjust product stock
// @Description Applies a signed delta to the stock level. Rejected if the result would be negative.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body AdjustStockRequest true "Stock delta"
// @Success 200 {object} Response{data=domain.Product} "Updated product"
// @Failure 409 {object} ErrorResponseBody "Insufficient stock"
// @Security BearerAuth
// @Router /admin/products/{id}/stock [post]
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	var input struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), productID, input.Delta)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Delete handles DELETE /api/v1/admin/products/:id
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "product deleted"})
}

// CreateCategory handles POST /api/v1/admin/categories
// @Summary Create a category
// @Tags products
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category details"
// @Success 201 {object} Response{data=domain.Category} "Created category"
// @Failure 409 {object} ErrorResponseBody "Slug already exists"
// @Security BearerAuth
// @Router /admin/categories [post]
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, category)
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
// @Summary Update a category
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body CategoryRequest true "Category details"
// @Success 200 {object} Response{data=domain.Category} "Updated category"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/categories/{id} [put]
func (h *ProductHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category id")
		return
	}

	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), categoryID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, category)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
// @Summary Delete a category
// @Tags products
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/categories/{id} [delete]
func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid category id")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), categoryID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "category deleted"})
}
