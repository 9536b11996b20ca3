package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/export"
	"ejsmarket/internal/service"
)

// OrderHandler handles checkout and order management endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/v1/orders
// @Summary Place an order
// @Description Checkout. Amounts are recomputed server-side from the catalog; B2B accounts get trade prices where defined. Payment is by manual bank transfer, instructions are emailed.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Cart lines and shipping address"
// @Success 201 {object} Response{data=domain.Order} "Created order"
// @Failure 409 {object} ErrorResponseBody "Insufficient stock"
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), userID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, order)
}

// ListMine handles GET /api/v1/orders
// @Summary List my orders
// @Tags orders
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Order} "Orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	orders, total, err := h.orderService.ListMine(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, orders, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/orders/:id
// @Summary Get an order
// @Description Customers can only read their own orders; back-office roles can read any.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Response{data=domain.Order} "Order with items"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid order id")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID, userID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// AdminList handles GET /api/v1/admin/orders
// @Summary List all orders
// @Tags orders
// @Produce json
// @Param status query string false "Status filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Order} "Orders"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /admin/orders [get]
func (h *OrderHandler) AdminList(c *gin.Context) {
	offset, limit := parsePagination(c)

	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.OrderStatus(raw)
		status = &s
	}

	orders, total, err := h.orderService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, orders, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// UpdateStatus handles PUT /api/v1/admin/orders/:id/status
// @Summary Update order status
// @Description Moves an order along the fulfilment state machine. Refunds require the refund permission.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} Response{data=domain.Order} "Updated order"
// @Failure 409 {object} ErrorResponseBody "Transition not allowed"
// @Security BearerAuth
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	_, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid order id")
		return
	}

	var input service.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, role, input.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// Export handles GET /api/v1/admin/orders/export
// @Summary Export orders
// @Description Streams every order as CSV (default) or XLSX, oldest first. Amounts are decimal euros.
// @Tags orders
// @Produce text/csv
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {string} string "File download"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /admin/orders/export [get]
func (h *OrderHandler) Export(c *gin.Context) {
	rows, err := h.orderService.ListForExport(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename("xlsx")+`"`)
		if err := export.WriteOrdersXLSX(c.Writer, rows); err != nil {
			HandleError(c, err)
		}
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename("csv")+`"`)
		c.Writer.Write(export.BOM)

		w := export.NewCSVWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.WriteOrders(rows); err != nil {
			HandleError(c, err)
			return
		}
		w.Flush()
		if err := w.Error(); err != nil {
			HandleError(c, err)
		}
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "format must be csv or xlsx")
	}
}
