package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler handles REST API requests for orders: the public checkout endpoint
// and the guarded admin workflow.
type Handler struct {
	svc Service
}

// NewHandler creates a new order Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Checkout handles POST /api/v1/orders.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	order, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    order,
	})
}

// TrackOrder handles GET /api/v1/orders/:invoice. Customers look up their
// order by the invoice number returned at checkout.
func (h *Handler) TrackOrder(c *gin.Context) {
	order, err := h.svc.GetOrderByInvoiceNumber(c.Request.Context(), c.Param("invoice"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, order)
}

// AdminListOrders handles GET /api/v1/admin/orders.
func (h *Handler) AdminListOrders(c *gin.Context) {
	result, err := h.svc.ListOrders(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetOrder handles GET /api/v1/admin/orders/:id.
func (h *Handler) AdminGetOrder(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, order)
}

// AdminUpdateOrder handles PUT /api/v1/admin/orders/:id.
func (h *Handler) AdminUpdateOrder(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateOrderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	order, err := h.svc.UpdateOrder(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, order)
}

// UpdateStatus handles PATCH /api/v1/admin/orders/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, order)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/:id.
// Order deletion is always permanent.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
