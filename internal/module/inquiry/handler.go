package inquiry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler handles REST API requests for contact inquiries.
type Handler struct {
	svc Service
}

// NewHandler creates a new inquiry Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /api/v1/inquiries.
func (h *Handler) Submit(c *gin.Context) {
	var req CreateInquiryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	inquiry, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    inquiry,
	})
}

// AdminListInquiries handles GET /api/v1/admin/inquiries.
func (h *Handler) AdminListInquiries(c *gin.Context) {
	result, err := h.svc.ListInquiries(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetInquiry handles GET /api/v1/admin/inquiries/:id.
func (h *Handler) AdminGetInquiry(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	inquiry, err := h.svc.GetInquiry(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, inquiry)
}

// UpdateStatus handles PATCH /api/v1/admin/inquiries/:id/status.
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

	inquiry, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, inquiry)
}

// DeleteInquiry handles DELETE /api/v1/admin/inquiries/:id.
// Inquiry deletion is always permanent.
func (h *Handler) DeleteInquiry(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteInquiry(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
