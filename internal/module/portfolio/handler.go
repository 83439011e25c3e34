package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler handles REST API requests for the portfolio showcase.
type Handler struct {
	svc Service
}

// NewHandler creates a new portfolio Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListItems handles GET /api/v1/portfolio.
func (h *Handler) ListItems(c *gin.Context) {
	opts := pkg.ParseListOptions(c)
	opts.Status = domain.StatusActive

	result, err := h.svc.ListItems(c.Request.Context(), opts)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// GetItemBySlug handles GET /api/v1/portfolio/:slug.
func (h *Handler) GetItemBySlug(c *gin.Context) {
	item, err := h.svc.GetItemBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, item)
}

// ListCategories handles GET /api/v1/portfolio-categories.
func (h *Handler) ListCategories(c *gin.Context) {
	opts := pkg.ParseListOptions(c)
	opts.Status = domain.StatusActive

	result, err := h.svc.ListCategories(c.Request.Context(), opts)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminListItems handles GET /api/v1/admin/portfolio.
func (h *Handler) AdminListItems(c *gin.Context) {
	result, err := h.svc.ListItems(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetItem handles GET /api/v1/admin/portfolio/:id.
func (h *Handler) AdminGetItem(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, item)
}

// CreateItem handles POST /api/v1/admin/portfolio.
func (h *Handler) CreateItem(c *gin.Context) {
	var req ItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    item,
	})
}

// UpdateItem handles PUT /api/v1/admin/portfolio/:id.
func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, item)
}

// DeleteItem handles DELETE /api/v1/admin/portfolio/:id.
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteItem(c.Request.Context(), id, pkg.ParseForceParam(c)); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// RestoreItem handles POST /api/v1/admin/portfolio/:id/restore.
func (h *Handler) RestoreItem(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreItem(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// AdminListCategories handles GET /api/v1/admin/portfolio-categories.
func (h *Handler) AdminListCategories(c *gin.Context) {
	result, err := h.svc.ListCategories(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetCategory handles GET /api/v1/admin/portfolio-categories/:id.
func (h *Handler) AdminGetCategory(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	category, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, category)
}

// CreateCategory handles POST /api/v1/admin/portfolio-categories.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.CreateCategory(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    category,
	})
}

// UpdateCategory handles PUT /api/v1/admin/portfolio-categories/:id.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req CategoryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, category)
}

// DeleteCategory handles DELETE /api/v1/admin/portfolio-categories/:id.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), id, pkg.ParseForceParam(c)); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// RestoreCategory handles POST /api/v1/admin/portfolio-categories/:id/restore.
func (h *Handler) RestoreCategory(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreCategory(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
