package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler handles REST API requests for the catalog: public storefront reads
// and guarded admin writes.
type Handler struct {
	svc Service
}

// NewHandler creates a new catalog Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListProducts handles GET /api/v1/products.
// The public listing only ever sees the active partition.
func (h *Handler) ListProducts(c *gin.Context) {
	opts := pkg.ParseListOptions(c)
	opts.Status = domain.StatusActive

	result, err := h.svc.ListProducts(c.Request.Context(), opts)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// GetProductBySlug handles GET /api/v1/products/:slug.
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.svc.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, product)
}

// ListCategories handles GET /api/v1/categories.
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

// GetCategoryBySlug handles GET /api/v1/categories/:slug.
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.svc.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, category)
}

// AdminListProducts handles GET /api/v1/admin/products.
// Admins see either partition via the status option.
func (h *Handler) AdminListProducts(c *gin.Context) {
	result, err := h.svc.ListProducts(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetProduct handles GET /api/v1/admin/products/:id.
func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	product, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, product)
}

// CreateProduct handles POST /api/v1/admin/products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/v1/admin/products/:id.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, product)
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id.
// Soft-deletes unless the force query flag is set.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id, pkg.ParseForceParam(c)); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// RestoreProduct handles POST /api/v1/admin/products/:id/restore.
func (h *Handler) RestoreProduct(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreProduct(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// AdminListCategories handles GET /api/v1/admin/categories.
func (h *Handler) AdminListCategories(c *gin.Context) {
	result, err := h.svc.ListCategories(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetCategory handles GET /api/v1/admin/categories/:id.
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

// CreateCategory handles POST /api/v1/admin/categories.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
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

// UpdateCategory handles PUT /api/v1/admin/categories/:id.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateCategoryRequest
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

// DeleteCategory handles DELETE /api/v1/admin/categories/:id.
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

// RestoreCategory handles POST /api/v1/admin/categories/:id/restore.
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
