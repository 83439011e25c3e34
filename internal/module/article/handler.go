package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler handles REST API requests for articles and article categories.
type Handler struct {
	svc Service
}

// NewHandler creates a new article Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListArticles handles GET /api/v1/articles.
func (h *Handler) ListArticles(c *gin.Context) {
	opts := pkg.ParseListOptions(c)
	opts.Status = domain.StatusActive

	result, err := h.svc.ListArticles(c.Request.Context(), opts)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// GetArticleBySlug handles GET /api/v1/articles/:slug.
func (h *Handler) GetArticleBySlug(c *gin.Context) {
	article, err := h.svc.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, article)
}

// ListCategories handles GET /api/v1/article-categories.
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

// GetCategoryBySlug handles GET /api/v1/article-categories/:slug.
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.svc.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, category)
}

// AdminListArticles handles GET /api/v1/admin/articles.
func (h *Handler) AdminListArticles(c *gin.Context) {
	result, err := h.svc.ListArticles(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetArticle handles GET /api/v1/admin/articles/:id.
func (h *Handler) AdminGetArticle(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	article, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, article)
}

// CreateArticle handles POST /api/v1/admin/articles.
func (h *Handler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	article, err := h.svc.CreateArticle(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    article,
	})
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id.
func (h *Handler) UpdateArticle(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateArticleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	article, err := h.svc.UpdateArticle(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, article)
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id.
func (h *Handler) DeleteArticle(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteArticle(c.Request.Context(), id, pkg.ParseForceParam(c)); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// RestoreArticle handles POST /api/v1/admin/articles/:id/restore.
func (h *Handler) RestoreArticle(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreArticle(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// AdminListCategories handles GET /api/v1/admin/article-categories.
func (h *Handler) AdminListCategories(c *gin.Context) {
	result, err := h.svc.ListCategories(c.Request.Context(), pkg.ParseListOptions(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// AdminGetCategory handles GET /api/v1/admin/article-categories/:id.
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

// CreateCategory handles POST /api/v1/admin/article-categories.
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

// UpdateCategory handles PUT /api/v1/admin/article-categories/:id.
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

// DeleteCategory handles DELETE /api/v1/admin/article-categories/:id.
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

// RestoreCategory handles POST /api/v1/admin/article-categories/:id/restore.
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
