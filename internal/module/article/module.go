package article

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires article routes.
type Module struct {
	handler *Handler
}

// NewModule creates a new article Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("article.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers article API routes.
func (m *Module) RegisterRoutes(public, admin *gin.RouterGroup, guard middleware.Guard) {
	public.GET("/articles", m.handler.ListArticles)
	public.GET("/articles/:slug", m.handler.GetArticleBySlug)
	public.GET("/article-categories", m.handler.ListCategories)
	public.GET("/article-categories/:slug", m.handler.GetCategoryBySlug)

	g := admin.Group("", guard(domain.PermArticlesWrite))

	g.GET("/articles", m.handler.AdminListArticles)
	g.GET("/articles/:id", m.handler.AdminGetArticle)
	g.POST("/articles", m.handler.CreateArticle)
	g.PUT("/articles/:id", m.handler.UpdateArticle)
	g.DELETE("/articles/:id", m.handler.DeleteArticle)
	g.POST("/articles/:id/restore", m.handler.RestoreArticle)

	g.GET("/article-categories", m.handler.AdminListCategories)
	g.GET("/article-categories/:id", m.handler.AdminGetCategory)
	g.POST("/article-categories", m.handler.CreateCategory)
	g.PUT("/article-categories/:id", m.handler.UpdateCategory)
	g.DELETE("/article-categories/:id", m.handler.DeleteCategory)
	g.POST("/article-categories/:id/restore", m.handler.RestoreCategory)
}
