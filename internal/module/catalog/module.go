package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires catalog routes: public storefront reads and guarded admin CRUD.
type Module struct {
	handler *Handler
}

// NewModule creates a new catalog Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("catalog.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers catalog API routes.
func (m *Module) RegisterRoutes(public, admin *gin.RouterGroup, guard middleware.Guard) {
	public.GET("/products", m.handler.ListProducts)
	public.GET("/products/:slug", m.handler.GetProductBySlug)
	public.GET("/categories", m.handler.ListCategories)
	public.GET("/categories/:slug", m.handler.GetCategoryBySlug)

	g := admin.Group("", guard(domain.PermCatalogWrite))

	g.GET("/products", m.handler.AdminListProducts)
	g.GET("/products/:id", m.handler.AdminGetProduct)
	g.POST("/products", m.handler.CreateProduct)
	g.PUT("/products/:id", m.handler.UpdateProduct)
	g.DELETE("/products/:id", m.handler.DeleteProduct)
	g.POST("/products/:id/restore", m.handler.RestoreProduct)

	g.GET("/categories", m.handler.AdminListCategories)
	g.GET("/categories/:id", m.handler.AdminGetCategory)
	g.POST("/categories", m.handler.CreateCategory)
	g.PUT("/categories/:id", m.handler.UpdateCategory)
	g.DELETE("/categories/:id", m.handler.DeleteCategory)
	g.POST("/categories/:id/restore", m.handler.RestoreCategory)
}
