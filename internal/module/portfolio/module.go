package portfolio

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires portfolio routes.
type Module struct {
	handler *Handler
}

// NewModule creates a new portfolio Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("portfolio.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers portfolio API routes.
func (m *Module) RegisterRoutes(public, admin *gin.RouterGroup, guard middleware.Guard) {
	public.GET("/portfolio", m.handler.ListItems)
	public.GET("/portfolio/:slug", m.handler.GetItemBySlug)
	public.GET("/portfolio-categories", m.handler.ListCategories)

	g := admin.Group("", guard(domain.PermPortfolioWrite))

	g.GET("/portfolio", m.handler.AdminListItems)
	g.GET("/portfolio/:id", m.handler.AdminGetItem)
	g.POST("/portfolio", m.handler.CreateItem)
	g.PUT("/portfolio/:id", m.handler.UpdateItem)
	g.DELETE("/portfolio/:id", m.handler.DeleteItem)
	g.POST("/portfolio/:id/restore", m.handler.RestoreItem)

	g.GET("/portfolio-categories", m.handler.AdminListCategories)
	g.GET("/portfolio-categories/:id", m.handler.AdminGetCategory)
	g.POST("/portfolio-categories", m.handler.CreateCategory)
	g.PUT("/portfolio-categories/:id", m.handler.UpdateCategory)
	g.DELETE("/portfolio-categories/:id", m.handler.DeleteCategory)
	g.POST("/portfolio-categories/:id/restore", m.handler.RestoreCategory)
}
