package order

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires order routes.
type Module struct {
	handler *Handler
}

// NewModule creates a new order Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("order.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers order API routes.
func (m *Module) RegisterRoutes(public, admin *gin.RouterGroup, guard middleware.Guard) {
	public.POST("/orders", m.handler.Checkout)
	public.GET("/orders/:invoice", m.handler.TrackOrder)

	g := admin.Group("", guard(domain.PermOrdersManage))

	g.GET("/orders", m.handler.AdminListOrders)
	g.GET("/orders/:id", m.handler.AdminGetOrder)
	g.PUT("/orders/:id", m.handler.AdminUpdateOrder)
	g.PATCH("/orders/:id/status", m.handler.UpdateStatus)
	g.DELETE("/orders/:id", m.handler.DeleteOrder)
}
