package inquiry

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires inquiry routes.
type Module struct {
	handler *Handler
}

// NewModule creates a new inquiry Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("inquiry.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers inquiry API routes.
func (m *Module) RegisterRoutes(public, admin *gin.RouterGroup, guard middleware.Guard) {
	public.POST("/inquiries", m.handler.Submit)

	g := admin.Group("", guard(domain.PermInquiriesManage))

	g.GET("/inquiries", m.handler.AdminListInquiries)
	g.GET("/inquiries/:id", m.handler.AdminGetInquiry)
	g.PATCH("/inquiries/:id/status", m.handler.UpdateStatus)
	g.DELETE("/inquiries/:id", m.handler.DeleteInquiry)
}
