package report

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires reporting routes. All routes are admin-only.
type Module struct {
	handler *Handler
}

// NewModule creates a new report Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("report.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers reporting API routes.
func (m *Module) RegisterRoutes(_, admin *gin.RouterGroup, guard middleware.Guard) {
	g := admin.Group("", guard(domain.PermReportsView))

	g.GET("/reports/summary", m.handler.Summary)
	g.GET("/reports/sales", m.handler.Sales)
}
