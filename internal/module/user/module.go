package user

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires user account routes. All routes are admin-only.
type Module struct {
	handler *Handler
}

// NewModule creates a new user Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers user API routes.
func (m *Module) RegisterRoutes(_, admin *gin.RouterGroup, guard middleware.Guard) {
	g := admin.Group("", guard(domain.PermUsersManage))

	g.GET("/users", m.handler.ListUsers)
	g.GET("/users/:id", m.handler.GetUser)
	g.POST("/users", m.handler.CreateUser)
	g.PUT("/users/:id", m.handler.UpdateUser)
	g.DELETE("/users/:id", m.handler.DeleteUser)
}
