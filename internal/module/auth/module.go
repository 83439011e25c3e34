package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module wires the login route. Login lives on the public group; everything
// behind the admin group assumes the token it issues.
type Module struct {
	handler *Handler
}

// NewModule creates a new auth Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers authentication API routes.
func (m *Module) RegisterRoutes(public, _ *gin.RouterGroup, _ middleware.Guard) {
	public.POST("/auth/login", m.handler.Login)
}
