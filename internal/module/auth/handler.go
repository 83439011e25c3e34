package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler handles authentication requests.
type Handler struct {
	svc Service
}

// NewHandler creates a new auth Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, token)
}
