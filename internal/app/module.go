package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Module defines the contract for a self-registering business module.
// Each module registers its public storefront routes and its guarded admin
// routes. The guard wraps admin route groups with the permission check in
// force for the current configuration.
type Module interface {
	RegisterRoutes(public, admin *gin.RouterGroup, guard middleware.Guard)
}
