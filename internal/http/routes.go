package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes that are reachable without a JWT.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes behind JWT authentication.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
