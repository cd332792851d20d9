package http

import (
	"github.com/gin-gonic/gin"
	"github.com/packsmart/packsmart-service/internal/service"
)

// TravelRoutes handles travel utility route registration.
type TravelRoutes struct {
	handler *TravelHandler
}

// NewTravelRoutes creates a new TravelRoutes instance.
func NewTravelRoutes(travelService service.TravelService) *TravelRoutes {
	return &TravelRoutes{
		handler: NewTravelHandler(travelService),
	}
}

// RegisterPublicRoutes registers travel utility routes. Conversions and
// lookups are advisory and need no user identity.
func (r *TravelRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	travel := rg.Group("/travel")
	{
		travel.GET("/convert", r.handler.Convert)
		travel.GET("/clock", r.handler.WorldClock)
		travel.GET("/distance", r.handler.Distance)
	}
}
