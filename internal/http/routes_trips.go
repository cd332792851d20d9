package http

import (
	"github.com/gin-gonic/gin"
	"github.com/packsmart/packsmart-service/internal/middleware"
	"github.com/packsmart/packsmart-service/internal/service"
)

// TripRoutes handles trip, item, and progress route registration. All of
// these routes need an authenticated user.
type TripRoutes struct {
	handler *TripsHandler
}

// NewTripRoutes creates a new TripRoutes instance.
func NewTripRoutes(tripService service.TripService, progressService service.ProgressService) *TripRoutes {
	return &TripRoutes{
		handler: NewTripsHandler(tripService, progressService),
	}
}

// RegisterProtectedRoutes registers trip routes on the authenticated group.
func (r *TripRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	trips := protected.Group("/trips")
	{
		trips.POST("", r.handler.CreateTrip)
		trips.GET("", r.handler.ListTrips)
		trips.GET("/:id", r.handler.GetTrip)
		trips.PUT("/:id", r.handler.UpdateTrip)
		trips.DELETE("/:id", r.handler.DeleteTrip)

		trips.POST("/:id/items", r.handler.AddItem)
		trips.GET("/:id/items", r.handler.ListItems)

		trips.POST("/:id/import", r.handler.ImportTemplate)
		trips.GET("/:id/estimate", middleware.RequireTier(estimateTier), r.handler.EstimateTrip)
	}

	protected.PATCH("/items/:id", r.handler.UpdateItem)
	protected.DELETE("/items/:id", r.handler.DeleteItem)

	protected.GET("/progress", r.handler.GetProgress)
}

// GetHandler returns the underlying trips handler.
func (r *TripRoutes) GetHandler() *TripsHandler {
	return r.handler
}
