package http

import (
	"github.com/gin-gonic/gin"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/middleware"
)

// Minimum tiers for the premium engine routes.
const (
	estimateTier    = model.TierSilver
	suggestionsTier = model.TierOneTrip
)

// PackingRoutes handles packing engine route registration.
type PackingRoutes struct {
	handler *Handler
}

// NewPackingRoutes creates a new PackingRoutes instance.
func NewPackingRoutes(handler *Handler) *PackingRoutes {
	return &PackingRoutes{handler: handler}
}

// RegisterCatalogueRoutes registers read-only catalogue routes. These are
// public in both authentication modes.
func (r *PackingRoutes) RegisterCatalogueRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", r.handler.ListTemplates)
	rg.GET("/templates/:id", r.handler.GetTemplate)
	rg.GET("/airlines", r.handler.ListAirlines)
	rg.GET("/airlines/:code", r.handler.GetAirline)
	rg.GET("/achievements", r.handler.ListAchievements)
}

// RegisterPublicRoutes registers engine routes without tier gating (when auth
// is disabled).
func (r *PackingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/scale", r.handler.ScaleTemplate)
	rg.POST("/estimate", r.handler.EstimateWeight)
	rg.GET("/suggestions", r.handler.Suggest)
}

// RegisterProtectedRoutes registers engine routes with tier gating (when auth
// is enabled). Scaling is available to every tier; weight estimation and
// suggestions are premium features.
func (r *PackingRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	protected.POST("/scale", r.handler.ScaleTemplate)
	protected.POST("/estimate", middleware.RequireTier(estimateTier), r.handler.EstimateWeight)
	protected.GET("/suggestions", middleware.RequireTier(suggestionsTier), r.handler.Suggest)
}

// GetHandler returns the underlying packing handler.
func (r *PackingRoutes) GetHandler() *Handler {
	return r.handler
}
