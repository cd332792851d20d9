// Package app provides router configuration.
package app

import (
	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/http"
	"github.com/packsmart/packsmart-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	engine *EngineComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(engine.Scaler, engine.Estimator, engine.Suggester, engine.Catalog)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.TripsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_trips", dbComponents.TripsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication and trip services; both need the database
	var authService service.AuthService
	var tripService service.TripService
	var progressService service.ProgressService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
		progressService = service.NewProgressService(dbComponents.ProgressRepo, engine.Catalog)
		tripService = service.NewTripService(
			dbComponents.TripRepo,
			dbComponents.ItemRepo,
			engine.Scaler,
			engine.Estimator,
			progressService,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		AuthService:       authService,
		TripService:       tripService,
		ProgressService:   progressService,
		TravelService:     engine.Travel,
		Catalog:           engine.Catalog,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
