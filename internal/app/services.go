// Package app provides service initialization.
package app

import (
	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/service"
)

// EngineComponents holds the catalogue and the pure packing engine services.
type EngineComponents struct {
	Catalog   *catalog.Catalog
	Scaler    service.QuantityScaler
	Estimator service.WeightEstimator
	Suggester service.SuggestionMatcher
	Travel    service.TravelService
}

// InitializeEngine loads the static catalogue and builds the engine services.
// The catalogue is validated on load; an invalid catalogue is a programming
// error and aborts startup.
func InitializeEngine(cfg config.CacheConfig) (*EngineComponents, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	var opts []service.Option
	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	return &EngineComponents{
		Catalog:   cat,
		Scaler:    service.NewListScalerService(cat, opts...),
		Estimator: service.NewWeightEstimatorService(cat),
		Suggester: service.NewSuggestionMatcherService(cat),
		Travel:    service.NewTravelService(cat),
	}, nil
}
