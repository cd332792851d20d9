// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/circuitbreaker"
	"github.com/packsmart/packsmart-service/internal/middleware"
	"github.com/packsmart/packsmart-service/internal/repository"
	"github.com/packsmart/packsmart-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	TripRepo            repository.TripRepositoryInterface
	ItemRepo            repository.ItemRepositoryInterface
	UserRepo            repository.UserRepositoryInterface
	TokenRepo           repository.TokenRepositoryInterface
	ProgressRepo        repository.ProgressRepositoryInterface
	LoggingService      service.LoggingService
	TripsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the service then
// runs with the engine endpoints only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	tripsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-trips",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	tripRepo := repository.NewTripRepositoryWithCircuitBreaker(repository.NewTripRepository(db.Database), tripsCB)
	itemRepo := repository.NewItemRepositoryWithCircuitBreaker(repository.NewItemRepository(db.Database), tripsCB)

	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)
	progressRepo := repository.NewProgressRepository(db.Database)

	// Request logs are written through the buffered async pipeline
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	return &DatabaseComponents{
		TripRepo:            tripRepo,
		ItemRepo:            itemRepo,
		UserRepo:            userRepo,
		TokenRepo:           tokenRepo,
		ProgressRepo:        progressRepo,
		LoggingService:      loggingService,
		TripsCircuitBreaker: tripsCB,
		LogsCircuitBreaker:  logsCB,
	}
}
