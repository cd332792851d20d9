// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/circuitbreaker"
	"github.com/packsmart/packsmart-service/internal/domain/model"
)

// TripRepositoryWithCircuitBreaker wraps TripRepository with circuit breaker protection.
type TripRepositoryWithCircuitBreaker struct {
	repo           *TripRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTripRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTripRepositoryWithCircuitBreaker(repo *TripRepository, cb *circuitbreaker.CircuitBreaker) *TripRepositoryWithCircuitBreaker {
	return &TripRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a trip with circuit breaker protection.
func (r *TripRepositoryWithCircuitBreaker) Create(ctx context.Context, trip *model.Trip) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, trip)
	})
}

// FindByID finds a trip with circuit breaker protection.
func (r *TripRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Trip, error) {
	var result *model.Trip
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByUser lists a user's trips with circuit breaker protection.
func (r *TripRepositoryWithCircuitBreaker) FindByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]*model.Trip, error) {
	var result []*model.Trip
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByUser(ctx, userID, limit, skip)
		return cbErr
	})
	return result, err
}

// Update updates a trip with circuit breaker protection.
func (r *TripRepositoryWithCircuitBreaker) Update(ctx context.Context, trip *model.Trip) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, trip)
	})
}

// Delete deletes a trip with circuit breaker protection.
func (r *TripRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TripRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ItemRepositoryWithCircuitBreaker wraps ItemRepository with circuit breaker protection.
type ItemRepositoryWithCircuitBreaker struct {
	repo           *ItemRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewItemRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewItemRepositoryWithCircuitBreaker(repo *ItemRepository, cb *circuitbreaker.CircuitBreaker) *ItemRepositoryWithCircuitBreaker {
	return &ItemRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts an item with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) Create(ctx context.Context, item *model.PackingItem) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, item)
	})
}

// CreateMany inserts items in bulk with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, items []*model.PackingItem) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, items)
	})
}

// FindByID finds an item with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackingItem, error) {
	var result *model.PackingItem
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByTrip lists a trip's items with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) FindByTrip(ctx context.Context, tripID primitive.ObjectID) ([]*model.PackingItem, error) {
	var result []*model.PackingItem
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByTrip(ctx, tripID)
		return cbErr
	})
	return result, err
}

// Update updates an item with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) Update(ctx context.Context, item *model.PackingItem) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, item)
	})
}

// Delete deletes an item with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// DeleteByTrip deletes a trip's items with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) DeleteByTrip(ctx context.Context, tripID primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DeleteByTrip(ctx, tripID)
	})
}

// CountByTrip counts a trip's items with circuit breaker protection.
func (r *ItemRepositoryWithCircuitBreaker) CountByTrip(ctx context.Context, tripID primitive.ObjectID) (total, packed int64, err error) {
	err = r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		total, packed, cbErr = r.repo.CountByTrip(ctx, tripID)
		return cbErr
	})
	return total, packed, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ItemRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
