//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/circuitbreaker"
)

func TestTripRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "mongodb-trips-test",
	})
	repo := NewTripRepositoryWithCircuitBreaker(NewTripRepository(db.Database), cb)

	userID := primitive.NewObjectID()
	trip := newTestTrip(userID, "cb trip")

	t.Run("operations pass through when closed", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, trip))

		found, err := repo.FindByID(ctx, trip.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "cb trip", found.Name)

		trips, err := repo.FindByUser(ctx, userID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, trips, 1)
	})

	t.Run("circuit stays healthy after successful calls", func(t *testing.T) {
		stats := cb.GetStats()
		assert.True(t, stats.IsHealthy)
		assert.Equal(t, "closed", stats.State)
	})

	t.Run("exposes its circuit breaker for monitoring", func(t *testing.T) {
		assert.Same(t, cb, repo.GetCircuitBreaker())
	})
}
