//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

func TestLogsRepository_CreateAndQuery(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)

	entries := []*model.LogEntry{
		{
			Level:      "info",
			Message:    "request completed",
			RequestID:  "req-1",
			Method:     "POST",
			Path:       "/api/scale",
			StatusCode: 200,
			Duration:   12,
		},
		{
			Level:      "error",
			Message:    "request failed",
			RequestID:  "req-2",
			Method:     "POST",
			Path:       "/api/estimate",
			StatusCode: 500,
			Error:      "boom",
		},
		{
			Level:      "info",
			Message:    "user action",
			RequestID:  "req-3",
			UserID:     "user-1",
			ActionType: "trip_create",
		},
	}
	require.NoError(t, repo.CreateMany(ctx, entries))

	t.Run("query by request id", func(t *testing.T) {
		got, err := repo.Query(ctx, model.LogQueryOptions{RequestID: "req-1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "request completed", got[0].Message)
	})

	t.Run("query by level", func(t *testing.T) {
		got, err := repo.Query(ctx, model.LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "boom", got[0].Error)
	})

	t.Run("query by path regex", func(t *testing.T) {
		got, err := repo.Query(ctx, model.LogQueryOptions{Path: "/api/"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("count matches filters", func(t *testing.T) {
		count, err := repo.Count(ctx, model.LogQueryOptions{Level: "info"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("limit applies", func(t *testing.T) {
		got, err := repo.Query(ctx, model.LogQueryOptions{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestLogsRepository_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)

	entry := &model.LogEntry{
		Level:   "info",
		Message: "single entry",
	}
	entry.WithField("template_id", "hawaii-beach-vacation")

	require.NoError(t, repo.Create(ctx, entry))
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	got, err := repo.Query(ctx, model.LogQueryOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hawaii-beach-vacation", got[0].Fields["template_id"])
}
