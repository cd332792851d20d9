package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

// ProgressRepository implements ProgressRepositoryInterface using MongoDB.
// Each user has at most one progress document, keyed by user_id.
type ProgressRepository struct {
	collection *mongo.Collection
}

// NewProgressRepository creates a new progress repository.
func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{
		collection: db.Collection("progress"),
	}
}

// FindByUser returns the user's progress document. Returns (nil, nil) when
// the user has no recorded progress yet.
func (r *ProgressRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert writes the full progress document for a user, creating it on first use.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *model.UserProgress) error {
	progress.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"xp":           progress.XP,
			"level":        progress.Level,
			"event_counts": progress.EventCounts,
			"achievements": progress.Achievements,
			"updated_at":   progress.UpdatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": progress.UserID}, update, opts)
	return err
}
