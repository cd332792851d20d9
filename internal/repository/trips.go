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

// TripRepository implements TripRepositoryInterface using MongoDB.
type TripRepository struct {
	collection *mongo.Collection
}

// NewTripRepository creates a new trip repository.
func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{
		collection: db.Collection("trips"),
	}
}

// Create inserts a new trip into the database.
func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()
	if trip.ID.IsZero() {
		trip.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, trip)
	return err
}

// FindByID finds a trip by ID. Returns (nil, nil) when not found.
func (r *TripRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Trip, error) {
	var trip model.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindByUser lists a user's trips, newest first.
func (r *TripRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]*model.Trip, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	if skip > 0 {
		findOptions.SetSkip(skip)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var trips []*model.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Update replaces mutable trip fields.
func (r *TripRepository) Update(ctx context.Context, trip *model.Trip) error {
	trip.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        trip.Name,
			"destination": trip.Destination,
			"start_date":  trip.StartDate,
			"end_date":    trip.EndDate,
			"updated_at":  trip.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trip.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a trip by ID.
func (r *TripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
