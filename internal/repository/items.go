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

// ItemRepository implements ItemRepositoryInterface using MongoDB.
type ItemRepository struct {
	collection *mongo.Collection
}

// NewItemRepository creates a new packing item repository.
func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{
		collection: db.Collection("items"),
	}
}

// Create inserts a new packing item.
func (r *ItemRepository) Create(ctx context.Context, item *model.PackingItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// CreateMany inserts multiple packing items in one round trip.
// Used by template imports.
func (r *ItemRepository) CreateMany(ctx context.Context, items []*model.PackingItem) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		item.CreatedAt = time.Now()
		item.UpdatedAt = time.Now()
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		docs[i] = item
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByID finds a packing item by ID. Returns (nil, nil) when not found.
func (r *ItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackingItem, error) {
	var item model.PackingItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByTrip lists all items belonging to a trip in insertion order.
func (r *ItemRepository) FindByTrip(ctx context.Context, tripID primitive.ObjectID) ([]*model.PackingItem, error) {
	findOptions := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"trip_id": tripID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var items []*model.PackingItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces mutable item fields.
func (r *ItemRepository) Update(ctx context.Context, item *model.PackingItem) error {
	item.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":       item.Name,
			"category":   item.Category,
			"quantity":   item.Quantity,
			"packed":     item.Packed,
			"luggage":    item.Luggage,
			"updated_at": item.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": item.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a packing item by ID.
func (r *ItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByTrip removes every item belonging to a trip.
// Called when the trip itself is deleted.
func (r *ItemRepository) DeleteByTrip(ctx context.Context, tripID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"trip_id": tripID})
	return err
}

// CountByTrip returns the total and packed item counts for a trip.
func (r *ItemRepository) CountByTrip(ctx context.Context, tripID primitive.ObjectID) (total, packed int64, err error) {
	total, err = r.collection.CountDocuments(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return 0, 0, err
	}
	packed, err = r.collection.CountDocuments(ctx, bson.M{"trip_id": tripID, "packed": true})
	if err != nil {
		return 0, 0, err
	}
	return total, packed, nil
}
