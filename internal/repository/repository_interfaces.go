// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

// TripRepositoryInterface defines the interface for trip repository operations.
type TripRepositoryInterface interface {
	Create(ctx context.Context, trip *model.Trip) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Trip, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]*model.Trip, error)
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ItemRepositoryInterface defines the interface for packing item repository operations.
type ItemRepositoryInterface interface {
	Create(ctx context.Context, item *model.PackingItem) error
	CreateMany(ctx context.Context, items []*model.PackingItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackingItem, error)
	FindByTrip(ctx context.Context, tripID primitive.ObjectID) ([]*model.PackingItem, error)
	Update(ctx context.Context, item *model.PackingItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByTrip(ctx context.Context, tripID primitive.ObjectID) error
	CountByTrip(ctx context.Context, tripID primitive.ObjectID) (total, packed int64, err error)
}

// UserRepositoryInterface defines the interface for user repository operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByEmailForAuth(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateTier(ctx context.Context, id primitive.ObjectID, tier model.Tier) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.User, error)
}

// TokenRepositoryInterface defines the interface for token repository operations.
type TokenRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, tokenString string) (*model.Token, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) ([]*model.Token, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error
	IsBlacklisted(ctx context.Context, tokenString string) (bool, error)
	CleanupExpired(ctx context.Context) error
}

// ProgressRepositoryInterface defines the interface for gamification state operations.
type ProgressRepositoryInterface interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.UserProgress, error)
	Upsert(ctx context.Context, progress *model.UserProgress) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
