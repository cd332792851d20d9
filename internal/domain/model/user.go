// Package model defines user-related domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tier is a subscription tier controlling which features are enabled.
type Tier string

// Subscription tiers, ordered from least to most privileged.
const (
	TierFree      Tier = "free"
	TierOneTrip   Tier = "one-trip"
	TierSilver    Tier = "silver"
	TierGold      Tier = "gold"
	TierExclusive Tier = "exclusive"
)

// tierRank orders tiers for AtLeast comparisons.
var tierRank = map[Tier]int{
	TierFree:      0,
	TierOneTrip:   1,
	TierSilver:    2,
	TierGold:      3,
	TierExclusive: 4,
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// AtLeast reports whether t grants at least the privileges of required.
// Unknown tiers rank below free.
func (t Tier) AtLeast(required Tier) bool {
	return tierRank[t] >= tierRank[required]
}

// User represents a registered user.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // Never serialize password
	Name      string             `bson:"name" json:"name"`
	Tier      Tier               `bson:"tier" json:"tier"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Token represents a refresh token or blacklisted token.
type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Token     string             `bson:"token" json:"token"`
	Type      string             `bson:"type" json:"type"` // "refresh" or "blacklist"
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
