// Package model defines trip-related domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip represents a user's planned trip. Packing items reference it by ID.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name        string             `bson:"name" json:"name"`
	Destination string             `bson:"destination,omitempty" json:"destination,omitempty"`
	StartDate   *time.Time         `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time         `bson:"end_date,omitempty" json:"end_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// DurationDays returns the trip length in days, or 0 when dates are not set.
// A trip starting and ending on the same day counts as 1 day.
func (t *Trip) DurationDays() int {
	if t.StartDate == nil || t.EndDate == nil {
		return 0
	}
	days := int(t.EndDate.Sub(*t.StartDate).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}
