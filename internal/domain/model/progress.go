// Package model defines gamification domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// XPEvent identifies an action that awards experience points.
type XPEvent string

// Actions that award XP.
const (
	EventTripCreated      XPEvent = "trip_created"
	EventTemplateImported XPEvent = "template_imported"
	EventItemPacked       XPEvent = "item_packed"
	EventTripFullyPacked  XPEvent = "trip_fully_packed"
)

// Achievement is a static catalogue entry describing an unlockable badge.
type Achievement struct {
	// ID is the stable achievement key, e.g. "first-trip".
	ID string `json:"id" example:"first-trip"`
	// Name is the display title.
	Name string `json:"name" example:"First Steps"`
	// Description explains how the achievement is earned.
	Description string `json:"description" example:"Create your first trip"`
	// Event is the XP event the achievement counts.
	Event XPEvent `json:"event" example:"trip_created"`
	// Threshold is the event count required to unlock.
	Threshold int `json:"threshold" example:"1"`
	// BonusXP is awarded once on unlock.
	BonusXP int `json:"bonus_xp" example:"50"`
}

// UserProgress tracks a user's XP, level, and unlocked achievements.
type UserProgress struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	XP           int                `bson:"xp" json:"xp"`
	Level        int                `bson:"level" json:"level"`
	EventCounts  map[string]int     `bson:"event_counts" json:"event_counts"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// HasAchievement reports whether the achievement with the given ID is unlocked.
func (p *UserProgress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
