// Package model defines the core domain entities for the packing service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category classifies a packing item.
type Category string

// The five fixed item categories.
const (
	CategoryClothes       Category = "clothes"
	CategoryToiletries    Category = "toiletries"
	CategoryElectronics   Category = "electronics"
	CategoryDocuments     Category = "documents"
	CategoryMiscellaneous Category = "miscellaneous"
)

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryClothes, CategoryToiletries, CategoryElectronics,
		CategoryDocuments, CategoryMiscellaneous:
		return true
	}
	return false
}

// Luggage identifies the physical bag an item is assigned to.
type Luggage string

// The four fixed luggage compartments.
const (
	LuggageCarryOn  Luggage = "carry-on"
	LuggageChecked  Luggage = "checked"
	LuggageBackpack Luggage = "backpack"
	LuggagePersonal Luggage = "personal"
)

// Valid reports whether l is one of the fixed compartments.
func (l Luggage) Valid() bool {
	switch l {
	case LuggageCarryOn, LuggageChecked, LuggageBackpack, LuggagePersonal:
		return true
	}
	return false
}

// CatalogItem is a single line of a smart-list template.
// BaseQuantity is authored for a 7-day trip; the quantity scaler adjusts it.
//
// @Description Template line item with a 7-day baseline quantity
// @Example {"name": "Underwear", "category": "clothes", "quantity": 8, "luggage": "checked"}
type CatalogItem struct {
	// Name is the display name of the item.
	Name string `json:"name" example:"Underwear"`
	// Category is one of the five fixed item categories.
	Category Category `json:"category" example:"clothes"`
	// Quantity is the item count (base quantity in a template, scaled in results).
	Quantity int `json:"quantity" example:"8"`
	// Luggage is the suggested compartment, empty when unassigned.
	Luggage Luggage `json:"luggage,omitempty" example:"checked"`
}

// PackingItem is a user-owned checklist entry belonging to exactly one trip.
type PackingItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID    primitive.ObjectID `bson:"trip_id" json:"trip_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name      string             `bson:"name" json:"name"`
	Category  Category           `bson:"category" json:"category"`
	Packed    bool               `bson:"packed" json:"packed"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Luggage   Luggage            `bson:"luggage,omitempty" json:"luggage,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
