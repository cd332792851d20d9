// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"strings"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

// PackingStyle controls how aggressively quantities are scaled.
type PackingStyle string

const (
	StyleLight    PackingStyle = "light"
	StyleBalanced PackingStyle = "balanced"
	StyleThorough PackingStyle = "thorough"
)

// Valid reports whether the style is one of the supported values.
func (s PackingStyle) Valid() bool {
	switch s {
	case StyleLight, StyleBalanced, StyleThorough:
		return true
	}
	return false
}

// ScaleTemplateRequest represents the JSON request body for scaling a
// smart-list template to a trip duration.
//
// @Description Request to scale a packing template to a trip duration and style
// @Example {"template_id": "hawaii-beach-vacation", "duration_days": 14, "style": "thorough"}
type ScaleTemplateRequest struct {
	// TemplateID identifies the smart-list template to scale.
	TemplateID string `json:"template_id" binding:"required" example:"hawaii-beach-vacation"`
	// DurationDays is the trip length in days. Must be greater than 0.
	DurationDays int `json:"duration_days" binding:"required,gt=0" example:"14" minimum:"1"`
	// Style is the packing style: light, balanced, or thorough.
	// Defaults to balanced when omitted.
	Style PackingStyle `json:"style,omitempty" example:"balanced"`
} // @name ScaleTemplateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidDurationDays is returned when duration_days is not positive.
	ErrInvalidDurationDays = &ValidationError{
		Field:   "duration_days",
		Message: "must be a positive integer",
	}
	// ErrInvalidStyle is returned when style is not a supported value.
	ErrInvalidStyle = &ValidationError{
		Field:   "style",
		Message: "must be one of light, balanced, thorough",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *ScaleTemplateRequest) Validate() error {
	if strings.TrimSpace(r.TemplateID) == "" {
		return &ValidationError{Field: "template_id", Message: "is required"}
	}
	if r.DurationDays <= 0 {
		return ErrInvalidDurationDays
	}
	if r.Style != "" && !r.Style.Valid() {
		return ErrInvalidStyle
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// EstimateItem is one packing item sent to the weight estimator.
type EstimateItem struct {
	Name     string         `json:"name" binding:"required" example:"T-Shirt"`
	Category model.Category `json:"category" example:"clothes"`
	Quantity int            `json:"quantity" example:"5" minimum:"0"`
	Packed   bool           `json:"packed" example:"true"`
	Luggage  model.Luggage  `json:"luggage,omitempty" example:"checked"`
}

// EstimateWeightRequest represents the JSON request body for the ad-hoc
// weight estimation endpoint.
//
// @Description Request to estimate luggage weight for a list of items
type EstimateWeightRequest struct {
	// Items is the packing list to estimate. Unpacked items are ignored.
	Items []EstimateItem `json:"items" binding:"required"`
	// AirlineCode selects the baggage rule. Unknown codes use a default rule.
	AirlineCode string `json:"airline_code,omitempty" example:"HA"`
	// FlightType is domestic or international. Defaults to international.
	FlightType model.FlightType `json:"flight_type,omitempty" example:"international"`
	// Class is the cabin class. Defaults to economy.
	Class model.CabinClass `json:"class,omitempty" example:"economy"`
} // @name EstimateWeightRequest

// Validate performs custom validation on the estimate request.
func (r *EstimateWeightRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{
			Field:   "items",
			Message: "must not be empty",
		}
	}
	for i, item := range r.Items {
		if strings.TrimSpace(item.Name) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].name", i),
				Message: "is required",
			}
		}
		if item.Quantity < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must not be negative",
			}
		}
		if item.Category != "" && !item.Category.Valid() {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].category", i),
				Message: "unknown category",
			}
		}
	}
	if r.FlightType != "" && !r.FlightType.Valid() {
		return &ValidationError{Field: "flight_type", Message: "must be domestic or international"}
	}
	if r.Class != "" && !r.Class.Valid() {
		return &ValidationError{Field: "class", Message: "unknown cabin class"}
	}
	return nil
}

// CreateTripRequest represents the JSON request body for creating a trip.
//
// @Description Request to create a new trip
// @Example {"name": "Maui 2026", "destination": "Hawaii", "start_date": "2026-09-01T00:00:00Z", "end_date": "2026-09-14T00:00:00Z"}
type CreateTripRequest struct {
	// Name is the trip's display name.
	Name string `json:"name" binding:"required,min=1,max=120" example:"Maui 2026"`
	// Destination is free-form text.
	Destination string `json:"destination,omitempty" example:"Hawaii"`
	// StartDate and EndDate bound the trip. Both optional.
	StartDate *string `json:"start_date,omitempty" example:"2026-09-01T00:00:00Z"`
	EndDate   *string `json:"end_date,omitempty" example:"2026-09-14T00:00:00Z"`
} // @name CreateTripRequest

// Validate performs custom validation on the create trip request.
func (r *CreateTripRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

// UpdateTripRequest carries partial trip updates. Nil fields are left unchanged.
type UpdateTripRequest struct {
	Name        *string `json:"name,omitempty"`
	Destination *string `json:"destination,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
} // @name UpdateTripRequest

// Validate performs custom validation on the update trip request.
func (r *UpdateTripRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// CreateItemRequest represents the JSON request body for adding an item to a trip.
//
// @Description Request to add a packing item to a trip
// @Example {"name": "Snorkel", "category": "miscellaneous", "quantity": 1, "luggage": "checked"}
type CreateItemRequest struct {
	// Name is the item's display name.
	Name string `json:"name" binding:"required,min=1,max=120" example:"Snorkel"`
	// Category defaults to miscellaneous when omitted.
	Category model.Category `json:"category,omitempty" example:"miscellaneous"`
	// Quantity defaults to 1 and is clamped to at least 1.
	Quantity int `json:"quantity,omitempty" example:"1"`
	// Luggage is the bag assignment (carry-on, checked, backpack, personal).
	Luggage model.Luggage `json:"luggage,omitempty" example:"checked"`
} // @name CreateItemRequest

// Validate performs custom validation on the create item request.
func (r *CreateItemRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if r.Category != "" && !r.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	if r.Luggage != "" && !r.Luggage.Valid() {
		return &ValidationError{Field: "luggage", Message: "unknown luggage type"}
	}
	return nil
}

// UpdateItemRequest carries partial item updates. Nil fields are left unchanged.
type UpdateItemRequest struct {
	Name     *string         `json:"name,omitempty"`
	Category *model.Category `json:"category,omitempty"`
	Quantity *int            `json:"quantity,omitempty"`
	Packed   *bool           `json:"packed,omitempty"`
	Luggage  *model.Luggage  `json:"luggage,omitempty"`
} // @name UpdateItemRequest

// Validate performs custom validation on the update item request.
func (r *UpdateItemRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if r.Category != nil && !r.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	if r.Luggage != nil && *r.Luggage != "" && !r.Luggage.Valid() {
		return &ValidationError{Field: "luggage", Message: "unknown luggage type"}
	}
	return nil
}

// ImportTemplateRequest represents the JSON request body for importing a
// scaled smart list into a trip.
//
// @Description Request to import a scaled template into a trip
// @Example {"template_id": "hawaii-beach-vacation", "style": "balanced"}
type ImportTemplateRequest struct {
	// TemplateID identifies the smart-list template to import.
	TemplateID string `json:"template_id" binding:"required" example:"hawaii-beach-vacation"`
	// DurationDays overrides the trip's own duration when set.
	DurationDays int `json:"duration_days,omitempty" example:"14"`
	// Style is the packing style. Defaults to balanced.
	Style PackingStyle `json:"style,omitempty" example:"balanced"`
} // @name ImportTemplateRequest

// Validate performs custom validation on the import request.
func (r *ImportTemplateRequest) Validate() error {
	if strings.TrimSpace(r.TemplateID) == "" {
		return &ValidationError{Field: "template_id", Message: "is required"}
	}
	if r.DurationDays < 0 {
		return ErrInvalidDurationDays
	}
	if r.Style != "" && !r.Style.Valid() {
		return ErrInvalidStyle
	}
	return nil
}

// ConvertCurrencyRequest represents the query parameters for currency conversion.
type ConvertCurrencyRequest struct {
	From   string  `form:"from" binding:"required" example:"USD"`
	To     string  `form:"to" binding:"required" example:"EUR"`
	Amount float64 `form:"amount" binding:"required,gt=0" example:"100"`
} // @name ConvertCurrencyRequest

// Validate performs custom validation on the conversion request.
func (r *ConvertCurrencyRequest) Validate() error {
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
		return &ValidationError{Field: "from/to", Message: "currency codes are required"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be greater than 0"}
	}
	return nil
}
