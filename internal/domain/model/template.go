// Package model defines smart-list template entities.
package model

// SmartListTemplate is a pre-authored packing checklist for a trip archetype.
// Item quantities are authored for a trip of BaseDurationDays days.
type SmartListTemplate struct {
	// ID is the stable template key, e.g. "hawaii-beach-vacation".
	ID string `json:"id" example:"hawaii-beach-vacation"`
	// Name is the display title.
	Name string `json:"name" example:"Hawaii Beach Vacation"`
	// DestinationTag loosely describes the destination kind.
	DestinationTag string `json:"destination_tag" example:"beach"`
	// TripTypeTag loosely describes the trip purpose.
	TripTypeTag string `json:"trip_type_tag" example:"vacation"`
	// SeasonTag loosely describes the season the list was authored for.
	SeasonTag string `json:"season_tag" example:"summer"`
	// BaseDurationDays is the trip length the base quantities assume.
	BaseDurationDays int `json:"base_duration_days" example:"7"`
	// Items is the ordered item list.
	Items []CatalogItem `json:"items"`
}
