package dto

import (
	"net/http"
	"time"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeTierRequired indicates the user's subscription tier is too low.
	ErrCodeTierRequired = "tier_required"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-08-31T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"duration_days: must be a positive integer"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-08-31T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ScaledListResponse is the result of scaling a template.
// @Description A smart-list template scaled to a trip duration
type ScaledListResponse struct {
	TemplateID   string              `json:"template_id" example:"hawaii-beach-vacation"`
	TemplateName string              `json:"template_name" example:"Hawaii Beach Vacation"`
	DurationDays int                 `json:"duration_days" example:"14"`
	Style        PackingStyle        `json:"style" example:"balanced"`
	Items        []model.CatalogItem `json:"items"`
} // @name ScaledListResponse

// SuggestionsResponse is the result of a related-items lookup.
type SuggestionsResponse struct {
	Query string              `json:"query" example:"suit"`
	Items []model.CatalogItem `json:"items"`
} // @name SuggestionsResponse

// TripResponse is a trip together with its packing progress.
type TripResponse struct {
	Trip        model.Trip `json:"trip"`
	ItemCount   int        `json:"item_count" example:"24"`
	PackedCount int        `json:"packed_count" example:"10"`
} // @name TripResponse

// ImportResponse reports the outcome of importing a template into a trip.
type ImportResponse struct {
	TripID       string `json:"trip_id"`
	TemplateID   string `json:"template_id" example:"hawaii-beach-vacation"`
	DurationDays int    `json:"duration_days" example:"14"`
	Imported     int    `json:"imported" example:"13"`
	Skipped      int    `json:"skipped" example:"1"`
} // @name ImportResponse

// ConversionResponse is the result of a currency conversion.
type ConversionResponse struct {
	From      string  `json:"from" example:"USD"`
	To        string  `json:"to" example:"EUR"`
	Amount    float64 `json:"amount" example:"100"`
	Converted float64 `json:"converted" example:"92"`
	Rate      float64 `json:"rate" example:"0.92"`
} // @name ConversionResponse

// WorldClockResponse is the local time at a destination.
type WorldClockResponse struct {
	Timezone  string `json:"timezone" example:"Pacific/Honolulu"`
	LocalTime string `json:"local_time" example:"2026-08-31T08:00:00-10:00"`
	UTCOffset string `json:"utc_offset" example:"-10:00"`
} // @name WorldClockResponse

// DistanceResponse is the great-circle distance between two coordinates.
type DistanceResponse struct {
	DistanceKm    float64 `json:"distance_km" example:"3980.4"`
	DistanceMiles float64 `json:"distance_miles" example:"2473.5"`
} // @name DistanceResponse

// ProgressResponse reports a user's gamification state.
type ProgressResponse struct {
	XP           int                 `json:"xp" example:"1250"`
	Level        int                 `json:"level" example:"5"`
	NextLevelXP  int                 `json:"next_level_xp" example:"1500"`
	Achievements []model.Achievement `json:"achievements"`
} // @name ProgressResponse
