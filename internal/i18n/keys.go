// Package i18n provides internationalization support for the packing service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyTierRequired indicates the feature needs a higher subscription tier.
	ErrKeyTierRequired = "error.tier_required"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyTripNotFound indicates the requested trip does not exist.
	ErrKeyTripNotFound = "error.trip_not_found"
	// ErrKeyItemNotFound indicates the requested packing item does not exist.
	ErrKeyItemNotFound = "error.item_not_found"
	// ErrKeyTemplateNotFound indicates the requested smart-list template does not exist.
	ErrKeyTemplateNotFound = "error.template_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationDurationDays indicates invalid duration_days validation.
	ErrKeyValidationDurationDays = "error.validation.duration_days"
	// ErrKeyValidationStyle indicates an unknown packing style value.
	ErrKeyValidationStyle = "error.validation.style"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates the request exceeded the processing deadline.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyTemplateScaled indicates a successful packing-list generation.
	SuccessKeyTemplateScaled = "success.template_scaled"
	// SuccessKeyWeightEstimated indicates a successful luggage weight estimate.
	SuccessKeyWeightEstimated = "success.weight_estimated"
)
