package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/i18n"
	"github.com/packsmart/packsmart-service/internal/middleware"
	"github.com/packsmart/packsmart-service/internal/service"
)

// freeTierTripLimit caps how many trips a free-tier user may keep.
// Paid tiers have no limit.
const freeTierTripLimit = 3

// TripsHandler provides HTTP handlers for trip and packing item routes.
type TripsHandler struct {
	tripService     service.TripService
	progressService service.ProgressService
}

// NewTripsHandler creates a new trips handler.
func NewTripsHandler(tripService service.TripService, progressService service.ProgressService) *TripsHandler {
	return &TripsHandler{
		tripService:     tripService,
		progressService: progressService,
	}
}

// currentUserID extracts the authenticated user's ID from the context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok && !id.IsZero()
}

// pathObjectID parses a path parameter as a Mongo ObjectID.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(name))
}

// respondTripError maps trip service errors to HTTP responses.
func respondTripError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
	case errors.Is(err, service.ErrItemNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
	case errors.Is(err, service.ErrTemplateNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyTemplateNotFound, err)
	case errors.As(err, &validationErr):
		if validationErr.Field == "duration_days" {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDurationDays, err)
		} else {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		}
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// CreateTrip handles POST /api/trips requests.
//
// @Summary      Create a trip
// @Description  Creates a new trip for the authenticated user. Free-tier users are limited to a small number of trips; paid tiers are unlimited.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTripRequest true "Trip information"
// @Success      201 {object} dto.SuccessResponse "Created trip"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - free tier trip limit reached"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/trips [post]
func (h *TripsHandler) CreateTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondTripError(builder, err)
		return
	}

	if middleware.GetUserTier(c) == model.TierFree {
		existing, err := h.tripService.ListTrips(c.Request.Context(), userID, freeTierTripLimit, 0)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		if len(existing) >= freeTierTripLimit {
			builder.Error(http.StatusForbidden, i18n.ErrKeyTierRequired, errors.New("free tier trip limit reached"))
			return
		}
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		respondTripError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "trip_create", "Trip created", map[string]interface{}{
				"trip_id": trip.ID.Hex(),
				"name":    trip.Name,
			})
		}
	}

	builder.SuccessCreated(trip)
}

// ListTrips handles GET /api/trips requests.
//
// @Summary      List trips
// @Description  Returns the authenticated user's trips with packing counts. Supports limit and skip pagination.
// @Tags         Trips
// @Produce      json
// @Param        limit query int false "Maximum trips to return" default(50)
// @Param        skip query int false "Trips to skip" default(0)
// @Success      200 {object} dto.SuccessResponse "Trips"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/trips [get]
func (h *TripsHandler) ListTrips(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	limit := queryInt64(c, "limit", 50)
	skip := queryInt64(c, "skip", 0)

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID, limit, skip)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessOK(trips)
}

// GetTrip handles GET /api/trips/:id requests.
//
// @Summary      Get a trip
// @Description  Returns a single trip with its packing progress counts.
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} dto.SuccessResponse "Trip with counts"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/trips/{id} [get]
func (h *TripsHandler) GetTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), userID, tripID)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessOK(trip)
}

// UpdateTrip handles PUT /api/trips/:id requests.
//
// @Summary      Update a trip
// @Description  Updates trip name, destination, or dates. Fields omitted from the request are left unchanged.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        request body dto.UpdateTripRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated trip"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/trips/{id} [put]
func (h *TripsHandler) UpdateTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondTripError(builder, err)
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), userID, tripID, req)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessOK(trip)
}

// DeleteTrip handles DELETE /api/trips/:id requests.
//
// @Summary      Delete a trip
// @Description  Deletes a trip and all of its packing items.
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/trips/{id} [delete]
func (h *TripsHandler) DeleteTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		respondTripError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "trip_delete", "Trip deleted", map[string]interface{}{
				"trip_id": tripID.Hex(),
			})
		}
	}

	builder.SuccessNoContent()
}

// AddItem handles POST /api/trips/:id/items requests.
//
// @Summary      Add a packing item
// @Description  Adds an item to a trip's packing list. Blank categories default to miscellaneous and quantities below 1 are raised to 1.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        request body dto.CreateItemRequest true "Item information"
// @Success      201 {object} dto.SuccessResponse "Created item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/trips/{id}/items [post]
func (h *TripsHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondTripError(builder, err)
		return
	}

	item, err := h.tripService.AddItem(c.Request.Context(), userID, tripID, req)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessCreated(item)
}

// ListItems handles GET /api/trips/:id/items requests.
//
// @Summary      List packing items
// @Description  Returns all packing items for a trip.
// @Tags         Items
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} dto.SuccessResponse "Items"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/trips/{id}/items [get]
func (h *TripsHandler) ListItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	items, err := h.tripService.ListItems(c.Request.Context(), userID, tripID)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessOK(items)
}

// UpdateItem handles PATCH /api/items/:id requests.
//
// @Summary      Update a packing item
// @Description  Partially updates a packing item: rename, toggle packed, change quantity, or move it to a different luggage compartment. Quantities below 1 are raised to 1.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body dto.UpdateItemRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/items/{id} [patch]
func (h *TripsHandler) UpdateItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	itemID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondTripError(builder, err)
		return
	}

	item, err := h.tripService.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessOK(item)
}

// DeleteItem handles DELETE /api/items/:id requests.
//
// @Summary      Delete a packing item
// @Tags         Items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/items/{id} [delete]
func (h *TripsHandler) DeleteItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	itemID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
		return
	}

	if err := h.tripService.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessNoContent()
}

// ImportTemplate handles POST /api/trips/:id/import requests.
//
// @Summary      Import a template into a trip
// @Description  Scales a smart-list template to the trip's duration (or an explicit override) and inserts the resulting items into the trip. Items whose names already exist in the trip are skipped.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        request body dto.ImportTemplateRequest true "Template and scaling parameters"
// @Success      200 {object} dto.SuccessResponse "Import summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid duration or style"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown trip or template"
// @Security     BearerAuth
// @Router       /api/trips/{id}/import [post]
func (h *TripsHandler) ImportTemplate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	var req dto.ImportTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondTripError(builder, err)
		return
	}

	result, err := h.tripService.ImportTemplate(c.Request.Context(), userID, tripID, req)
	if err != nil {
		respondTripError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "template_import", "Template imported into trip", map[string]interface{}{
				"trip_id":     tripID.Hex(),
				"template_id": req.TemplateID,
				"imported":    result.Imported,
				"skipped":     result.Skipped,
			})
		}
	}

	builder.SuccessOK(result)
}

// EstimateTrip handles GET /api/trips/:id/estimate requests.
//
// @Summary      Estimate a trip's luggage weight
// @Description  Runs the weight estimator over the trip's packed items against the selected airline's baggage limits.
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        airline query string false "Airline IATA code" example("HA")
// @Param        flight_type query string false "domestic or international" default(international)
// @Param        class query string false "Cabin class" default(economy)
// @Success      200 {object} dto.SuccessResponse "Weight estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown flight type or class"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - tier upgrade required"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/trips/{id}/estimate [get]
func (h *TripsHandler) EstimateTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	tripID, err := pathObjectID(c, "id")
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, err)
		return
	}

	flightType := model.FlightType(strings.ToLower(c.DefaultQuery("flight_type", "")))
	if flightType != "" && !flightType.Valid() {
		builder.ErrorWithMessage(http.StatusBadRequest, "flight_type: must be domestic or international", nil)
		return
	}
	class := model.CabinClass(strings.ToLower(c.DefaultQuery("class", "")))
	if class != "" && !class.Valid() {
		builder.ErrorWithMessage(http.StatusBadRequest, "class: unknown cabin class", nil)
		return
	}

	estimate, err := h.tripService.EstimateTrip(c.Request.Context(), userID, tripID, c.Query("airline"), flightType, class)
	if err != nil {
		respondTripError(builder, err)
		return
	}
	builder.SuccessOK(estimate)
}

// GetProgress handles GET /api/progress requests.
//
// @Summary      Get packing progress
// @Description  Returns the authenticated user's XP, level, and unlocked achievements.
// @Tags         Gamification
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Progress"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/progress [get]
func (h *TripsHandler) GetProgress(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	if h.progressService == nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, service.ErrRepositoryNotConfigured)
		return
	}

	progress, err := h.progressService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(progress)
}

// queryInt64 parses a query parameter as int64, falling back to a default.
func queryInt64(c *gin.Context, name string, def int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}
