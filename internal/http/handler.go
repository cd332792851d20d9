package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/i18n"
	"github.com/packsmart/packsmart-service/internal/metrics"
	"github.com/packsmart/packsmart-service/internal/middleware"
	"github.com/packsmart/packsmart-service/internal/service"
)

// Handler provides HTTP handlers for the packing engine routes: template
// scaling, weight estimation, suggestions, and catalogue lookups.
type Handler struct {
	scaler    service.QuantityScaler
	estimator service.WeightEstimator
	suggester service.SuggestionMatcher
	catalog   *catalog.Catalog
}

// NewHandler creates a new Handler instance.
func NewHandler(scaler service.QuantityScaler, estimator service.WeightEstimator, suggester service.SuggestionMatcher, cat *catalog.Catalog) *Handler {
	return &Handler{
		scaler:    scaler,
		estimator: estimator,
		suggester: suggester,
		catalog:   cat,
	}
}

// ScaleTemplate handles POST /api/scale requests.
//
// @Summary      Scale a packing template
// @Description  Scales a smart-list template's quantities to a trip duration and packing style. Per-day items grow with the trip length, re-worn items follow their own cadence, and everything else keeps its base quantity. Supports idempotency via Idempotency-Key header.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ScaleTemplateRequest true "Template and trip parameters"
// @Success      200 {object} dto.SuccessResponse "Scaled packing list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown template"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/scale [post]
func (h *Handler) ScaleTemplate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ScaleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.scaleValidationError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "scale", "Template scaling requested", map[string]interface{}{
				"template_id":   req.TemplateID,
				"duration_days": req.DurationDays,
				"style":         string(req.Style),
			})
		}
	}

	result, err := h.scaler.ScaleTemplate(req.TemplateID, req.DurationDays, req.Style)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyTemplateNotFound, err)
		default:
			h.scaleValidationError(builder, err)
		}
		return
	}

	builder.SuccessOK(result)
}

// scaleValidationError maps scaling validation failures to 400 responses.
func (h *Handler) scaleValidationError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		metrics.RecordListGeneration(0, "validation_error")
		switch validationErr.Field {
		case "duration_days":
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDurationDays, err)
		case "style":
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationStyle, err)
		default:
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		}
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// EstimateWeight handles POST /api/estimate requests.
//
// @Summary      Estimate luggage weight
// @Description  Estimates total luggage weight for a list of packed items using the static per-item weight table, and compares the total against the selected airline's carry-on and checked limits. Unknown airlines fall back to a default rule.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        request body dto.EstimateWeightRequest true "Items and flight parameters"
// @Success      200 {object} dto.SuccessResponse "Weight estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - tier upgrade required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/estimate [post]
func (h *Handler) EstimateWeight(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.EstimateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	result := h.estimator.Estimate(req.Items, req.AirlineCode, req.FlightType, req.Class)
	builder.SuccessOK(result)
}

// Suggest handles GET /api/suggestions requests.
//
// @Summary      Suggest related items
// @Description  Returns catalogue items commonly packed together with the given item. Items whose names appear in the blocked list are filtered out. Unknown items yield an empty list.
// @Tags         Packing
// @Produce      json
// @Param        item query string true "Last added item name" example("suit")
// @Param        blocked query string false "Comma-separated item names to exclude"
// @Success      200 {object} dto.SuccessResponse "Suggested items"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing item parameter"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - tier upgrade required"
// @Security     BearerAuth
// @Router       /api/suggestions [get]
func (h *Handler) Suggest(c *gin.Context) {
	builder := NewResponseBuilder(c)

	item := strings.TrimSpace(c.Query("item"))
	if item == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "item: query parameter is required", nil)
		return
	}

	var blocked []string
	if raw := c.Query("blocked"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				blocked = append(blocked, name)
			}
		}
	}

	items := h.suggester.Suggest(item, blocked)
	builder.SuccessOK(dto.SuggestionsResponse{Query: item, Items: items})
}

// ListTemplates handles GET /api/templates requests.
//
// @Summary      List packing templates
// @Description  Returns all smart-list templates from the static catalogue.
// @Tags         Catalogue
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Templates"
// @Router       /api/templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.catalog.Templates())
}

// GetTemplate handles GET /api/templates/:id requests.
//
// @Summary      Get a packing template
// @Description  Returns a single smart-list template by its identifier.
// @Tags         Catalogue
// @Produce      json
// @Param        id path string true "Template ID" example("hawaii-beach-vacation")
// @Success      200 {object} dto.SuccessResponse "Template"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown template"
// @Router       /api/templates/{id} [get]
func (h *Handler) GetTemplate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	tpl, ok := h.catalog.TemplateByID(c.Param("id"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTemplateNotFound, service.ErrTemplateNotFound)
		return
	}
	builder.SuccessOK(tpl)
}

// ListAirlines handles GET /api/airlines requests.
//
// @Summary      List airline baggage rules
// @Description  Returns the static airline baggage rule table, including carry-on and checked limits per flight type and cabin class.
// @Tags         Catalogue
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Baggage rules"
// @Router       /api/airlines [get]
func (h *Handler) ListAirlines(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.catalog.Rules())
}

// GetAirline handles GET /api/airlines/:code requests.
//
// @Summary      Get airline baggage rules
// @Description  Returns the baggage rules for a single airline code. Unknown codes return 404; the estimation endpoints fall back to a default rule instead.
// @Tags         Catalogue
// @Produce      json
// @Param        code path string true "Airline IATA code" example("HA")
// @Success      200 {object} dto.SuccessResponse "Baggage rules for the airline"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown airline code"
// @Router       /api/airlines/{code} [get]
func (h *Handler) GetAirline(c *gin.Context) {
	builder := NewResponseBuilder(c)

	rules := h.catalog.RulesForAirline(c.Param("code"))
	if len(rules) == 0 {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, errors.New("unknown airline code"))
		return
	}
	builder.SuccessOK(rules)
}

// ListAchievements handles GET /api/achievements requests.
//
// @Summary      List achievements
// @Description  Returns the full achievement catalogue with unlock criteria and bonus XP values.
// @Tags         Gamification
// @Produce     json
// @Success      200 {object} dto.SuccessResponse "Achievements"
// @Router       /api/achievements [get]
func (h *Handler) ListAchievements(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.catalog.Achievements())
}
