package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/i18n"
	"github.com/packsmart/packsmart-service/internal/service"
)

// TravelHandler provides HTTP handlers for the travel utility routes.
type TravelHandler struct {
	travelService service.TravelService
}

// NewTravelHandler creates a new travel utilities handler.
func NewTravelHandler(travelService service.TravelService) *TravelHandler {
	return &TravelHandler{travelService: travelService}
}

// Convert handles GET /api/travel/convert requests.
//
// @Summary      Convert currency
// @Description  Converts an amount between currencies using the static advisory rate table. Rates are indicative only.
// @Tags         Travel
// @Produce      json
// @Param        from query string true "Source currency code" example("USD")
// @Param        to query string true "Target currency code" example("EUR")
// @Param        amount query number true "Amount to convert" example(100)
// @Success      200 {object} dto.SuccessResponse "Conversion result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown currency or invalid amount"
// @Router       /api/travel/convert [get]
func (h *TravelHandler) Convert(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		}
		return
	}

	result, err := h.travelService.Convert(req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCurrency) {
			builder.ErrorWithMessage(http.StatusBadRequest, "unknown currency code", err)
		} else {
			respondTravelError(builder, err)
		}
		return
	}
	builder.SuccessOK(result)
}

// WorldClock handles GET /api/travel/clock requests.
//
// @Summary      World clock
// @Description  Returns the current local time and UTC offset for an IANA timezone name.
// @Tags         Travel
// @Produce      json
// @Param        timezone query string true "IANA timezone name" example("Pacific/Honolulu")
// @Success      200 {object} dto.SuccessResponse "Local time"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown timezone"
// @Router       /api/travel/clock [get]
func (h *TravelHandler) WorldClock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	result, err := h.travelService.WorldClock(c.Query("timezone"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownTimezone) {
			builder.ErrorWithMessage(http.StatusBadRequest, "unknown timezone", err)
		} else {
			respondTravelError(builder, err)
		}
		return
	}
	builder.SuccessOK(result)
}

// Distance handles GET /api/travel/distance requests.
//
// @Summary      Great-circle distance
// @Description  Computes the haversine distance between two coordinate pairs in kilometers and miles.
// @Tags         Travel
// @Produce      json
// @Param        from_lat query number true "Origin latitude" example(33.9416)
// @Param        from_lng query number true "Origin longitude" example(-118.4085)
// @Param        to_lat query number true "Destination latitude" example(21.3187)
// @Param        to_lng query number true "Destination longitude" example(-157.9224)
// @Success      200 {object} dto.SuccessResponse "Distance"
// @Failure      400 {object} dto.ErrorResponse "Bad request - coordinates out of range"
// @Router       /api/travel/distance [get]
func (h *TravelHandler) Distance(c *gin.Context) {
	builder := NewResponseBuilder(c)

	coords := make([]float64, 0, 4)
	for _, name := range []string{"from_lat", "from_lng", "to_lat", "to_lng"} {
		v, err := strconv.ParseFloat(c.Query(name), 64)
		if err != nil {
			builder.ErrorWithMessage(http.StatusBadRequest, name+": must be a number", err)
			return
		}
		coords = append(coords, v)
	}

	result, err := h.travelService.Distance(coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			builder.ErrorWithMessage(http.StatusBadRequest, "coordinates out of range", err)
		} else {
			respondTravelError(builder, err)
		}
		return
	}
	builder.SuccessOK(result)
}

// respondTravelError handles unexpected travel service failures.
func respondTravelError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
