package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
)

const (
	earthRadiusKm  = 6371.0
	milesPerKm     = 0.621371
	degreesPerHalf = 180.0
)

var (
	// ErrUnknownCurrency is returned when a currency code is not in the rate table.
	ErrUnknownCurrency = errors.New("unknown currency code")
	// ErrUnknownTimezone is returned when a timezone name cannot be resolved.
	ErrUnknownTimezone = errors.New("unknown timezone")
	// ErrInvalidCoordinates is returned when a latitude or longitude is out of range.
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

// TravelService provides trip planning utilities: currency conversion,
// destination local time, and great-circle distance.
type TravelService interface {
	Convert(req dto.ConvertCurrencyRequest) (*dto.ConversionResponse, error)
	WorldClock(timezone string) (*dto.WorldClockResponse, error)
	Distance(fromLat, fromLng, toLat, toLng float64) (*dto.DistanceResponse, error)
}

// TravelServiceImpl implements TravelService over the static rate table.
type TravelServiceImpl struct {
	catalog *catalog.Catalog
}

// NewTravelService creates a new travel utilities service.
func NewTravelService(cat *catalog.Catalog) TravelService {
	return &TravelServiceImpl{catalog: cat}
}

// Convert converts an amount between two currencies via their USD rates.
// The result is rounded to two decimals.
func (s *TravelServiceImpl) Convert(req dto.ConvertCurrencyRequest) (*dto.ConversionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))

	fromRate, ok := s.catalog.CurrencyRate(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	toRate, ok := s.catalog.CurrencyRate(to)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	// Rates are expressed as units of currency per USD.
	rate := toRate / fromRate

	return &dto.ConversionResponse{
		From:      from,
		To:        to,
		Amount:    req.Amount,
		Converted: roundKg(req.Amount * rate),
		Rate:      rate,
	}, nil
}

// WorldClock returns the current local time in the given IANA timezone.
func (s *TravelServiceImpl) WorldClock(timezone string) (*dto.WorldClockResponse, error) {
	name := strings.TrimSpace(timezone)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, name)
	}

	local := now().In(loc)
	_, offsetSec := local.Zone()

	return &dto.WorldClockResponse{
		Timezone:  name,
		LocalTime: local.Format(time.RFC3339),
		UTCOffset: formatUTCOffset(offsetSec),
	}, nil
}

// Distance computes the great-circle distance between two coordinates using
// the haversine formula.
func (s *TravelServiceImpl) Distance(fromLat, fromLng, toLat, toLng float64) (*dto.DistanceResponse, error) {
	for _, lat := range []float64{fromLat, toLat} {
		if lat < -90 || lat > 90 {
			return nil, fmt.Errorf("%w: latitude %v", ErrInvalidCoordinates, lat)
		}
	}
	for _, lng := range []float64{fromLng, toLng} {
		if lng < -180 || lng > 180 {
			return nil, fmt.Errorf("%w: longitude %v", ErrInvalidCoordinates, lng)
		}
	}

	km := haversineKm(fromLat, fromLng, toLat, toLng)

	return &dto.DistanceResponse{
		DistanceKm:    math.Round(km*10) / 10,
		DistanceMiles: math.Round(km*milesPerKm*10) / 10,
	}, nil
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / degreesPerHalf
	phi2 := lat2 * math.Pi / degreesPerHalf
	dPhi := (lat2 - lat1) * math.Pi / degreesPerHalf
	dLambda := (lng2 - lng1) * math.Pi / degreesPerHalf

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func formatUTCOffset(offsetSec int) string {
	sign := "+"
	if offsetSec < 0 {
		sign = "-"
		offsetSec = -offsetSec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetSec/3600, (offsetSec%3600)/60)
}
