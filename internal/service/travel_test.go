package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/service"
)

func TestTravelService_Convert(t *testing.T) {
	svc := service.NewTravelService(catalog.MustLoad())

	tests := []struct {
		name          string
		req           dto.ConvertCurrencyRequest
		wantConverted float64
		wantErr       error
	}{
		{
			name:          "usd to eur",
			req:           dto.ConvertCurrencyRequest{From: "USD", To: "EUR", Amount: 100},
			wantConverted: 92,
		},
		{
			name:          "eur back to usd",
			req:           dto.ConvertCurrencyRequest{From: "EUR", To: "USD", Amount: 92},
			wantConverted: 100,
		},
		{
			name:          "cross rate via usd",
			req:           dto.ConvertCurrencyRequest{From: "GBP", To: "JPY", Amount: 10},
			wantConverted: 1863.29,
		},
		{
			name:          "codes are case-insensitive",
			req:           dto.ConvertCurrencyRequest{From: "usd", To: "eur", Amount: 50},
			wantConverted: 46,
		},
		{
			name:    "unknown source currency",
			req:     dto.ConvertCurrencyRequest{From: "XXX", To: "EUR", Amount: 100},
			wantErr: service.ErrUnknownCurrency,
		},
		{
			name:    "unknown target currency",
			req:     dto.ConvertCurrencyRequest{From: "USD", To: "ZZZ", Amount: 100},
			wantErr: service.ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Convert(tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantConverted, resp.Converted, 0.01)
		})
	}

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := svc.Convert(dto.ConvertCurrencyRequest{From: "USD", To: "EUR", Amount: 0})

		var vErr *dto.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestTravelService_WorldClock(t *testing.T) {
	svc := service.NewTravelService(catalog.MustLoad())

	t.Run("resolves a known timezone", func(t *testing.T) {
		resp, err := svc.WorldClock("Pacific/Honolulu")

		require.NoError(t, err)
		assert.Equal(t, "Pacific/Honolulu", resp.Timezone)
		assert.Equal(t, "-10:00", resp.UTCOffset)
		assert.NotEmpty(t, resp.LocalTime)
	})

	t.Run("utc has a zero offset", func(t *testing.T) {
		resp, err := svc.WorldClock("UTC")

		require.NoError(t, err)
		assert.Equal(t, "+00:00", resp.UTCOffset)
	})

	t.Run("rejects unknown timezones", func(t *testing.T) {
		_, err := svc.WorldClock("Pacific/Atlantis")

		assert.ErrorIs(t, err, service.ErrUnknownTimezone)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := svc.WorldClock("  ")

		assert.ErrorIs(t, err, service.ErrUnknownTimezone)
	})
}

func TestTravelService_Distance(t *testing.T) {
	svc := service.NewTravelService(catalog.MustLoad())

	t.Run("los angeles to honolulu", func(t *testing.T) {
		resp, err := svc.Distance(33.9416, -118.4085, 21.3187, -157.9225)

		require.NoError(t, err)
		// LAX to HNL is roughly 4100 km
		assert.InDelta(t, 4110, resp.DistanceKm, 30)
		assert.InDelta(t, resp.DistanceKm*0.621371, resp.DistanceMiles, 1)
	})

	t.Run("zero distance for identical points", func(t *testing.T) {
		resp, err := svc.Distance(51.5, -0.12, 51.5, -0.12)

		require.NoError(t, err)
		assert.Zero(t, resp.DistanceKm)
		assert.Zero(t, resp.DistanceMiles)
	})

	t.Run("rejects out-of-range latitude", func(t *testing.T) {
		_, err := svc.Distance(91, 0, 0, 0)

		assert.ErrorIs(t, err, service.ErrInvalidCoordinates)
	})

	t.Run("rejects out-of-range longitude", func(t *testing.T) {
		_, err := svc.Distance(0, -181, 0, 0)

		assert.ErrorIs(t, err, service.ErrInvalidCoordinates)
	})
}
