//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
)

func TestInitializeEngine(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CacheConfig
	}{
		{
			name: "creates engine without cache",
			cfg:  config.CacheConfig{Size: 0, TTL: 0},
		},
		{
			name: "creates engine with cache enabled",
			cfg:  config.CacheConfig{Size: 1000, TTL: 5 * time.Minute},
		},
		{
			name: "zero cache size disables cache even with TTL set",
			cfg:  config.CacheConfig{Size: 0, TTL: 5 * time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components, err := InitializeEngine(tt.cfg)
			require.NoError(t, err)

			assert.NotNil(t, components.Catalog)
			assert.NotNil(t, components.Scaler)
			assert.NotNil(t, components.Estimator)
			assert.NotNil(t, components.Suggester)
			assert.NotNil(t, components.Travel)
		})
	}
}

func TestEngineComponents_Scaler(t *testing.T) {
	components, err := InitializeEngine(config.CacheConfig{
		Size: 100,
		TTL:  time.Minute,
	})
	require.NoError(t, err)

	result, err := components.Scaler.ScaleTemplate("hawaii-beach-vacation", 14, dto.StyleBalanced)
	require.NoError(t, err)

	assert.Equal(t, "hawaii-beach-vacation", result.TemplateID)
	assert.Equal(t, 14, result.DurationDays)
	assert.NotEmpty(t, result.Items)
}
