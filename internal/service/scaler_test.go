package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
)

func newTestScaler(t *testing.T, opts ...Option) *ListScalerService {
	t.Helper()
	return NewListScalerService(catalog.MustLoad(), opts...)
}

func TestScale_PerDayConsumables(t *testing.T) {
	s := newTestScaler(t)

	tests := []struct {
		name         string
		item         model.CatalogItem
		durationDays int
		style        dto.PackingStyle
		want         int
	}{
		{
			name:         "hawaii underwear thorough two weeks",
			item:         model.CatalogItem{Name: "Underwear", Category: model.CategoryClothes, Quantity: 8},
			durationDays: 14,
			style:        dto.StyleThorough,
			// ceil(14 * 1.3 * 8 / 7) = ceil(20.8)
			want: 21,
		},
		{
			name:         "shirts light weekend",
			item:         model.CatalogItem{Name: "T-Shirt", Category: model.CategoryClothes, Quantity: 5},
			durationDays: 2,
			style:        dto.StyleLight,
			// ceil(2 * 0.7 * 5 / 7) = ceil(1.0)
			want: 1,
		},
		{
			name:         "socks never scale to zero",
			item:         model.CatalogItem{Name: "Thermal Socks", Category: model.CategoryClothes, Quantity: 1},
			durationDays: 1,
			style:        dto.StyleLight,
			want:         1,
		},
		{
			name:         "pants scale by restock interval",
			item:         model.CatalogItem{Name: "Dress Pants", Category: model.CategoryClothes, Quantity: 2},
			durationDays: 10,
			style:        dto.StyleBalanced,
			// ceil(10 / 3 * 1.0) = 4, base quantity does not participate
			want: 4,
		},
		{
			name:         "jeans match the pants rule",
			item:         model.CatalogItem{Name: "Jeans", Category: model.CategoryClothes, Quantity: 2},
			durationDays: 3,
			style:        dto.StyleThorough,
			// ceil(3 / 3 * 1.3) = 2
			want: 2,
		},
		{
			name:         "non-consumables keep base quantity",
			item:         model.CatalogItem{Name: "Sunscreen", Category: model.CategoryToiletries, Quantity: 1},
			durationDays: 30,
			style:        dto.StyleThorough,
			want:         1,
		},
		{
			name:         "keyword match is case-insensitive",
			item:         model.CatalogItem{Name: "ALOHA SHIRT", Category: model.CategoryClothes, Quantity: 2},
			durationDays: 14,
			style:        dto.StyleBalanced,
			// ceil(14 * 1.0 * 2 / 7) = 4
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := s.Scale([]model.CatalogItem{tt.item}, tt.durationDays, tt.style)
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Quantity)

			// Everything but quantity passes through unchanged.
			assert.Equal(t, tt.item.Name, out[0].Name)
			assert.Equal(t, tt.item.Category, out[0].Category)
			assert.Equal(t, tt.item.Luggage, out[0].Luggage)
		})
	}
}

func TestScale_RejectsInvalidInput(t *testing.T) {
	s := newTestScaler(t)
	items := []model.CatalogItem{{Name: "Underwear", Category: model.CategoryClothes, Quantity: 7}}

	_, err := s.Scale(items, 0, dto.StyleBalanced)
	assert.ErrorContains(t, err, "duration_days")

	_, err = s.Scale(items, -5, dto.StyleBalanced)
	assert.ErrorContains(t, err, "duration_days")

	_, err = s.Scale(items, 7, "maximal")
	assert.ErrorContains(t, err, "style")
}

func TestScale_QuantityAlwaysPositive(t *testing.T) {
	s := newTestScaler(t)
	tpl, ok := catalog.MustLoad().TemplateByID("backpacking-europe")
	require.True(t, ok)

	for _, style := range []dto.PackingStyle{dto.StyleLight, dto.StyleBalanced, dto.StyleThorough} {
		for days := 1; days <= 45; days++ {
			out, err := s.Scale(tpl.Items, days, style)
			require.NoError(t, err)
			for _, item := range out {
				assert.GreaterOrEqualf(t, item.Quantity, 1, "%s at %d days %s", item.Name, days, style)
			}
		}
	}
}

func TestScale_SevenDayBalancedIsIdentityForPerDayItems(t *testing.T) {
	s := newTestScaler(t)

	perDay := []model.CatalogItem{
		{Name: "Underwear", Category: model.CategoryClothes, Quantity: 8},
		{Name: "Dress Shirt", Category: model.CategoryClothes, Quantity: 5},
		{Name: "Hiking Socks", Category: model.CategoryClothes, Quantity: 5},
	}
	out, err := s.Scale(perDay, 7, dto.StyleBalanced)
	require.NoError(t, err)
	for i, item := range out {
		assert.Equal(t, perDay[i].Quantity, item.Quantity, item.Name)
	}
}

func TestScale_MonotonicInDuration(t *testing.T) {
	s := newTestScaler(t)
	tpl, ok := catalog.MustLoad().TemplateByID("hawaii-beach-vacation")
	require.True(t, ok)

	prev := map[string]int{}
	for days := 1; days <= 60; days++ {
		out, err := s.Scale(tpl.Items, days, dto.StyleThorough)
		require.NoError(t, err)
		for _, item := range out {
			if last, ok := prev[item.Name]; ok {
				assert.GreaterOrEqualf(t, item.Quantity, last, "%s shrank at %d days", item.Name, days)
			}
			prev[item.Name] = item.Quantity
		}
	}
}

func TestScale_RescalingIsIdempotent(t *testing.T) {
	s := newTestScaler(t)
	tpl, ok := catalog.MustLoad().TemplateByID("hawaii-beach-vacation")
	require.True(t, ok)

	once, err := s.Scale(tpl.Items, 7, dto.StyleBalanced)
	require.NoError(t, err)
	twice, err := s.Scale(once, 7, dto.StyleBalanced)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestScaleTemplate(t *testing.T) {
	s := newTestScaler(t)

	resp, err := s.ScaleTemplate("hawaii-beach-vacation", 14, dto.StyleThorough)
	require.NoError(t, err)
	assert.Equal(t, "Hawaii Beach Vacation", resp.TemplateName)
	assert.Equal(t, 14, resp.DurationDays)

	var underwear int
	for _, item := range resp.Items {
		if item.Name == "Underwear" {
			underwear = item.Quantity
		}
	}
	assert.Equal(t, 21, underwear)

	t.Run("defaults to balanced style", func(t *testing.T) {
		resp, err := s.ScaleTemplate("business-trip-nyc", 7, "")
		require.NoError(t, err)
		assert.Equal(t, dto.StyleBalanced, resp.Style)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := s.ScaleTemplate("no-such-template", 7, dto.StyleBalanced)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})
}

func TestScaleTemplate_CachesResults(t *testing.T) {
	c := NewShardedCache(64, time.Minute, 4)
	defer c.Stop()
	s := newTestScaler(t, WithCacheInterface(c))

	first, err := s.ScaleTemplate("winter-ski-trip", 10, dto.StyleLight)
	require.NoError(t, err)

	hitsBefore := c.Metrics().Hits
	second, err := s.ScaleTemplate("winter-ski-trip", 10, dto.StyleLight)
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.Greater(t, c.Metrics().Hits, hitsBefore)

	s.InvalidateCache()
	assert.Equal(t, 0, c.Metrics().Size)
}
