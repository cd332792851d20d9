package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
)

func newTestEstimator(t *testing.T) *WeightEstimatorService {
	t.Helper()
	return NewWeightEstimatorService(catalog.MustLoad())
}

func TestEstimate_AllUnpackedIsZero(t *testing.T) {
	s := newTestEstimator(t)

	items := []dto.EstimateItem{
		{Name: "Laptop", Category: model.CategoryElectronics, Quantity: 1, Packed: false},
		{Name: "Jeans", Category: model.CategoryClothes, Quantity: 2, Packed: false},
	}
	est := s.Estimate(items, "HA", model.FlightInternational, model.ClassEconomy)

	assert.Zero(t, est.TotalKg)
	assert.Empty(t, est.ByCategory)
	assert.False(t, est.CarryOn.Exceeds)
	assert.False(t, est.Checked.Exceeds)
}

func TestEstimate_OnlyPackedItemsCount(t *testing.T) {
	s := newTestEstimator(t)

	items := []dto.EstimateItem{
		{Name: "Laptop", Category: model.CategoryElectronics, Quantity: 1, Packed: true},
		{Name: "Jeans", Category: model.CategoryClothes, Quantity: 2, Packed: true},
		{Name: "Camera", Category: model.CategoryElectronics, Quantity: 1, Packed: false},
	}
	est := s.Estimate(items, "HA", model.FlightInternational, model.ClassEconomy)

	// 1.8 (laptop) + 2 * 0.65 (jeans), camera unpacked
	assert.InDelta(t, 3.1, est.TotalKg, 0.001)
	assert.InDelta(t, 1.8, est.ByCategory[model.CategoryElectronics], 0.001)
	assert.InDelta(t, 1.3, est.ByCategory[model.CategoryClothes], 0.001)
}

func TestEstimate_TotalMatchesBreakdown(t *testing.T) {
	s := newTestEstimator(t)
	tpl, ok := catalog.MustLoad().TemplateByID("winter-ski-trip")
	require.True(t, ok)

	items := make([]dto.EstimateItem, len(tpl.Items))
	for i, it := range tpl.Items {
		items[i] = dto.EstimateItem{Name: it.Name, Category: it.Category, Quantity: it.Quantity, Packed: true}
	}
	est := s.Estimate(items, "LH", model.FlightInternational, model.ClassEconomy)

	var sum float64
	for _, kg := range est.ByCategory {
		sum += kg
	}
	assert.InDelta(t, est.TotalKg, sum, 0.001)
	assert.Positive(t, est.TotalKg)
}

func TestEstimate_UnknownItemsUseDefaultWeight(t *testing.T) {
	s := newTestEstimator(t)

	items := []dto.EstimateItem{
		{Name: "Ukulele", Category: model.CategoryMiscellaneous, Quantity: 2, Packed: true},
	}
	est := s.Estimate(items, "ZZ", model.FlightDomestic, model.ClassFirst)

	assert.InDelta(t, 2*catalog.DefaultItemWeightKg, est.TotalKg, 0.001)
	assert.Equal(t, "DEFAULT", est.AirlineCode)
}

func TestEstimate_ExceedsFlags(t *testing.T) {
	s := newTestEstimator(t)

	heavy := []dto.EstimateItem{
		{Name: "Boots", Category: model.CategoryClothes, Quantity: 9, Packed: true},
	}
	// 9 * 1.4 kg = 12.6 kg against HA international economy (carry-on 11.5, checked 22.7)
	est := s.Estimate(heavy, "HA", model.FlightInternational, model.ClassEconomy)
	assert.True(t, est.CarryOn.Exceeds)
	assert.False(t, est.Checked.Exceeds)

	veryHeavy := append(heavy, dto.EstimateItem{
		Name: "Laptop", Category: model.CategoryElectronics, Quantity: 8, Packed: true,
	})
	est = s.Estimate(veryHeavy, "HA", model.FlightInternational, model.ClassEconomy)
	assert.True(t, est.CarryOn.Exceeds)
	assert.True(t, est.Checked.Exceeds)
}

func TestEstimate_EmptySelectorsDefault(t *testing.T) {
	s := newTestEstimator(t)

	items := []dto.EstimateItem{
		{Name: "Sunscreen", Quantity: 1, Packed: true},
	}
	est := s.Estimate(items, "HA", "", "")

	// Defaults to international economy; blank category counts as miscellaneous.
	assert.Equal(t, 22.7, est.Checked.LimitKg)
	assert.InDelta(t, 0.25, est.ByCategory[model.CategoryMiscellaneous], 0.001)
}

func TestEstimatePacked(t *testing.T) {
	s := newTestEstimator(t)

	items := []model.PackingItem{
		{Name: "Laptop", Category: model.CategoryElectronics, Quantity: 1, Packed: true},
		{Name: "Toothbrush", Category: model.CategoryToiletries, Quantity: 1, Packed: false},
	}
	est := s.EstimatePacked(items, "AA", model.FlightDomestic, model.ClassEconomy)

	assert.InDelta(t, 1.8, est.TotalKg, 0.001)
	assert.Equal(t, "AA", est.AirlineCode)
}
