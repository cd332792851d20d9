package service

import (
	"math"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/metrics"
)

// WeightEstimator defines the interface for luggage weight estimation.
// Estimates are advisory and the estimator never fails: unknown items fall
// back to a default unit weight and unknown airlines to a default rule.
type WeightEstimator interface {
	Estimate(items []dto.EstimateItem, airline string, flightType model.FlightType, class model.CabinClass) model.WeightEstimate
	EstimatePacked(items []model.PackingItem, airline string, flightType model.FlightType, class model.CabinClass) model.WeightEstimate
}

// WeightEstimatorService implements WeightEstimator against the static
// weight and baggage-rule tables.
type WeightEstimatorService struct {
	catalog *catalog.Catalog
}

// NewWeightEstimatorService creates a new WeightEstimatorService.
func NewWeightEstimatorService(c *catalog.Catalog) *WeightEstimatorService {
	return &WeightEstimatorService{catalog: c}
}

// Estimate sums per-unit weights for every packed item and compares the total
// against the selected airline's carry-on and checked limits. Unpacked items
// are excluded; they are not in the bag yet.
func (s *WeightEstimatorService) Estimate(items []dto.EstimateItem, airline string, flightType model.FlightType, class model.CabinClass) model.WeightEstimate {
	if flightType == "" {
		flightType = model.FlightInternational
	}
	if class == "" {
		class = model.ClassEconomy
	}

	rule := s.catalog.RuleFor(airline, flightType, class)
	est := model.EmptyEstimate(rule)

	for _, item := range items {
		if !item.Packed || item.Quantity <= 0 {
			continue
		}
		category := item.Category
		if category == "" {
			category = model.CategoryMiscellaneous
		}
		unit := s.catalog.UnitWeightKg(item.Name, category)
		est.ByCategory[category] += unit * float64(item.Quantity)
	}

	// The total is derived from the rounded breakdown so the two always agree.
	for cat, kg := range est.ByCategory {
		est.ByCategory[cat] = roundKg(kg)
		est.TotalKg += est.ByCategory[cat]
	}
	est.TotalKg = roundKg(est.TotalKg)

	est.CarryOn.Exceeds = est.TotalKg > est.CarryOn.LimitKg
	est.Checked.Exceeds = est.TotalKg > est.Checked.LimitKg

	metrics.RecordWeightEstimate("success")
	return est
}

// EstimatePacked adapts stored packing items to the estimator input shape.
func (s *WeightEstimatorService) EstimatePacked(items []model.PackingItem, airline string, flightType model.FlightType, class model.CabinClass) model.WeightEstimate {
	in := make([]dto.EstimateItem, len(items))
	for i, item := range items {
		in[i] = dto.EstimateItem{
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Packed:   item.Packed,
			Luggage:  item.Luggage,
		}
	}
	return s.Estimate(in, airline, flightType, class)
}

// roundKg rounds to two decimals so breakdown values stay presentable and the
// total keeps matching the sum of its parts.
func roundKg(v float64) float64 {
	return math.Round(v*100) / 100
}
