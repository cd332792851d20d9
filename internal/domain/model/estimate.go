// Package model defines weight estimate and baggage rule entities.
package model

// FlightType distinguishes domestic from international baggage rules.
type FlightType string

// Supported flight types.
const (
	FlightDomestic      FlightType = "domestic"
	FlightInternational FlightType = "international"
)

// Valid reports whether f is a known flight type.
func (f FlightType) Valid() bool {
	return f == FlightDomestic || f == FlightInternational
}

// CabinClass is the booking class used for baggage limit lookup.
type CabinClass string

// Supported cabin classes.
const (
	ClassEconomy  CabinClass = "economy"
	ClassPremium  CabinClass = "premium"
	ClassBusiness CabinClass = "business"
	ClassFirst    CabinClass = "first"
)

// Valid reports whether c is a known cabin class.
func (c CabinClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassPremium, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

// BaggageLimit holds the allowance for a single bag type.
type BaggageLimit struct {
	// Dimensions is the advertised size limit, e.g. "55 x 40 x 23 cm".
	Dimensions string `json:"dimensions" example:"55 x 40 x 23 cm"`
	// WeightKg is the maximum allowed weight in kilograms.
	WeightKg float64 `json:"weight_kg" example:"10"`
	// OverweightFee describes the fee applied beyond the limit, empty when none.
	OverweightFee string `json:"overweight_fee,omitempty" example:"USD 100 per bag"`
}

// AirlineBaggageRule holds the carry-on and checked allowances for one
// (airline, class) combination.
type AirlineBaggageRule struct {
	AirlineCode string       `json:"airline_code" example:"HA"`
	AirlineName string       `json:"airline_name" example:"Hawaiian Airlines"`
	FlightType  FlightType   `json:"flight_type" example:"international"`
	Class       CabinClass   `json:"class" example:"economy"`
	CarryOn     BaggageLimit `json:"carry_on"`
	Checked     BaggageLimit `json:"checked"`
}

// BagEstimate compares an estimated weight against one bag type's limit.
type BagEstimate struct {
	// LimitKg is the allowance used for the comparison.
	LimitKg float64 `json:"limit_kg" example:"23"`
	// Exceeds is true when the estimated total is over the limit.
	Exceeds bool `json:"exceeds" example:"false"`
}

// WeightEstimate is an advisory estimate of packed luggage weight, recomputed
// on demand and never persisted.
//
// @Description Estimated total weight of packed items with per-category breakdown
type WeightEstimate struct {
	// TotalKg is the estimated weight of all packed items.
	TotalKg float64 `json:"total_kg" example:"14.5"`
	// ByCategory breaks the total down per item category.
	ByCategory map[Category]float64 `json:"by_category"`
	// CarryOn compares the total against the carry-on allowance.
	CarryOn BagEstimate `json:"carry_on"`
	// Checked compares the total against the checked-bag allowance.
	Checked BagEstimate `json:"checked"`
	// AirlineCode is the airline whose limits were applied ("default" for the fallback).
	AirlineCode string `json:"airline_code" example:"HA"`
}

// EmptyEstimate returns a zero estimate against the given rule's limits.
func EmptyEstimate(rule AirlineBaggageRule) WeightEstimate {
	return WeightEstimate{
		TotalKg:     0,
		ByCategory:  map[Category]float64{},
		CarryOn:     BagEstimate{LimitKg: rule.CarryOn.WeightKg},
		Checked:     BagEstimate{LimitKg: rule.Checked.WeightKg},
		AirlineCode: rule.AirlineCode,
	}
}
