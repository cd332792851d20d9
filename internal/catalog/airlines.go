package catalog

import "github.com/packsmart/packsmart-service/internal/domain/model"

// defaultBaggageRule is the baseline applied when the airline is unknown.
// 7 kg carry-on and 23 kg checked cover the common international economy case.
func defaultBaggageRule() model.AirlineBaggageRule {
	return model.AirlineBaggageRule{
		AirlineCode: "DEFAULT",
		AirlineName: "Generic Airline",
		FlightType:  model.FlightInternational,
		Class:       model.ClassEconomy,
		CarryOn:     model.BaggageLimit{Dimensions: "55 x 40 x 23 cm", WeightKg: 7, OverweightFee: "varies"},
		Checked:     model.BaggageLimit{Dimensions: "158 cm linear", WeightKg: 23, OverweightFee: "varies"},
	}
}

func airlineBaggageRules() []model.AirlineBaggageRule {
	return []model.AirlineBaggageRule{
		// Hawaiian Airlines
		{
			AirlineCode: "HA", AirlineName: "Hawaiian Airlines",
			FlightType: model.FlightDomestic, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "55.9 x 35.6 x 22.9 cm", WeightKg: 11.5, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 22.7, OverweightFee: "USD 35 per bag"},
		},
		{
			AirlineCode: "HA", AirlineName: "Hawaiian Airlines",
			FlightType: model.FlightInternational, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "55.9 x 35.6 x 22.9 cm", WeightKg: 11.5, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 22.7, OverweightFee: "USD 70 per bag"},
		},
		{
			AirlineCode: "HA", AirlineName: "Hawaiian Airlines",
			FlightType: model.FlightInternational, Class: model.ClassFirst,
			CarryOn: model.BaggageLimit{Dimensions: "55.9 x 35.6 x 22.9 cm", WeightKg: 11.5, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 32, OverweightFee: "not accepted over 45 kg"},
		},
		// American Airlines
		{
			AirlineCode: "AA", AirlineName: "American Airlines",
			FlightType: model.FlightDomestic, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 36 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "158 cm linear", WeightKg: 23, OverweightFee: "USD 100 per bag"},
		},
		{
			AirlineCode: "AA", AirlineName: "American Airlines",
			FlightType: model.FlightInternational, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 36 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "158 cm linear", WeightKg: 23, OverweightFee: "USD 100-200 per bag"},
		},
		{
			AirlineCode: "AA", AirlineName: "American Airlines",
			FlightType: model.FlightInternational, Class: model.ClassBusiness,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 36 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "158 cm linear", WeightKg: 32, OverweightFee: "not accepted over 45 kg"},
		},
		// Delta
		{
			AirlineCode: "DL", AirlineName: "Delta Air Lines",
			FlightType: model.FlightDomestic, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 23, OverweightFee: "USD 100 per bag"},
		},
		{
			AirlineCode: "DL", AirlineName: "Delta Air Lines",
			FlightType: model.FlightInternational, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 23, OverweightFee: "USD 100-200 per bag"},
		},
		{
			AirlineCode: "DL", AirlineName: "Delta Air Lines",
			FlightType: model.FlightInternational, Class: model.ClassPremium,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 23, OverweightFee: "USD 100-200 per bag"},
		},
		{
			AirlineCode: "DL", AirlineName: "Delta Air Lines",
			FlightType: model.FlightInternational, Class: model.ClassBusiness,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 23 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 32, OverweightFee: "not accepted over 45 kg"},
		},
		// United
		{
			AirlineCode: "UA", AirlineName: "United Airlines",
			FlightType: model.FlightDomestic, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 22 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 23, OverweightFee: "USD 100 per bag"},
		},
		{
			AirlineCode: "UA", AirlineName: "United Airlines",
			FlightType: model.FlightInternational, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 22 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 23, OverweightFee: "USD 100-200 per bag"},
		},
		{
			AirlineCode: "UA", AirlineName: "United Airlines",
			FlightType: model.FlightInternational, Class: model.ClassBusiness,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 35 x 22 cm", WeightKg: 10, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "157 cm linear", WeightKg: 32, OverweightFee: "not accepted over 45 kg"},
		},
		// British Airways
		{
			AirlineCode: "BA", AirlineName: "British Airways",
			FlightType: model.FlightDomestic, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 45 x 25 cm", WeightKg: 23, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "90 x 75 x 43 cm", WeightKg: 23, OverweightFee: "GBP 65 per bag"},
		},
		{
			AirlineCode: "BA", AirlineName: "British Airways",
			FlightType: model.FlightInternational, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 45 x 25 cm", WeightKg: 23, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "90 x 75 x 43 cm", WeightKg: 23, OverweightFee: "GBP 65 per bag"},
		},
		{
			AirlineCode: "BA", AirlineName: "British Airways",
			FlightType: model.FlightInternational, Class: model.ClassBusiness,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 45 x 25 cm", WeightKg: 23, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "90 x 75 x 43 cm", WeightKg: 32, OverweightFee: "not accepted over 32 kg"},
		},
		{
			AirlineCode: "BA", AirlineName: "British Airways",
			FlightType: model.FlightInternational, Class: model.ClassFirst,
			CarryOn: model.BaggageLimit{Dimensions: "56 x 45 x 25 cm", WeightKg: 23, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "90 x 75 x 43 cm", WeightKg: 32, OverweightFee: "not accepted over 32 kg"},
		},
		// Lufthansa
		{
			AirlineCode: "LH", AirlineName: "Lufthansa",
			FlightType: model.FlightInternational, Class: model.ClassEconomy,
			CarryOn: model.BaggageLimit{Dimensions: "55 x 40 x 23 cm", WeightKg: 8, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "158 cm linear", WeightKg: 23, OverweightFee: "EUR 80-300 per bag"},
		},
		{
			AirlineCode: "LH", AirlineName: "Lufthansa",
			FlightType: model.FlightInternational, Class: model.ClassBusiness,
			CarryOn: model.BaggageLimit{Dimensions: "55 x 40 x 23 cm", WeightKg: 8, OverweightFee: "check at gate"},
			Checked: model.BaggageLimit{Dimensions: "158 cm linear", WeightKg: 32, OverweightFee: "not accepted over 32 kg"},
		},
	}
}
