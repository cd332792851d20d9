package catalog

// currencyRates maps currency codes to units per one US dollar. The rates are
// a static snapshot intended for rough on-the-go conversion, not settlement.
func currencyRates() map[string]float64 {
	return map[string]float64{
		"USD": 1.0,
		"EUR": 0.92,
		"GBP": 0.79,
		"JPY": 147.2,
		"CHF": 0.86,
		"AUD": 1.52,
		"CAD": 1.36,
		"NZD": 1.66,
		"MXN": 18.2,
		"BRL": 5.42,
		"THB": 35.9,
		"SGD": 1.34,
		"SEK": 10.4,
		"NOK": 10.6,
		"PLN": 3.95,
	}
}
