package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

func TestLoad_ValidatesCleanly(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Templates())
	assert.NotEmpty(t, c.Rules())
	assert.NotEmpty(t, c.Achievements())
}

func TestBuildIndexes_RejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{
			name: "duplicate template id",
			mutate: func(c *Catalog) {
				c.templates = append(c.templates, c.templates[0])
			},
		},
		{
			name: "non-positive base duration",
			mutate: func(c *Catalog) {
				c.templates[0].BaseDurationDays = 0
			},
		},
		{
			name: "unknown item category",
			mutate: func(c *Catalog) {
				c.templates[0].Items[0].Category = "gadgets"
			},
		},
		{
			name: "negative weight",
			mutate: func(c *Catalog) {
				c.weights[0].Kg = -1
			},
		},
		{
			name: "duplicate suggestion keyword",
			mutate: func(c *Catalog) {
				c.suggestions = append(c.suggestions, c.suggestions[0])
			},
		},
		{
			name: "duplicate baggage rule",
			mutate: func(c *Catalog) {
				c.rules = append(c.rules, c.rules[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Catalog{
				templates:    smartListTemplates(),
				rules:        airlineBaggageRules(),
				defaultRule:  defaultBaggageRule(),
				weights:      itemWeightTable(),
				suggestions:  suggestionTable(),
				achievements: achievementTable(),
				rates:        currencyRates(),
			}
			tt.mutate(c)
			assert.Error(t, c.buildIndexes())
		})
	}
}

func TestTemplateByID(t *testing.T) {
	c := MustLoad()

	tpl, ok := c.TemplateByID("hawaii-beach-vacation")
	require.True(t, ok)
	assert.Equal(t, "Hawaii Beach Vacation", tpl.Name)

	var underwear *model.CatalogItem
	for i := range tpl.Items {
		if tpl.Items[i].Name == "Underwear" {
			underwear = &tpl.Items[i]
		}
	}
	require.NotNil(t, underwear)
	assert.Equal(t, 8, underwear.Quantity)

	_, ok = c.TemplateByID("no-such-template")
	assert.False(t, ok)
}

func TestRuleFor_FallbackChain(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		name       string
		code       string
		flightType model.FlightType
		class      model.CabinClass
		wantCode   string
		wantKg     float64
	}{
		{
			name: "exact match", code: "HA",
			flightType: model.FlightDomestic, class: model.ClassEconomy,
			wantCode: "HA", wantKg: 22.7,
		},
		{
			name: "lowercase code", code: "ba",
			flightType: model.FlightInternational, class: model.ClassBusiness,
			wantCode: "BA", wantKg: 32,
		},
		{
			name: "missing class degrades to economy", code: "HA",
			flightType: model.FlightInternational, class: model.ClassPremium,
			wantCode: "HA", wantKg: 22.7,
		},
		{
			name: "missing domestic degrades to international", code: "LH",
			flightType: model.FlightDomestic, class: model.ClassEconomy,
			wantCode: "LH", wantKg: 23,
		},
		{
			name: "unknown airline gets default", code: "ZZ",
			flightType: model.FlightInternational, class: model.ClassEconomy,
			wantCode: "DEFAULT", wantKg: 23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := c.RuleFor(tt.code, tt.flightType, tt.class)
			assert.Equal(t, tt.wantCode, rule.AirlineCode)
			assert.Equal(t, tt.wantKg, rule.Checked.WeightKg)
		})
	}
}

func TestUnitWeightKg(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		name     string
		item     string
		category model.Category
		want     float64
	}{
		{"exact match", "laptop", model.CategoryElectronics, 1.8},
		{"case insensitive", "Sunscreen", model.CategoryToiletries, 0.25},
		{"substring through longer name", "Aloha Shirt", model.CategoryClothes, 0.25},
		{"longest entry wins", "Ski Jacket", model.CategoryClothes, 1.1},
		{"cross-category fallback", "spare laptop charger", model.CategoryMiscellaneous, 0.4},
		{"unknown item gets default", "ukulele", model.CategoryMiscellaneous, DefaultItemWeightKg},
		{"blank name gets default", "   ", model.CategoryClothes, DefaultItemWeightKg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.UnitWeightKg(tt.item, tt.category))
		})
	}
}

func TestSuggestionsFor(t *testing.T) {
	c := MustLoad()

	t.Run("suit includes dress shoes and belt", func(t *testing.T) {
		items := c.SuggestionsFor("suit")
		names := itemNames(items)
		assert.Contains(t, names, "Dress Shoes")
		assert.Contains(t, names, "Belt")
	})

	t.Run("swimsuit beats suit on keyword length", func(t *testing.T) {
		items := c.SuggestionsFor("Swimsuit")
		names := itemNames(items)
		assert.Contains(t, names, "Beach Towel")
		assert.NotContains(t, names, "Tie")
	})

	t.Run("substring match", func(t *testing.T) {
		items := c.SuggestionsFor("old leather hiking boots")
		assert.Contains(t, itemNames(items), "Hiking Socks")
	})

	t.Run("no match returns nil", func(t *testing.T) {
		assert.Nil(t, c.SuggestionsFor("ukulele"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := c.SuggestionsFor("suit")
		first[0].Name = "mutated"
		again := c.SuggestionsFor("suit")
		assert.Equal(t, "Dress Shoes", again[0].Name)
	})
}

func TestCurrencyRate(t *testing.T) {
	c := MustLoad()

	rate, ok := c.CurrencyRate("eur")
	require.True(t, ok)
	assert.InDelta(t, 0.92, rate, 0.0001)

	_, ok = c.CurrencyRate("XYZ")
	assert.False(t, ok)

	assert.Contains(t, c.Currencies(), "USD")
}

func TestAchievementsForEvent(t *testing.T) {
	c := MustLoad()

	got := c.AchievementsForEvent(model.EventTripCreated)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, model.EventTripCreated, a.Event)
	}
}

func itemNames(items []model.CatalogItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
