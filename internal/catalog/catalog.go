// Package catalog holds the static lookup tables the packing engine reads:
// smart-list templates, airline baggage rules, the item weight table, the
// suggestion keyword table, the achievement catalogue, and currency rates.
//
// The tables are compiled into the binary and never mutated at runtime.
// Malformed data (duplicate keys, invalid categories, non-positive base
// durations) is a programmer error and fails Load at startup.
package catalog

import (
	"fmt"
	"strings"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

// DefaultItemWeightKg is the advisory fallback weight for items that match no
// entry in the weight table.
const DefaultItemWeightKg = 0.5

// WeightEntry maps an item name to a per-unit weight in kilograms.
type WeightEntry struct {
	Category model.Category
	Name     string
	Kg       float64
}

// SuggestionEntry maps a keyword to the related items it suggests.
// Entries are matched in declaration order with longest-keyword-wins
// tie-breaking, so matching stays deterministic.
type SuggestionEntry struct {
	Keyword string
	Items   []model.CatalogItem
}

type ruleKey struct {
	code       string
	flightType model.FlightType
	class      model.CabinClass
}

// Catalog provides read-only access to the static tables.
type Catalog struct {
	templates     []model.SmartListTemplate
	templateIndex map[string]int
	rules         []model.AirlineBaggageRule
	ruleIndex     map[ruleKey]int
	defaultRule   model.AirlineBaggageRule
	weights       []WeightEntry
	suggestions   []SuggestionEntry
	achievements  []model.Achievement
	rates         map[string]float64
}

// Load builds the catalogue from the compiled-in tables and validates its
// integrity. It returns an error on duplicate keys or malformed entries.
func Load() (*Catalog, error) {
	c := &Catalog{
		templates:    smartListTemplates(),
		rules:        airlineBaggageRules(),
		defaultRule:  defaultBaggageRule(),
		weights:      itemWeightTable(),
		suggestions:  suggestionTable(),
		achievements: achievementTable(),
		rates:        currencyRates(),
	}

	if err := c.buildIndexes(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoad is Load that panics on invalid catalogue data.
// Intended for tests and static initialisation.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) buildIndexes() error {
	c.templateIndex = make(map[string]int, len(c.templates))
	for i, t := range c.templates {
		if t.ID == "" {
			return fmt.Errorf("catalog: template %q has empty id", t.Name)
		}
		if _, dup := c.templateIndex[t.ID]; dup {
			return fmt.Errorf("catalog: duplicate template id %q", t.ID)
		}
		if t.BaseDurationDays <= 0 {
			return fmt.Errorf("catalog: template %q has non-positive base duration", t.ID)
		}
		for _, item := range t.Items {
			if item.Name == "" {
				return fmt.Errorf("catalog: template %q contains an unnamed item", t.ID)
			}
			if !item.Category.Valid() {
				return fmt.Errorf("catalog: template %q item %q has unknown category %q", t.ID, item.Name, item.Category)
			}
			if item.Quantity < 0 {
				return fmt.Errorf("catalog: template %q item %q has negative quantity", t.ID, item.Name)
			}
			if item.Luggage != "" && !item.Luggage.Valid() {
				return fmt.Errorf("catalog: template %q item %q has unknown luggage %q", t.ID, item.Name, item.Luggage)
			}
		}
		c.templateIndex[t.ID] = i
	}

	c.ruleIndex = make(map[ruleKey]int, len(c.rules))
	for i, r := range c.rules {
		if !r.Class.Valid() || !r.FlightType.Valid() {
			return fmt.Errorf("catalog: baggage rule %s has invalid class/flight type", r.AirlineCode)
		}
		key := ruleKey{strings.ToUpper(r.AirlineCode), r.FlightType, r.Class}
		if _, dup := c.ruleIndex[key]; dup {
			return fmt.Errorf("catalog: duplicate baggage rule for %s/%s/%s", r.AirlineCode, r.FlightType, r.Class)
		}
		c.ruleIndex[key] = i
	}

	seenWeights := make(map[string]bool, len(c.weights))
	for _, w := range c.weights {
		if !w.Category.Valid() {
			return fmt.Errorf("catalog: weight entry %q has unknown category %q", w.Name, w.Category)
		}
		if w.Kg <= 0 {
			return fmt.Errorf("catalog: weight entry %q has non-positive weight", w.Name)
		}
		key := string(w.Category) + "/" + strings.ToLower(w.Name)
		if seenWeights[key] {
			return fmt.Errorf("catalog: duplicate weight entry %q", w.Name)
		}
		seenWeights[key] = true
	}

	seenKeywords := make(map[string]bool, len(c.suggestions))
	for _, s := range c.suggestions {
		kw := strings.ToLower(s.Keyword)
		if kw == "" {
			return fmt.Errorf("catalog: suggestion entry with empty keyword")
		}
		if seenKeywords[kw] {
			return fmt.Errorf("catalog: duplicate suggestion keyword %q", s.Keyword)
		}
		seenKeywords[kw] = true
	}

	seenAchievements := make(map[string]bool, len(c.achievements))
	for _, a := range c.achievements {
		if a.Threshold <= 0 {
			return fmt.Errorf("catalog: achievement %q has non-positive threshold", a.ID)
		}
		if seenAchievements[a.ID] {
			return fmt.Errorf("catalog: duplicate achievement id %q", a.ID)
		}
		seenAchievements[a.ID] = true
	}

	return nil
}

// Templates returns all smart-list templates in declaration order.
func (c *Catalog) Templates() []model.SmartListTemplate {
	out := make([]model.SmartListTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// TemplateByID looks up a template by its stable ID.
func (c *Catalog) TemplateByID(id string) (model.SmartListTemplate, bool) {
	if i, ok := c.templateIndex[id]; ok {
		return c.templates[i], true
	}
	return model.SmartListTemplate{}, false
}

// Rules returns all airline baggage rules.
func (c *Catalog) Rules() []model.AirlineBaggageRule {
	out := make([]model.AirlineBaggageRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// RulesForAirline returns all rules for one airline code.
func (c *Catalog) RulesForAirline(code string) []model.AirlineBaggageRule {
	code = strings.ToUpper(code)
	var out []model.AirlineBaggageRule
	for _, r := range c.rules {
		if strings.ToUpper(r.AirlineCode) == code {
			out = append(out, r)
		}
	}
	return out
}

// RuleFor returns the baggage rule for the given airline, flight type, and
// class. Unknown combinations degrade to the airline's international economy
// rule and finally to DefaultRule; the lookup never fails.
func (c *Catalog) RuleFor(code string, flightType model.FlightType, class model.CabinClass) model.AirlineBaggageRule {
	upper := strings.ToUpper(code)
	if i, ok := c.ruleIndex[ruleKey{upper, flightType, class}]; ok {
		return c.rules[i]
	}
	if i, ok := c.ruleIndex[ruleKey{upper, model.FlightInternational, class}]; ok {
		return c.rules[i]
	}
	if i, ok := c.ruleIndex[ruleKey{upper, model.FlightInternational, model.ClassEconomy}]; ok {
		return c.rules[i]
	}
	return c.defaultRule
}

// DefaultRule returns the baseline baggage rule used when the airline is
// unknown. Centralised here so every caller degrades the same way.
func (c *Catalog) DefaultRule() model.AirlineBaggageRule {
	return c.defaultRule
}

// UnitWeightKg returns the per-unit weight for an item name. The lookup is
// permissive and never fails: exact case-insensitive match first, then the
// longest substring match in either direction (within the item's category
// before the whole table), then DefaultItemWeightKg.
func (c *Catalog) UnitWeightKg(name string, category model.Category) float64 {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return DefaultItemWeightKg
	}

	for _, w := range c.weights {
		if strings.ToLower(w.Name) == lower {
			return w.Kg
		}
	}

	if kg, ok := c.substringWeight(lower, &category); ok {
		return kg
	}
	if kg, ok := c.substringWeight(lower, nil); ok {
		return kg
	}
	return DefaultItemWeightKg
}

// substringWeight scans the weight table for entries whose name contains the
// item name or vice versa. Longest table name wins; declaration order breaks
// remaining ties.
func (c *Catalog) substringWeight(lower string, category *model.Category) (float64, bool) {
	bestLen := -1
	var bestKg float64
	for _, w := range c.weights {
		if category != nil && w.Category != *category {
			continue
		}
		entry := strings.ToLower(w.Name)
		if !strings.Contains(lower, entry) && !strings.Contains(entry, lower) {
			continue
		}
		if len(entry) > bestLen {
			bestLen = len(entry)
			bestKg = w.Kg
		}
	}
	return bestKg, bestLen >= 0
}

// SuggestionsFor returns the related items for an item name, or nil when no
// keyword matches. Exact key match first, then the longest keyword that is a
// substring of the name or contains it.
func (c *Catalog) SuggestionsFor(name string) []model.CatalogItem {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}

	for _, s := range c.suggestions {
		if strings.ToLower(s.Keyword) == lower {
			return copyItems(s.Items)
		}
	}

	bestLen := -1
	var best []model.CatalogItem
	for _, s := range c.suggestions {
		kw := strings.ToLower(s.Keyword)
		if !strings.Contains(lower, kw) && !strings.Contains(kw, lower) {
			continue
		}
		if len(kw) > bestLen {
			bestLen = len(kw)
			best = s.Items
		}
	}
	if best == nil {
		return nil
	}
	return copyItems(best)
}

// Achievements returns the full achievement catalogue.
func (c *Catalog) Achievements() []model.Achievement {
	out := make([]model.Achievement, len(c.achievements))
	copy(out, c.achievements)
	return out
}

// AchievementsForEvent returns the achievements counting the given event.
func (c *Catalog) AchievementsForEvent(event model.XPEvent) []model.Achievement {
	var out []model.Achievement
	for _, a := range c.achievements {
		if a.Event == event {
			out = append(out, a)
		}
	}
	return out
}

// CurrencyRate returns the USD-relative rate for a currency code.
func (c *Catalog) CurrencyRate(code string) (float64, bool) {
	rate, ok := c.rates[strings.ToUpper(code)]
	return rate, ok
}

// Currencies returns the supported currency codes.
func (c *Catalog) Currencies() []string {
	out := make([]string, 0, len(c.rates))
	for code := range c.rates {
		out = append(out, code)
	}
	return out
}

func copyItems(items []model.CatalogItem) []model.CatalogItem {
	out := make([]model.CatalogItem, len(items))
	copy(out, items)
	return out
}
