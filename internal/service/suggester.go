package service

import (
	"strings"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/metrics"
)

// SuggestionMatcher defines the interface for related-item suggestions.
// It is a pure function of the input name, the blocklist, and the static
// table; an unmatched name yields an empty result, never an error.
type SuggestionMatcher interface {
	Suggest(lastAddedItemName string, blockedNames []string) []model.CatalogItem
}

// SuggestionMatcherService implements SuggestionMatcher against the static
// keyword table.
type SuggestionMatcherService struct {
	catalog *catalog.Catalog
}

// NewSuggestionMatcherService creates a new SuggestionMatcherService.
func NewSuggestionMatcherService(c *catalog.Catalog) *SuggestionMatcherService {
	return &SuggestionMatcherService{catalog: c}
}

// Suggest returns companion items for the given item name, filtering out
// blocked names case-insensitively. Table order is preserved for the
// remaining suggestions.
func (s *SuggestionMatcherService) Suggest(lastAddedItemName string, blockedNames []string) []model.CatalogItem {
	items := s.catalog.SuggestionsFor(lastAddedItemName)
	if len(items) == 0 {
		metrics.RecordSuggestionLookup("miss")
		return []model.CatalogItem{}
	}

	blocked := make(map[string]bool, len(blockedNames))
	for _, name := range blockedNames {
		blocked[strings.ToLower(strings.TrimSpace(name))] = true
	}

	out := make([]model.CatalogItem, 0, len(items))
	for _, item := range items {
		if blocked[strings.ToLower(item.Name)] {
			continue
		}
		out = append(out, item)
	}

	metrics.RecordSuggestionLookup("hit")
	return out
}
