package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/model"
)

func newTestSuggester(t *testing.T) *SuggestionMatcherService {
	t.Helper()
	return NewSuggestionMatcherService(catalog.MustLoad())
}

func TestSuggest_KnownKeyword(t *testing.T) {
	s := newTestSuggester(t)

	items := s.Suggest("suit", nil)
	require.NotEmpty(t, items)

	names := itemNames(items)
	assert.Contains(t, names, "Dress Shoes")
	assert.Contains(t, names, "Belt")
}

func TestSuggest_BlocklistFiltersResults(t *testing.T) {
	s := newTestSuggester(t)

	items := s.Suggest("suit", []string{"belt"})
	names := itemNames(items)
	assert.NotContains(t, names, "Belt")
	assert.Contains(t, names, "Dress Shoes")

	t.Run("blocklist is case-insensitive", func(t *testing.T) {
		items := s.Suggest("suit", []string{"  DRESS SHOES "})
		assert.NotContains(t, itemNames(items), "Dress Shoes")
	})

	t.Run("table order is preserved", func(t *testing.T) {
		items := s.Suggest("suit", []string{"tie"})
		names := itemNames(items)
		require.GreaterOrEqual(t, len(names), 2)
		assert.Equal(t, "Dress Shoes", names[0])
		assert.Equal(t, "Belt", names[1])
	})
}

func TestSuggest_FuzzyMatching(t *testing.T) {
	s := newTestSuggester(t)

	t.Run("input containing keyword", func(t *testing.T) {
		items := s.Suggest("Navy Suit", nil)
		assert.Contains(t, itemNames(items), "Dress Shoes")
	})

	t.Run("longest keyword wins", func(t *testing.T) {
		items := s.Suggest("swimsuit", nil)
		names := itemNames(items)
		assert.Contains(t, names, "Beach Towel")
		assert.NotContains(t, names, "Tie")
	})
}

func TestSuggest_NoMatchReturnsEmpty(t *testing.T) {
	s := newTestSuggester(t)

	items := s.Suggest("ukulele", nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items = s.Suggest("", []string{"belt"})
	assert.Empty(t, items)
}

func itemNames(items []model.CatalogItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
