package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/metrics"
	"github.com/packsmart/packsmart-service/internal/service/cache"
)

const (
	// baselineTripDays is the trip length template quantities are authored for.
	baselineTripDays = 7
	// pantsRestockDays is how often pants are assumed to be re-worn.
	pantsRestockDays = 3

	// Style multipliers applied uniformly to per-day quantities.
	multiplierLight    = 0.7
	multiplierBalanced = 1.0
	multiplierThorough = 1.3
)

// scaleRule pairs name keywords with a quantity function. Rules are checked
// in order and the first matching rule wins; keyword sets are kept disjoint
// so order only matters as a tie-break.
type scaleRule struct {
	keywords []string
	quantity func(base, durationDays int, multiplier float64) int
}

var scaleRules = []scaleRule{
	{
		// Per-day consumables, authored for a seven-day trip.
		keywords: []string{"shirt", "outfit", "underwear", "sock"},
		quantity: func(base, durationDays int, multiplier float64) int {
			return atLeastOne(math.Ceil(float64(durationDays) * multiplier * float64(base) / baselineTripDays))
		},
	},
	{
		// Pants are re-worn; quantity depends on duration alone.
		keywords: []string{"pants", "jean"},
		quantity: func(base, durationDays int, multiplier float64) int {
			return atLeastOne(math.Ceil(float64(durationDays) / pantsRestockDays * multiplier))
		},
	},
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}

// QuantityScaler defines the interface for scaling template quantities to a
// trip duration and packing style.
type QuantityScaler interface {
	Scale(items []model.CatalogItem, durationDays int, style dto.PackingStyle) ([]model.CatalogItem, error)
	ScaleTemplate(templateID string, durationDays int, style dto.PackingStyle) (dto.ScaledListResponse, error)
	// InvalidateCache clears the scaled-list cache.
	InvalidateCache()
}

// ErrTemplateNotFound is returned when a template ID has no catalogue entry.
var ErrTemplateNotFound = fmt.Errorf("template not found")

// Option configures a ListScalerService.
type Option func(*ListScalerService)

// ListScalerService implements QuantityScaler against the static catalogue.
// Scaling is always computed from template base quantities, so re-scaling a
// previously scaled list with the same parameters yields the same result.
type ListScalerService struct {
	catalog *catalog.Catalog
	cache   cache.Cache
}

// NewListScalerService creates a new ListScalerService with the given options.
func NewListScalerService(c *catalog.Catalog, opts ...Option) *ListScalerService {
	s := &ListScalerService{catalog: c}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables scaled-list caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *ListScalerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *ListScalerService) {
		s.cache = c
	}
}

// Scale rescales item quantities for the given duration and style. All fields
// other than quantity pass through unchanged. Items whose names match no rule
// keep their base quantity regardless of duration.
func (s *ListScalerService) Scale(items []model.CatalogItem, durationDays int, style dto.PackingStyle) ([]model.CatalogItem, error) {
	if durationDays <= 0 {
		return nil, dto.ErrInvalidDurationDays
	}
	multiplier, err := styleMultiplier(style)
	if err != nil {
		return nil, err
	}

	out := make([]model.CatalogItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Quantity = scaleQuantity(item.Name, item.Quantity, durationDays, multiplier)
	}
	return out, nil
}

// ScaleTemplate looks up a catalogue template and scales its items.
// Results are cached per (template, duration, style) when a cache is configured.
func (s *ListScalerService) ScaleTemplate(templateID string, durationDays int, style dto.PackingStyle) (dto.ScaledListResponse, error) {
	start := time.Now()
	if style == "" {
		style = dto.StyleBalanced
	}

	tpl, ok := s.catalog.TemplateByID(templateID)
	if !ok {
		metrics.RecordListGeneration(time.Since(start), "not_found")
		return dto.ScaledListResponse{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	resp := dto.ScaledListResponse{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		DurationDays: durationDays,
		Style:        style,
	}

	key := fmt.Sprintf("%s:%d:%s", tpl.ID, durationDays, style)
	if s.cache != nil {
		if items, ok := s.cache.Get(key); ok {
			resp.Items = items
			metrics.RecordListGeneration(time.Since(start), "cache_hit")
			return resp, nil
		}
	}

	items, err := s.Scale(tpl.Items, durationDays, style)
	if err != nil {
		metrics.RecordListGeneration(time.Since(start), "invalid")
		return dto.ScaledListResponse{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, items)
	}
	resp.Items = items
	metrics.RecordListGeneration(time.Since(start), "success")
	return resp, nil
}

// InvalidateCache clears all cached scaled lists.
func (s *ListScalerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

func styleMultiplier(style dto.PackingStyle) (float64, error) {
	switch style {
	case dto.StyleLight:
		return multiplierLight, nil
	case dto.StyleBalanced, "":
		return multiplierBalanced, nil
	case dto.StyleThorough:
		return multiplierThorough, nil
	default:
		return 0, dto.ErrInvalidStyle
	}
}

func scaleQuantity(name string, base, durationDays int, multiplier float64) int {
	lower := strings.ToLower(name)
	for _, rule := range scaleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.quantity(base, durationDays, multiplier)
			}
		}
	}
	return base
}
