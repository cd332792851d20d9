package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/repository"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrTripNotFound is returned when a trip does not exist or belongs to another user.
	ErrTripNotFound = errors.New("trip not found")
	// ErrItemNotFound is returned when a packing item does not exist.
	ErrItemNotFound = errors.New("item not found")
)

// TripService provides trip and packing item operations.
type TripService interface {
	CreateTrip(ctx context.Context, userID primitive.ObjectID, req dto.CreateTripRequest) (*model.Trip, error)
	GetTrip(ctx context.Context, userID, tripID primitive.ObjectID) (*dto.TripResponse, error)
	ListTrips(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]dto.TripResponse, error)
	UpdateTrip(ctx context.Context, userID, tripID primitive.ObjectID, req dto.UpdateTripRequest) (*model.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID primitive.ObjectID) error

	AddItem(ctx context.Context, userID, tripID primitive.ObjectID, req dto.CreateItemRequest) (*model.PackingItem, error)
	ListItems(ctx context.Context, userID, tripID primitive.ObjectID) ([]*model.PackingItem, error)
	UpdateItem(ctx context.Context, userID, itemID primitive.ObjectID, req dto.UpdateItemRequest) (*model.PackingItem, error)
	DeleteItem(ctx context.Context, userID, itemID primitive.ObjectID) error

	ImportTemplate(ctx context.Context, userID, tripID primitive.ObjectID, req dto.ImportTemplateRequest) (*dto.ImportResponse, error)
	EstimateTrip(ctx context.Context, userID, tripID primitive.ObjectID, airline string, flightType model.FlightType, class model.CabinClass) (*model.WeightEstimate, error)
}

// TripServiceImpl implements TripService on top of the trip and item
// repositories, the scaling engine, and the gamification service.
type TripServiceImpl struct {
	tripRepo  repository.TripRepositoryInterface
	itemRepo  repository.ItemRepositoryInterface
	scaler    QuantityScaler
	estimator WeightEstimator
	progress  ProgressService
}

// NewTripService creates a new trip service.
func NewTripService(
	tripRepo repository.TripRepositoryInterface,
	itemRepo repository.ItemRepositoryInterface,
	scaler QuantityScaler,
	estimator WeightEstimator,
	progress ProgressService,
) TripService {
	return &TripServiceImpl{
		tripRepo:  tripRepo,
		itemRepo:  itemRepo,
		scaler:    scaler,
		estimator: estimator,
		progress:  progress,
	}
}

// CreateTrip creates a trip for the user and awards trip-creation XP.
func (s *TripServiceImpl) CreateTrip(ctx context.Context, userID primitive.ObjectID, req dto.CreateTripRequest) (*model.Trip, error) {
	if s.tripRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	trip := &model.Trip{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Destination: strings.TrimSpace(req.Destination),
	}

	var err error
	if trip.StartDate, err = parseDate(req.StartDate); err != nil {
		return nil, &dto.ValidationError{Field: "start_date", Message: "must be RFC 3339"}
	}
	if trip.EndDate, err = parseDate(req.EndDate); err != nil {
		return nil, &dto.ValidationError{Field: "end_date", Message: "must be RFC 3339"}
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.awardAsync(userID, model.EventTripCreated)
	return trip, nil
}

// GetTrip returns a trip with its packing counts.
func (s *TripServiceImpl) GetTrip(ctx context.Context, userID, tripID primitive.ObjectID) (*dto.TripResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	total, packed, err := s.itemRepo.CountByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return &dto.TripResponse{
		Trip:        *trip,
		ItemCount:   int(total),
		PackedCount: int(packed),
	}, nil
}

// ListTrips lists a user's trips with packing counts, newest first.
func (s *TripServiceImpl) ListTrips(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]dto.TripResponse, error) {
	if s.tripRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	trips, err := s.tripRepo.FindByUser(ctx, userID, limit, skip)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TripResponse, 0, len(trips))
	for _, trip := range trips {
		total, packed, err := s.itemRepo.CountByTrip(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.TripResponse{
			Trip:        *trip,
			ItemCount:   int(total),
			PackedCount: int(packed),
		})
	}
	return out, nil
}

// UpdateTrip applies partial updates to a trip.
func (s *TripServiceImpl) UpdateTrip(ctx context.Context, userID, tripID primitive.ObjectID, req dto.UpdateTripRequest) (*model.Trip, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = strings.TrimSpace(*req.Name)
	}
	if req.Destination != nil {
		trip.Destination = strings.TrimSpace(*req.Destination)
	}
	if req.StartDate != nil {
		if trip.StartDate, err = parseDate(req.StartDate); err != nil {
			return nil, &dto.ValidationError{Field: "start_date", Message: "must be RFC 3339"}
		}
	}
	if req.EndDate != nil {
		if trip.EndDate, err = parseDate(req.EndDate); err != nil {
			return nil, &dto.ValidationError{Field: "end_date", Message: "must be RFC 3339"}
		}
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip removes a trip and all of its items.
func (s *TripServiceImpl) DeleteTrip(ctx context.Context, userID, tripID primitive.ObjectID) error {
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteByTrip(ctx, tripID); err != nil {
		return err
	}
	return s.tripRepo.Delete(ctx, tripID)
}

// AddItem appends a packing item to a trip. Quantity is clamped to at least 1
// and blank categories default to miscellaneous.
func (s *TripServiceImpl) AddItem(ctx context.Context, userID, tripID primitive.ObjectID, req dto.CreateItemRequest) (*model.PackingItem, error) {
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	item := &model.PackingItem{
		TripID:   tripID,
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		Quantity: req.Quantity,
		Luggage:  req.Luggage,
	}
	if item.Category == "" {
		item.Category = model.CategoryMiscellaneous
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems lists a trip's packing items.
func (s *TripServiceImpl) ListItems(ctx context.Context, userID, tripID primitive.ObjectID) ([]*model.PackingItem, error) {
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	return s.itemRepo.FindByTrip(ctx, tripID)
}

// UpdateItem applies partial updates to a packing item. Packing an item
// awards XP; packing the trip's last open item awards the fully-packed event.
func (s *TripServiceImpl) UpdateItem(ctx context.Context, userID, itemID primitive.ObjectID, req dto.UpdateItemRequest) (*model.PackingItem, error) {
	if s.itemRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, ErrItemNotFound
	}

	wasPacked := item.Packed

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
		if item.Quantity < 1 {
			item.Quantity = 1
		}
	}
	if req.Packed != nil {
		item.Packed = *req.Packed
	}
	if req.Luggage != nil {
		item.Luggage = *req.Luggage
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if !wasPacked && item.Packed {
		s.awardAsync(userID, model.EventItemPacked)

		total, packed, err := s.itemRepo.CountByTrip(ctx, item.TripID)
		if err == nil && total > 0 && total == packed {
			s.awardAsync(userID, model.EventTripFullyPacked)
		}
	}

	return item, nil
}

// DeleteItem removes a packing item.
func (s *TripServiceImpl) DeleteItem(ctx context.Context, userID, itemID primitive.ObjectID) error {
	if s.itemRepo == nil {
		return ErrRepositoryNotConfigured
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != userID {
		return ErrItemNotFound
	}
	return s.itemRepo.Delete(ctx, itemID)
}

// ImportTemplate scales a catalogue template and inserts the result as the
// trip's packing items. Items whose names already exist on the trip are
// skipped rather than duplicated.
func (s *TripServiceImpl) ImportTemplate(ctx context.Context, userID, tripID primitive.ObjectID, req dto.ImportTemplateRequest) (*dto.ImportResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	durationDays := req.DurationDays
	if durationDays == 0 {
		durationDays = trip.DurationDays()
	}
	if durationDays <= 0 {
		return nil, dto.ErrInvalidDurationDays
	}

	scaled, err := s.scaler.ScaleTemplate(req.TemplateID, durationDays, req.Style)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[strings.ToLower(item.Name)] = true
	}

	var toInsert []*model.PackingItem
	skipped := 0
	for _, catItem := range scaled.Items {
		if seen[strings.ToLower(catItem.Name)] {
			skipped++
			continue
		}
		toInsert = append(toInsert, &model.PackingItem{
			TripID:   tripID,
			UserID:   userID,
			Name:     catItem.Name,
			Category: catItem.Category,
			Quantity: catItem.Quantity,
			Luggage:  catItem.Luggage,
		})
	}

	if err := s.itemRepo.CreateMany(ctx, toInsert); err != nil {
		return nil, err
	}

	s.awardAsync(userID, model.EventTemplateImported)

	return &dto.ImportResponse{
		TripID:       tripID.Hex(),
		TemplateID:   scaled.TemplateID,
		DurationDays: durationDays,
		Imported:     len(toInsert),
		Skipped:      skipped,
	}, nil
}

// EstimateTrip runs the weight estimator over a trip's stored items.
func (s *TripServiceImpl) EstimateTrip(ctx context.Context, userID, tripID primitive.ObjectID, airline string, flightType model.FlightType, class model.CabinClass) (*model.WeightEstimate, error) {
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	stored := make([]model.PackingItem, len(items))
	for i, item := range items {
		stored[i] = *item
	}
	est := s.estimator.EstimatePacked(stored, airline, flightType, class)
	return &est, nil
}

// ownedTrip loads a trip and verifies ownership. Trips belonging to other
// users are reported as not found rather than forbidden.
func (s *TripServiceImpl) ownedTrip(ctx context.Context, userID, tripID primitive.ObjectID) (*model.Trip, error) {
	if s.tripRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil || trip.UserID != userID {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// awardAsync records an XP event without blocking the request path.
// Gamification is advisory; failures are logged and dropped.
func (s *TripServiceImpl) awardAsync(userID primitive.ObjectID, event model.XPEvent) {
	if s.progress == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := s.progress.Award(ctx, userID, event); err != nil {
			log.Warn().Err(err).Str("event", string(event)).Msg("failed to award XP")
		}
	}()
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	return &t, nil
}
