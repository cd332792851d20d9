package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/mocks"
	"github.com/packsmart/packsmart-service/internal/service"
)

func newTripService(t *testing.T, tripRepo *mocks.MockTripRepositoryInterface, itemRepo *mocks.MockItemRepositoryInterface) service.TripService {
	t.Helper()
	cat := catalog.MustLoad()
	scaler := service.NewListScalerService(cat)
	estimator := service.NewWeightEstimatorService(cat)
	return service.NewTripService(tripRepo, itemRepo, scaler, estimator, nil)
}

func TestTripService_CreateTrip(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("creates trip with parsed dates", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).Return(nil)

		svc := newTripService(t, tripRepo, itemRepo)

		start := "2026-09-01T00:00:00Z"
		end := "2026-09-14T00:00:00Z"
		trip, err := svc.CreateTrip(context.Background(), userID, dto.CreateTripRequest{
			Name:        "  Maui 2026  ",
			Destination: "Hawaii",
			StartDate:   &start,
			EndDate:     &end,
		})

		require.NoError(t, err)
		assert.Equal(t, "Maui 2026", trip.Name)
		assert.Equal(t, userID, trip.UserID)
		require.NotNil(t, trip.StartDate)
		require.NotNil(t, trip.EndDate)
		assert.Equal(t, 14, trip.DurationDays())
		tripRepo.AssertExpectations(t)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)

		svc := newTripService(t, tripRepo, itemRepo)

		bad := "next tuesday"
		_, err := svc.CreateTrip(context.Background(), userID, dto.CreateTripRequest{
			Name:      "Maui",
			StartDate: &bad,
		})

		var vErr *dto.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "start_date", vErr.Field)
		tripRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTripService_GetTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	tripID := primitive.NewObjectID()

	t.Run("returns trip with packing counts", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID, Name: "Maui"}, nil)
		itemRepo.On("CountByTrip", mock.Anything, tripID).Return(int64(10), int64(4), nil)

		svc := newTripService(t, tripRepo, itemRepo)

		resp, err := svc.GetTrip(context.Background(), userID, tripID)

		require.NoError(t, err)
		assert.Equal(t, "Maui", resp.Trip.Name)
		assert.Equal(t, 10, resp.ItemCount)
		assert.Equal(t, 4, resp.PackedCount)
	})

	t.Run("hides other users' trips", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: primitive.NewObjectID()}, nil)

		svc := newTripService(t, tripRepo, itemRepo)

		_, err := svc.GetTrip(context.Background(), userID, tripID)

		assert.ErrorIs(t, err, service.ErrTripNotFound)
	})

	t.Run("reports missing trip as not found", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(nil, nil)

		svc := newTripService(t, tripRepo, itemRepo)

		_, err := svc.GetTrip(context.Background(), userID, tripID)

		assert.ErrorIs(t, err, service.ErrTripNotFound)
	})
}

func TestTripService_DeleteTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	tripID := primitive.NewObjectID()

	tripRepo := new(mocks.MockTripRepositoryInterface)
	itemRepo := new(mocks.MockItemRepositoryInterface)
	tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID}, nil)
	itemRepo.On("DeleteByTrip", mock.Anything, tripID).Return(nil)
	tripRepo.On("Delete", mock.Anything, tripID).Return(nil)

	svc := newTripService(t, tripRepo, itemRepo)

	err := svc.DeleteTrip(context.Background(), userID, tripID)

	require.NoError(t, err)
	tripRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestTripService_AddItem(t *testing.T) {
	userID := primitive.NewObjectID()
	tripID := primitive.NewObjectID()

	tests := []struct {
		name         string
		req          dto.CreateItemRequest
		wantCategory model.Category
		wantQuantity int
	}{
		{
			name:         "defaults blank category and zero quantity",
			req:          dto.CreateItemRequest{Name: "Snorkel"},
			wantCategory: model.CategoryMiscellaneous,
			wantQuantity: 1,
		},
		{
			name:         "clamps negative quantity to one",
			req:          dto.CreateItemRequest{Name: "Charger", Category: model.CategoryElectronics, Quantity: -3},
			wantCategory: model.CategoryElectronics,
			wantQuantity: 1,
		},
		{
			name:         "keeps explicit values",
			req:          dto.CreateItemRequest{Name: "T-Shirt", Category: model.CategoryClothes, Quantity: 5},
			wantCategory: model.CategoryClothes,
			wantQuantity: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tripRepo := new(mocks.MockTripRepositoryInterface)
			itemRepo := new(mocks.MockItemRepositoryInterface)
			tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID}, nil)
			itemRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PackingItem")).Return(nil)

			svc := newTripService(t, tripRepo, itemRepo)

			item, err := svc.AddItem(context.Background(), userID, tripID, tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, item.Category)
			assert.Equal(t, tt.wantQuantity, item.Quantity)
			assert.Equal(t, tripID, item.TripID)
		})
	}
}

func TestTripService_UpdateItem(t *testing.T) {
	userID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	tripID := primitive.NewObjectID()

	t.Run("toggles packed and clamps quantity", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		itemRepo.On("FindByID", mock.Anything, itemID).Return(&model.PackingItem{
			ID: itemID, TripID: tripID, UserID: userID, Name: "T-Shirt", Quantity: 3,
		}, nil)
		itemRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PackingItem")).Return(nil)
		itemRepo.On("CountByTrip", mock.Anything, tripID).Return(int64(5), int64(1), nil)

		svc := newTripService(t, tripRepo, itemRepo)

		packed := true
		qty := 0
		item, err := svc.UpdateItem(context.Background(), userID, itemID, dto.UpdateItemRequest{
			Packed:   &packed,
			Quantity: &qty,
		})

		require.NoError(t, err)
		assert.True(t, item.Packed)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("hides other users' items", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		itemRepo.On("FindByID", mock.Anything, itemID).Return(&model.PackingItem{
			ID: itemID, TripID: tripID, UserID: primitive.NewObjectID(),
		}, nil)

		svc := newTripService(t, tripRepo, itemRepo)

		packed := true
		_, err := svc.UpdateItem(context.Background(), userID, itemID, dto.UpdateItemRequest{Packed: &packed})

		assert.ErrorIs(t, err, service.ErrItemNotFound)
	})
}

func TestTripService_ImportTemplate(t *testing.T) {
	userID := primitive.NewObjectID()
	tripID := primitive.NewObjectID()

	t.Run("imports scaled items and skips duplicates", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID}, nil)
		itemRepo.On("FindByTrip", mock.Anything, tripID).Return([]*model.PackingItem{
			{TripID: tripID, UserID: userID, Name: "sunscreen"},
		}, nil)

		var inserted []*model.PackingItem
		itemRepo.On("CreateMany", mock.Anything, mock.AnythingOfType("[]*model.PackingItem")).Return(nil).Run(func(args mock.Arguments) {
			inserted = args.Get(1).([]*model.PackingItem)
		})

		svc := newTripService(t, tripRepo, itemRepo)

		resp, err := svc.ImportTemplate(context.Background(), userID, tripID, dto.ImportTemplateRequest{
			TemplateID:   "hawaii-beach-vacation",
			DurationDays: 7,
			Style:        dto.StyleBalanced,
		})

		require.NoError(t, err)
		assert.Equal(t, "hawaii-beach-vacation", resp.TemplateID)
		assert.Equal(t, 1, resp.Skipped)
		assert.Equal(t, len(inserted), resp.Imported)
		assert.NotEmpty(t, inserted)
		for _, item := range inserted {
			assert.NotEqual(t, "sunscreen", strings.ToLower(item.Name))
			assert.Equal(t, tripID, item.TripID)
			assert.Equal(t, userID, item.UserID)
			assert.GreaterOrEqual(t, item.Quantity, 1)
		}
	})

	t.Run("falls back to trip duration", func(t *testing.T) {
		start, _ := time.Parse(time.RFC3339, "2026-09-01T00:00:00Z")
		end, _ := time.Parse(time.RFC3339, "2026-09-10T00:00:00Z")

		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{
			ID: tripID, UserID: userID, StartDate: &start, EndDate: &end,
		}, nil)
		itemRepo.On("FindByTrip", mock.Anything, tripID).Return([]*model.PackingItem{}, nil)
		itemRepo.On("CreateMany", mock.Anything, mock.Anything).Return(nil)

		svc := newTripService(t, tripRepo, itemRepo)

		resp, err := svc.ImportTemplate(context.Background(), userID, tripID, dto.ImportTemplateRequest{
			TemplateID: "hawaii-beach-vacation",
		})

		require.NoError(t, err)
		assert.Equal(t, 10, resp.DurationDays)
	})

	t.Run("rejects trips without dates or override", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID}, nil)

		svc := newTripService(t, tripRepo, itemRepo)

		_, err := svc.ImportTemplate(context.Background(), userID, tripID, dto.ImportTemplateRequest{
			TemplateID: "hawaii-beach-vacation",
		})

		assert.ErrorIs(t, err, dto.ErrInvalidDurationDays)
	})

	t.Run("rejects unknown templates", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepositoryInterface)
		itemRepo := new(mocks.MockItemRepositoryInterface)
		tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID}, nil)

		svc := newTripService(t, tripRepo, itemRepo)

		_, err := svc.ImportTemplate(context.Background(), userID, tripID, dto.ImportTemplateRequest{
			TemplateID:   "no-such-template",
			DurationDays: 7,
		})

		assert.ErrorIs(t, err, service.ErrTemplateNotFound)
	})
}

func TestTripService_EstimateTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	tripID := primitive.NewObjectID()

	tripRepo := new(mocks.MockTripRepositoryInterface)
	itemRepo := new(mocks.MockItemRepositoryInterface)
	tripRepo.On("FindByID", mock.Anything, tripID).Return(&model.Trip{ID: tripID, UserID: userID}, nil)
	itemRepo.On("FindByTrip", mock.Anything, tripID).Return([]*model.PackingItem{
		{Name: "Laptop", Category: model.CategoryElectronics, Quantity: 1, Packed: true},
		{Name: "Jeans", Category: model.CategoryClothes, Quantity: 2, Packed: true},
		{Name: "Sunscreen", Category: model.CategoryToiletries, Quantity: 1, Packed: false},
	}, nil)

	svc := newTripService(t, tripRepo, itemRepo)

	est, err := svc.EstimateTrip(context.Background(), userID, tripID, "HA", model.FlightInternational, model.ClassEconomy)

	require.NoError(t, err)
	assert.InDelta(t, 3.1, est.TotalKg, 0.001)
	assert.Equal(t, "HA", est.AirlineCode)
}
