// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

type MockItemRepositoryInterface struct {
	mock.Mock
}

func (m *MockItemRepositoryInterface) Create(ctx context.Context, item *model.PackingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepositoryInterface) CreateMany(ctx context.Context, items []*model.PackingItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockItemRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackingItem), args.Error(1)
}

func (m *MockItemRepositoryInterface) FindByTrip(ctx context.Context, tripID primitive.ObjectID) ([]*model.PackingItem, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PackingItem), args.Error(1)
}

func (m *MockItemRepositoryInterface) Update(ctx context.Context, item *model.PackingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepositoryInterface) DeleteByTrip(ctx context.Context, tripID primitive.ObjectID) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

func (m *MockItemRepositoryInterface) CountByTrip(ctx context.Context, tripID primitive.ObjectID) (int64, int64, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
