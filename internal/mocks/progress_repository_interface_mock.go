// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/domain/model"
)

type MockProgressRepositoryInterface struct {
	mock.Mock
}

func (m *MockProgressRepositoryInterface) FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProgress), args.Error(1)
}

func (m *MockProgressRepositoryInterface) Upsert(ctx context.Context, progress *model.UserProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}
