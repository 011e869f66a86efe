package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"munchly/internal/errors"
	"munchly/internal/model"
)

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, customerID, restaurantID uint) (bool, error) {
	args := m.Called(ctx, customerID, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, customerID, restaurantID uint) (bool, error) {
	args := m.Called(ctx, customerID, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.Favorite, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Favorite), args.Error(1)
}

func TestFavoriteService_Add(t *testing.T) {
	t.Run("new favorite is created", func(t *testing.T) {
		mockRepo := new(MockFavoriteRepository)
		mockRepo.On("Exists", mock.Anything, uint(7), uint(9)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Favorite")).Return(nil)

		service := NewFavoriteService(mockRepo)
		err := service.Add(context.Background(), 7, 9)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("second add is a no-op", func(t *testing.T) {
		mockRepo := new(MockFavoriteRepository)
		mockRepo.On("Exists", mock.Anything, uint(7), uint(9)).Return(true, nil)

		service := NewFavoriteService(mockRepo)
		err := service.Add(context.Background(), 7, 9)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	t.Run("existing favorite removed", func(t *testing.T) {
		mockRepo := new(MockFavoriteRepository)
		mockRepo.On("Delete", mock.Anything, uint(7), uint(9)).Return(true, nil)

		service := NewFavoriteService(mockRepo)
		err := service.Remove(context.Background(), 7, 9)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("absent favorite reports not found", func(t *testing.T) {
		mockRepo := new(MockFavoriteRepository)
		mockRepo.On("Delete", mock.Anything, uint(7), uint(9)).Return(false, nil)

		service := NewFavoriteService(mockRepo)
		err := service.Remove(context.Background(), 7, 9)

		assert.ErrorIs(t, err, errors.ErrFavoriteNotFound)
	})
}

func TestFavoriteService_List(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("FindByCustomerID", mock.Anything, uint(7)).Return([]model.Favorite{
		{ID: 1, CustomerID: 7, RestaurantID: 9, RestaurantName: "Bella Napoli"},
	}, nil)

	service := NewFavoriteService(mockRepo)
	favorites, err := service.List(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, "Bella Napoli", favorites[0].RestaurantName)
}
