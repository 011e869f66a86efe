package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/repository"
	"munchly/internal/session"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateItems(ctx context.Context, items []model.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByRestaurantID(ctx context.Context, restaurantID uint, status model.OrderStatus) ([]model.Order, error) {
	args := m.Called(ctx, restaurantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// WithTransaction runs fn against the same mock so per-call expectations
// inside the transaction can be asserted.
func (m *MockOrderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.OrderRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	validItems := []OrderItemInput{
		{DishID: 1, Quantity: 2, Price: decimal.NewFromFloat(8.99)},
		{DishID: 3, Quantity: 1, Price: decimal.NewFromFloat(5.99)},
	}
	total := decimal.NewFromFloat(23.97)

	tests := []struct {
		name          string
		items         []OrderItemInput
		totalPrice    decimal.Decimal
		setupMock     func(*MockOrderRepository)
		expectedError error
		expectedID    uint
	}{
		{
			name:       "successful placement",
			items:      validItems,
			totalPrice: total,
			setupMock: func(m *MockOrderRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
					Run(func(args mock.Arguments) {
						order := args.Get(1).(*model.Order)
						order.ID = 42
					}).Return(nil)
				m.On("CreateItems", mock.Anything, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
			},
			expectedID: 42,
		},
		{
			name:          "empty order",
			items:         nil,
			totalPrice:    total,
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrEmptyOrder,
		},
		{
			name: "zero quantity item",
			items: []OrderItemInput{
				{DishID: 1, Quantity: 0, Price: decimal.NewFromFloat(8.99)},
			},
			totalPrice:    total,
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrInvalidOrderItem,
		},
		{
			name: "negative item price",
			items: []OrderItemInput{
				{DishID: 1, Quantity: 1, Price: decimal.NewFromFloat(-1)},
			},
			totalPrice:    total,
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrInvalidOrderItem,
		},
		{
			name:          "negative total",
			items:         validItems,
			totalPrice:    decimal.NewFromFloat(-5),
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrInvalidTotal,
		},
		{
			name:       "item insert fails, transaction surfaces the error",
			items:      validItems,
			totalPrice: total,
			setupMock: func(m *MockOrderRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
				m.On("CreateItems", mock.Anything, mock.AnythingOfType("[]model.OrderItem")).
					Return(gorm.ErrInvalidData)
			},
			expectedError: gorm.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			tt.setupMock(mockRepo)

			service := NewOrderService(mockRepo)
			orderID, err := service.PlaceOrder(context.Background(), 7, 9, tt.items, tt.totalPrice, "1 Main St")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, orderID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, orderID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_PlaceOrder_PreconditionsSkipTransaction(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := NewOrderService(mockRepo)

	_, err := service.PlaceOrder(context.Background(), 7, 9, nil, decimal.Zero, "")

	assert.ErrorIs(t, err, errors.ErrEmptyOrder)
	mockRepo.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrder(t *testing.T) {
	stored := &model.Order{
		ID:           42,
		CustomerID:   7,
		RestaurantID: 9,
		Status:       model.StatusPreparing,
	}

	tests := []struct {
		name          string
		identity      session.Identity
		setupMock     func(*MockOrderRepository)
		expectedError error
	}{
		{
			name:     "owning customer",
			identity: session.Identity{UserID: 7, Role: model.RoleCustomer},
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
			},
		},
		{
			name:     "owning restaurant",
			identity: session.Identity{UserID: 9, Role: model.RoleRestaurant},
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
			},
		},
		{
			name:     "other customer",
			identity: session.Identity{UserID: 8, Role: model.RoleCustomer},
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:     "other restaurant",
			identity: session.Identity{UserID: 10, Role: model.RoleRestaurant},
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:     "order not found",
			identity: session.Identity{UserID: 7, Role: model.RoleCustomer},
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			tt.setupMock(mockRepo)

			service := NewOrderService(mockRepo)
			order, err := service.GetOrder(context.Background(), tt.identity, 42)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored, order)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	stored := &model.Order{ID: 42, CustomerID: 7, RestaurantID: 9, Status: model.StatusNew}

	tests := []struct {
		name          string
		restaurantID  uint
		status        model.OrderStatus
		setupMock     func(*MockOrderRepository)
		expectedError error
	}{
		{
			name:         "successful transition",
			restaurantID: 9,
			status:       model.StatusPreparing,
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
				m.On("UpdateStatus", mock.Anything, uint(42), model.StatusPreparing).Return(nil)
			},
		},
		{
			name:         "order not found",
			restaurantID: 9,
			status:       model.StatusPreparing,
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrOrderNotFound,
		},
		{
			name:         "not the owning restaurant",
			restaurantID: 10,
			status:       model.StatusPreparing,
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:         "invalid status leaves the order untouched",
			restaurantID: 9,
			status:       "Being Cooked",
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
			},
			expectedError: errors.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			tt.setupMock(mockRepo)

			service := NewOrderService(mockRepo)
			err := service.UpdateStatus(context.Background(), tt.restaurantID, 42, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListRestaurantOrders(t *testing.T) {
	t.Run("invalid filter rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)

		orders, err := service.ListRestaurantOrders(context.Background(), 9, "Eaten")

		assert.ErrorIs(t, err, errors.ErrInvalidStatus)
		assert.Nil(t, orders)
		mockRepo.AssertNotCalled(t, "FindByRestaurantID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty filter lists everything", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByRestaurantID", mock.Anything, uint(9), model.OrderStatus("")).
			Return([]model.Order{{ID: 1}, {ID: 2}}, nil)

		service := NewOrderService(mockRepo)
		orders, err := service.ListRestaurantOrders(context.Background(), 9, "")

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		mockRepo.AssertExpectations(t)
	})
}
