package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/repository"
	"munchly/internal/session"
)

// OrderItemInput is one line of an order as submitted by the customer. The
// price is the client's snapshot of the dish price; it is stored as-is, not
// reconciled against the current dish price.
type OrderItemInput struct {
	DishID   uint
	Quantity int
	Price    decimal.Decimal
}

// OrderService handles order placement, reads and the status lifecycle.
type OrderService interface {
	PlaceOrder(ctx context.Context, customerID, restaurantID uint, items []OrderItemInput, totalPrice decimal.Decimal, deliveryAddress string) (uint, error)
	GetOrder(ctx context.Context, identity session.Identity, orderID uint) (*model.Order, error)
	ListCustomerOrders(ctx context.Context, customerID uint) ([]model.Order, error)
	ListRestaurantOrders(ctx context.Context, restaurantID uint, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, restaurantID, orderID uint, status model.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// PlaceOrder creates one order header and one item row per input entry as a
// single unit: either all rows exist afterwards or none do. The total price
// is trusted from the caller and never recomputed from the items.
func (s *orderService) PlaceOrder(ctx context.Context, customerID, restaurantID uint, items []OrderItemInput, totalPrice decimal.Decimal, deliveryAddress string) (uint, error) {
	// Preconditions are checked before the transaction opens.
	if len(items) == 0 {
		return 0, errors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity < 1 || item.Price.IsNegative() {
			return 0, errors.ErrInvalidOrderItem
		}
	}
	if totalPrice.IsNegative() {
		return 0, errors.ErrInvalidTotal
	}

	order := &model.Order{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		TotalPrice:      totalPrice,
		DeliveryAddress: deliveryAddress,
		Status:          model.StatusNew,
	}

	err := s.orderRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.OrderRepository) error {
		if err := txRepo.Create(ctx, order); err != nil {
			return err
		}

		orderItems := make([]model.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, model.OrderItem{
				OrderID:  order.ID,
				DishID:   item.DishID,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		return txRepo.CreateItems(ctx, orderItems)
	})
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	return order.ID, nil
}

// GetOrder loads an order with its items, then enforces ownership: the
// customer who placed it or the restaurant that received it. The load comes
// first, so an absent order is NotFound before ownership is evaluated.
func (s *orderService) GetOrder(ctx context.Context, identity session.Identity, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	switch identity.Role {
	case model.RoleCustomer:
		if order.CustomerID != identity.UserID {
			return nil, errors.ErrForbidden
		}
	case model.RoleRestaurant:
		if order.RestaurantID != identity.UserID {
			return nil, errors.ErrForbidden
		}
	default:
		return nil, errors.ErrForbidden
	}

	return order, nil
}

// ListCustomerOrders returns the orders a customer has placed.
func (s *orderService) ListCustomerOrders(ctx context.Context, customerID uint) ([]model.Order, error) {
	return s.orderRepo.FindByCustomerID(ctx, customerID)
}

// ListRestaurantOrders returns the orders a restaurant has received,
// optionally filtered by status.
func (s *orderService) ListRestaurantOrders(ctx context.Context, restaurantID uint, status model.OrderStatus) ([]model.Order, error) {
	if status != "" && !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}
	return s.orderRepo.FindByRestaurantID(ctx, restaurantID, status)
}

// UpdateStatus transitions an order's status. Only the owning restaurant may
// do this, and only to a value from the fixed set; invalid values leave the
// stored status untouched. There is deliberately no ordering restriction
// between states and no side effects beyond persisting the value.
func (s *orderService) UpdateStatus(ctx context.Context, restaurantID, orderID uint, status model.OrderStatus) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOrderNotFound
		}
		return fmt.Errorf("find order: %w", err)
	}

	if order.RestaurantID != restaurantID {
		return errors.ErrForbidden
	}

	if !status.Valid() {
		return errors.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
