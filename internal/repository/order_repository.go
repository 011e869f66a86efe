package repository

import (
	"context"

	"gorm.io/gorm"

	"munchly/internal/model"
)

// OrderRepository defines order persistence operations. The order header and
// its items are only ever written together inside WithTransaction.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	CreateItems(ctx context.Context, items []model.OrderItem) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]model.Order, error)
	FindByRestaurantID(ctx context.Context, restaurantID uint, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error
	// WithTransaction executes fn within a database transaction; any error
	// from fn rolls the whole transaction back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order header. The generated ID is written back to order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateItems inserts the given order items.
func (r *orderRepository) CreateItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// preloadItemDishes enriches preloaded order items with the dish's display
// fields. LEFT JOIN so an item still loads if its dish row is gone.
func preloadItemDishes(db *gorm.DB) *gorm.DB {
	return db.
		Select("order_items.*, dishes.name AS name, dishes.description AS description, dishes.category AS category").
		Joins("LEFT JOIN dishes ON dishes.id = order_items.dish_id")
}

// FindByID finds an order by ID with its items, joined with both party names
// and per-item dish details.
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Select("orders.*, customers.name AS customer_name, restaurants.name AS restaurant_name").
		Joins("JOIN users AS customers ON customers.id = orders.customer_id").
		Joins("JOIN users AS restaurants ON restaurants.id = orders.restaurant_id").
		Preload("Items", preloadItemDishes).
		Where("orders.id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByCustomerID finds all orders placed by a customer, newest first,
// joined with the restaurant name.
func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Select("orders.*, restaurants.name AS restaurant_name").
		Joins("JOIN users AS restaurants ON restaurants.id = orders.restaurant_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByRestaurantID finds all orders received by a restaurant, newest first,
// optionally filtered by status, joined with the customer name.
func (r *orderRepository) FindByRestaurantID(ctx context.Context, restaurantID uint, status model.OrderStatus) ([]model.Order, error) {
	q := r.db.WithContext(ctx).
		Select("orders.*, customers.name AS customer_name").
		Joins("JOIN users AS customers ON customers.id = orders.customer_id").
		Where("orders.restaurant_id = ?", restaurantID)
	if status != "" {
		q = q.Where("orders.status = ?", status)
	}
	var orders []model.Order
	if err := q.Order("orders.created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus persists a new status for an order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// WithTransaction executes fn against a transaction-scoped repository.
func (r *orderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &orderRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
