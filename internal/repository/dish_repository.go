package repository

import (
	"context"

	"gorm.io/gorm"

	"munchly/internal/model"
)

// DishRepository defines dish persistence operations.
type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) error
	Update(ctx context.Context, dish *model.Dish) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Dish, error)
	FindByRestaurantID(ctx context.Context, restaurantID uint) ([]model.Dish, error)
}

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

// Create creates a new dish.
func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

// Update saves all fields of an existing dish.
func (r *dishRepository) Update(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

// Delete removes a dish by ID.
func (r *dishRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Dish{}, id).Error
}

// FindByID finds a dish by ID.
func (r *dishRepository) FindByID(ctx context.Context, id uint) (*model.Dish, error) {
	var dish model.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// FindByRestaurantID finds all dishes for a restaurant.
func (r *dishRepository) FindByRestaurantID(ctx context.Context, restaurantID uint) ([]model.Dish, error) {
	var dishes []model.Dish
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}
