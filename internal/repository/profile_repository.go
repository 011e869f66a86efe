package repository

import (
	"context"

	"gorm.io/gorm"

	"munchly/internal/model"
)

// CustomerProfileRepository defines customer profile persistence operations.
type CustomerProfileRepository interface {
	Create(ctx context.Context, profile *model.CustomerProfile) error
	FindByUserID(ctx context.Context, userID uint) (*model.CustomerProfile, error)
	Update(ctx context.Context, userID uint, fields map[string]interface{}) error
}

type customerProfileRepository struct {
	db *gorm.DB
}

// NewCustomerProfileRepository creates a new customer profile repository.
func NewCustomerProfileRepository(db *gorm.DB) CustomerProfileRepository {
	return &customerProfileRepository{db: db}
}

// Create creates a new customer profile.
func (r *customerProfileRepository) Create(ctx context.Context, profile *model.CustomerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// FindByUserID finds a customer profile joined with the owning user.
func (r *customerProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.CustomerProfile, error) {
	var profile model.CustomerProfile
	err := r.db.WithContext(ctx).
		Select("customer_profiles.*, users.name AS name, users.email AS email").
		Joins("JOIN users ON users.id = customer_profiles.user_id").
		Where("customer_profiles.user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial-field update; only present keys change.
func (r *customerProfileRepository) Update(ctx context.Context, userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.CustomerProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

// RestaurantProfileRepository defines restaurant profile persistence operations.
type RestaurantProfileRepository interface {
	Create(ctx context.Context, profile *model.RestaurantProfile) error
	FindByUserID(ctx context.Context, userID uint) (*model.RestaurantProfile, error)
	Update(ctx context.Context, userID uint, fields map[string]interface{}) error
	ListAll(ctx context.Context) ([]model.RestaurantProfile, error)
}

type restaurantProfileRepository struct {
	db *gorm.DB
}

// NewRestaurantProfileRepository creates a new restaurant profile repository.
func NewRestaurantProfileRepository(db *gorm.DB) RestaurantProfileRepository {
	return &restaurantProfileRepository{db: db}
}

// Create creates a new restaurant profile.
func (r *restaurantProfileRepository) Create(ctx context.Context, profile *model.RestaurantProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// FindByUserID finds a restaurant profile joined with the owning user.
func (r *restaurantProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.RestaurantProfile, error) {
	var profile model.RestaurantProfile
	err := r.db.WithContext(ctx).
		Select("restaurant_profiles.*, users.name AS name, users.email AS email").
		Joins("JOIN users ON users.id = restaurant_profiles.user_id").
		Where("restaurant_profiles.user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial-field update; only present keys change.
func (r *restaurantProfileRepository) Update(ctx context.Context, userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.RestaurantProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

// ListAll returns every restaurant profile joined with its user.
func (r *restaurantProfileRepository) ListAll(ctx context.Context) ([]model.RestaurantProfile, error) {
	var profiles []model.RestaurantProfile
	err := r.db.WithContext(ctx).
		Select("restaurant_profiles.*, users.name AS name, users.email AS email").
		Joins("JOIN users ON users.id = restaurant_profiles.user_id").
		Where("users.role = ?", model.RoleRestaurant).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
