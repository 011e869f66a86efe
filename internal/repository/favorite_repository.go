package repository

import (
	"context"

	"gorm.io/gorm"

	"munchly/internal/model"
)

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	Delete(ctx context.Context, customerID, restaurantID uint) (bool, error)
	Exists(ctx context.Context, customerID, restaurantID uint) (bool, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]model.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create creates a new favorite pair.
func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// Delete removes a favorite pair, reporting whether a row was deleted.
func (r *favoriteRepository) Delete(ctx context.Context, customerID, restaurantID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND restaurant_id = ?", customerID, restaurantID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether the pair is already a favorite.
func (r *favoriteRepository) Exists(ctx context.Context, customerID, restaurantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("customer_id = ? AND restaurant_id = ?", customerID, restaurantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByCustomerID finds a customer's favorites joined with restaurant details.
func (r *favoriteRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.WithContext(ctx).
		Select("favorites.*, users.name AS restaurant_name, restaurant_profiles.cuisine AS cuisine, restaurant_profiles.image AS image").
		Joins("JOIN users ON users.id = favorites.restaurant_id").
		Joins("LEFT JOIN restaurant_profiles ON restaurant_profiles.user_id = favorites.restaurant_id").
		Where("favorites.customer_id = ?", customerID).
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
