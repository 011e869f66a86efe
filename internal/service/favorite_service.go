package service

import (
	"context"
	"fmt"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/repository"
)

// FavoriteService handles a customer's favorite restaurants. Adds are
// idempotent; favoriting the same restaurant twice neither duplicates nor
// errors.
type FavoriteService interface {
	Add(ctx context.Context, customerID, restaurantID uint) error
	Remove(ctx context.Context, customerID, restaurantID uint) error
	List(ctx context.Context, customerID uint) ([]model.Favorite, error)
	IsFavorite(ctx context.Context, customerID, restaurantID uint) (bool, error)
}

type favoriteService struct {
	favorites repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favorites repository.FavoriteRepository) FavoriteService {
	return &favoriteService{favorites: favorites}
}

// Add marks a restaurant as favorite; a second call is a no-op.
func (s *favoriteService) Add(ctx context.Context, customerID, restaurantID uint) error {
	exists, err := s.favorites.Exists(ctx, customerID, restaurantID)
	if err != nil {
		return fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		return nil
	}

	favorite := &model.Favorite{CustomerID: customerID, RestaurantID: restaurantID}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove deletes the favorite pair.
func (s *favoriteService) Remove(ctx context.Context, customerID, restaurantID uint) error {
	removed, err := s.favorites.Delete(ctx, customerID, restaurantID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if !removed {
		return errors.ErrFavoriteNotFound
	}
	return nil
}

// List returns the customer's favorites with restaurant details.
func (s *favoriteService) List(ctx context.Context, customerID uint) ([]model.Favorite, error) {
	return s.favorites.FindByCustomerID(ctx, customerID)
}

// IsFavorite reports whether the restaurant is in the customer's favorites.
func (s *favoriteService) IsFavorite(ctx context.Context, customerID, restaurantID uint) (bool, error) {
	return s.favorites.Exists(ctx, customerID, restaurantID)
}
