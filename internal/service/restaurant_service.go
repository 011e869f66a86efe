package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/repository"
)

const placeholderField = "Not provided"

// UpdateRestaurantProfileInput is a partial-update record: nil fields are
// left untouched.
type UpdateRestaurantProfileInput struct {
	Description *string
	Location    *string
	Cuisine     *string
	OpenTime    *string
	CloseTime   *string
	DeliveryFee *decimal.Decimal
	MinOrder    *decimal.Decimal
}

// DishInput carries the dish form. Image is the stored public path, empty
// when no new image was uploaded.
type DishInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	IsAvailable bool
}

// RestaurantService handles restaurant self-service and the public browse
// surface.
type RestaurantService interface {
	GetProfile(ctx context.Context, userID uint) (*model.RestaurantProfile, error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateRestaurantProfileInput) error
	UpdateImage(ctx context.Context, userID uint, imagePath string) error

	ListRestaurants(ctx context.Context) ([]model.RestaurantProfile, error)
	GetRestaurant(ctx context.Context, restaurantID uint) (*model.RestaurantProfile, error)
	GetMenu(ctx context.Context, restaurantID uint) ([]model.Dish, error)

	ListDishes(ctx context.Context, restaurantID uint) ([]model.Dish, error)
	AddDish(ctx context.Context, restaurantID uint, in DishInput) (*model.Dish, error)
	UpdateDish(ctx context.Context, restaurantID, dishID uint, in DishInput) (*model.Dish, error)
	DeleteDish(ctx context.Context, restaurantID, dishID uint) error
}

type restaurantService struct {
	userRepo repository.UserRepository
	profiles repository.RestaurantProfileRepository
	dishes   repository.DishRepository
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(
	userRepo repository.UserRepository,
	profiles repository.RestaurantProfileRepository,
	dishes repository.DishRepository,
) RestaurantService {
	return &restaurantService{
		userRepo: userRepo,
		profiles: profiles,
		dishes:   dishes,
	}
}

// GetProfile returns the restaurant's own profile, creating a placeholder
// one on first access if missing.
func (s *restaurantService) GetProfile(ctx context.Context, userID uint) (*model.RestaurantProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find restaurant profile: %w", err)
	}

	created := &model.RestaurantProfile{
		UserID:   userID,
		Location: placeholderField,
		Cuisine:  placeholderField,
	}
	if err := s.profiles.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create restaurant profile: %w", err)
	}
	profile, err = s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find restaurant profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies the provided fields only, creating the profile first
// if it does not exist yet.
func (s *restaurantService) UpdateProfile(ctx context.Context, userID uint, in UpdateRestaurantProfileInput) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Cuisine != nil {
		fields["cuisine"] = *in.Cuisine
	}
	if in.OpenTime != nil {
		fields["open_time"] = *in.OpenTime
	}
	if in.CloseTime != nil {
		fields["close_time"] = *in.CloseTime
	}
	if in.DeliveryFee != nil {
		fields["delivery_fee"] = *in.DeliveryFee
	}
	if in.MinOrder != nil {
		fields["min_order"] = *in.MinOrder
	}

	if err := s.profiles.Update(ctx, userID, fields); err != nil {
		return fmt.Errorf("update restaurant profile: %w", err)
	}
	return nil
}

// UpdateImage stores the public path of an uploaded restaurant image,
// creating the profile first if needed.
func (s *restaurantService) UpdateImage(ctx context.Context, userID uint, imagePath string) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}

	if err := s.profiles.Update(ctx, userID, map[string]interface{}{"image": imagePath}); err != nil {
		return fmt.Errorf("update restaurant image: %w", err)
	}
	return nil
}

// ListRestaurants returns every restaurant for public browsing.
func (s *restaurantService) ListRestaurants(ctx context.Context) ([]model.RestaurantProfile, error) {
	return s.profiles.ListAll(ctx)
}

// GetRestaurant returns a restaurant's public profile. The user must exist
// and carry the restaurant role.
func (s *restaurantService) GetRestaurant(ctx context.Context, restaurantID uint) (*model.RestaurantProfile, error) {
	user, err := s.userRepo.FindByID(ctx, restaurantID)
	if err != nil || user.Role != model.RoleRestaurant {
		return nil, errors.ErrRestaurantNotFound
	}

	profile, err := s.profiles.FindByUserID(ctx, restaurantID)
	if err != nil {
		return nil, errors.ErrRestaurantNotFound
	}
	return profile, nil
}

// GetMenu returns a restaurant's dishes for public browsing.
func (s *restaurantService) GetMenu(ctx context.Context, restaurantID uint) ([]model.Dish, error) {
	user, err := s.userRepo.FindByID(ctx, restaurantID)
	if err != nil || user.Role != model.RoleRestaurant {
		return nil, errors.ErrRestaurantNotFound
	}
	return s.dishes.FindByRestaurantID(ctx, restaurantID)
}

// ListDishes returns the restaurant's own dishes.
func (s *restaurantService) ListDishes(ctx context.Context, restaurantID uint) ([]model.Dish, error) {
	return s.dishes.FindByRestaurantID(ctx, restaurantID)
}

// AddDish creates a dish owned by the restaurant.
func (s *restaurantService) AddDish(ctx context.Context, restaurantID uint, in DishInput) (*model.Dish, error) {
	dish := &model.Dish{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		Image:        in.Image,
		IsAvailable:  in.IsAvailable,
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}
	return dish, nil
}

// UpdateDish modifies a dish after checking it belongs to the caller. An
// absent dish is NotFound before ownership is evaluated. When no new image
// is provided the existing one is kept.
func (s *restaurantService) UpdateDish(ctx context.Context, restaurantID, dishID uint, in DishInput) (*model.Dish, error) {
	dish, err := s.dishes.FindByID(ctx, dishID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDishNotFound
		}
		return nil, fmt.Errorf("find dish: %w", err)
	}
	if dish.RestaurantID != restaurantID {
		return nil, errors.ErrForbidden
	}

	dish.Name = in.Name
	dish.Description = in.Description
	dish.Price = in.Price
	dish.Category = in.Category
	dish.IsAvailable = in.IsAvailable
	if in.Image != "" {
		dish.Image = in.Image
	}

	if err := s.dishes.Update(ctx, dish); err != nil {
		return nil, fmt.Errorf("update dish: %w", err)
	}
	return dish, nil
}

// DeleteDish removes a dish after checking ownership.
func (s *restaurantService) DeleteDish(ctx context.Context, restaurantID, dishID uint) error {
	dish, err := s.dishes.FindByID(ctx, dishID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrDishNotFound
		}
		return fmt.Errorf("find dish: %w", err)
	}
	if dish.RestaurantID != restaurantID {
		return errors.ErrForbidden
	}

	if err := s.dishes.Delete(ctx, dishID); err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	return nil
}
