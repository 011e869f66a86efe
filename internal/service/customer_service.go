package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/repository"
)

// UpdateCustomerProfileInput is a partial-update record: nil fields are left
// untouched.
type UpdateCustomerProfileInput struct {
	Phone   *string
	Address *string
	Country *string
	State   *string
	City    *string
}

// CustomerService handles customer self-service operations.
type CustomerService interface {
	GetProfile(ctx context.Context, userID uint) (*model.CustomerProfile, error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateCustomerProfileInput) error
	UpdateProfilePicture(ctx context.Context, userID uint, picturePath string) error
}

type customerService struct {
	profiles repository.CustomerProfileRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(profiles repository.CustomerProfileRepository) CustomerService {
	return &customerService{profiles: profiles}
}

// GetProfile returns the customer's profile, creating an empty one on first
// access if missing.
func (s *customerService) GetProfile(ctx context.Context, userID uint) (*model.CustomerProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find customer profile: %w", err)
	}

	if err := s.profiles.Create(ctx, &model.CustomerProfile{UserID: userID}); err != nil {
		return nil, fmt.Errorf("create customer profile: %w", err)
	}
	profile, err = s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find customer profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies the provided fields only.
func (s *customerService) UpdateProfile(ctx context.Context, userID uint, in UpdateCustomerProfileInput) error {
	if _, err := s.profiles.FindByUserID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProfileNotFound
		}
		return fmt.Errorf("find customer profile: %w", err)
	}

	fields := map[string]interface{}{}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.Country != nil {
		fields["country"] = *in.Country
	}
	if in.State != nil {
		fields["state"] = *in.State
	}
	if in.City != nil {
		fields["city"] = *in.City
	}

	if err := s.profiles.Update(ctx, userID, fields); err != nil {
		return fmt.Errorf("update customer profile: %w", err)
	}
	return nil
}

// UpdateProfilePicture stores the public path of an uploaded picture.
func (s *customerService) UpdateProfilePicture(ctx context.Context, userID uint, picturePath string) error {
	if _, err := s.profiles.FindByUserID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProfileNotFound
		}
		return fmt.Errorf("find customer profile: %w", err)
	}

	if err := s.profiles.Update(ctx, userID, map[string]interface{}{"profile_picture": picturePath}); err != nil {
		return fmt.Errorf("update profile picture: %w", err)
	}
	return nil
}
