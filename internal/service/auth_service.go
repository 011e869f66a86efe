package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/repository"
)

const bcryptCost = 10

// SignupInput carries the signup form. Location and cuisine are required for
// restaurants; phone and owner name are optional extras.
type SignupInput struct {
	Name      string
	Email     string
	Password  string
	Role      model.Role
	Phone     string
	Location  string
	Cuisine   string
	OwnerName string
}

// AuthService handles signup and credential verification. Session issuance is
// the HTTP layer's job.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Login(ctx context.Context, email, password string, role model.Role) (*model.User, error)
}

type authService struct {
	userRepo           repository.UserRepository
	customerProfiles   repository.CustomerProfileRepository
	restaurantProfiles repository.RestaurantProfileRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	customerProfiles repository.CustomerProfileRepository,
	restaurantProfiles repository.RestaurantProfileRepository,
) AuthService {
	return &authService{
		userRepo:           userRepo,
		customerProfiles:   customerProfiles,
		restaurantProfiles: restaurantProfiles,
	}
}

// Signup creates a user with a hashed password and its role profile.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if in.Role == model.RoleRestaurant && (in.Location == "" || in.Cuisine == "") {
		return nil, errors.ErrMissingRestaurantFields
	}

	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         in.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	switch in.Role {
	case model.RoleCustomer:
		profile := &model.CustomerProfile{UserID: user.ID, Phone: in.Phone}
		if err := s.customerProfiles.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("create customer profile: %w", err)
		}
	case model.RoleRestaurant:
		profile := &model.RestaurantProfile{
			UserID:   user.ID,
			Location: in.Location,
			Cuisine:  in.Cuisine,
		}
		if in.OwnerName != "" {
			profile.Description = "Owned by " + in.OwnerName
		}
		if err := s.restaurantProfiles.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("create restaurant profile: %w", err)
		}
	}

	return user, nil
}

// Login verifies credentials and, when a role is given, that the account is
// of that type. A wrong email and a wrong password are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	if role != "" && user.Role != role {
		return nil, errors.ErrWrongAccountType
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}
