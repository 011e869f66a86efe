package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"munchly/internal/errors"
	"munchly/internal/model"
)

func TestCustomerService_GetProfile(t *testing.T) {
	t.Run("existing profile returned", func(t *testing.T) {
		mockProfiles := new(MockCustomerProfileRepository)
		stored := &model.CustomerProfile{ID: 1, UserID: 7, Phone: "555-0100"}
		mockProfiles.On("FindByUserID", mock.Anything, uint(7)).Return(stored, nil)

		service := NewCustomerService(mockProfiles)
		profile, err := service.GetProfile(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, stored, profile)
	})

	t.Run("missing profile is created empty", func(t *testing.T) {
		mockProfiles := new(MockCustomerProfileRepository)
		created := &model.CustomerProfile{ID: 2, UserID: 7}
		mockProfiles.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound).Once()
		mockProfiles.On("Create", mock.Anything, mock.MatchedBy(func(p *model.CustomerProfile) bool {
			return p.UserID == 7
		})).Return(nil)
		mockProfiles.On("FindByUserID", mock.Anything, uint(7)).Return(created, nil).Once()

		service := NewCustomerService(mockProfiles)
		profile, err := service.GetProfile(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, created, profile)
		mockProfiles.AssertExpectations(t)
	})
}

func TestCustomerService_UpdateProfile(t *testing.T) {
	t.Run("only provided fields are written", func(t *testing.T) {
		mockProfiles := new(MockCustomerProfileRepository)
		mockProfiles.On("FindByUserID", mock.Anything, uint(7)).Return(&model.CustomerProfile{UserID: 7}, nil)

		city := "Springfield"
		phone := "555-0200"
		mockProfiles.On("Update", mock.Anything, uint(7), map[string]interface{}{
			"city":  city,
			"phone": phone,
		}).Return(nil)

		service := NewCustomerService(mockProfiles)
		err := service.UpdateProfile(context.Background(), 7, UpdateCustomerProfileInput{
			City:  &city,
			Phone: &phone,
		})

		assert.NoError(t, err)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("missing profile reports not found", func(t *testing.T) {
		mockProfiles := new(MockCustomerProfileRepository)
		mockProfiles.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCustomerService(mockProfiles)
		phone := "555-0200"
		err := service.UpdateProfile(context.Background(), 7, UpdateCustomerProfileInput{Phone: &phone})

		assert.ErrorIs(t, err, errors.ErrProfileNotFound)
		mockProfiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCustomerService_UpdateProfilePicture(t *testing.T) {
	mockProfiles := new(MockCustomerProfileRepository)
	mockProfiles.On("FindByUserID", mock.Anything, uint(7)).Return(&model.CustomerProfile{UserID: 7}, nil)
	mockProfiles.On("Update", mock.Anything, uint(7), map[string]interface{}{
		"profile_picture": "/uploads/image-123.png",
	}).Return(nil)

	service := NewCustomerService(mockProfiles)
	err := service.UpdateProfilePicture(context.Background(), 7, "/uploads/image-123.png")

	assert.NoError(t, err)
	mockProfiles.AssertExpectations(t)
}
