package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerProfile holds contact details for a customer, one-to-one with User.
// Created lazily on first access when missing.
type CustomerProfile struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Phone          string    `json:"phone" gorm:"size:50"`
	Address        string    `json:"address" gorm:"size:255"`
	Country        string    `json:"country" gorm:"size:100"`
	State          string    `json:"state" gorm:"size:100"`
	City           string    `json:"city" gorm:"size:100"`
	ProfilePicture string    `json:"profile_picture" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined from users on reads, not persisted here.
	Name  string `json:"name" gorm:"->;-:migration"`
	Email string `json:"email" gorm:"->;-:migration"`
}

// RestaurantProfile holds display and operational fields for a restaurant,
// one-to-one with User. Created lazily on first access when missing; mutated
// via partial-field updates.
type RestaurantProfile struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Location    string          `json:"location" gorm:"size:255"`
	Cuisine     string          `json:"cuisine" gorm:"size:100"`
	OpenTime    string          `json:"open_time" gorm:"size:20"`
	CloseTime   string          `json:"close_time" gorm:"size:20"`
	DeliveryFee decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2);default:0"`
	MinOrder    decimal.Decimal `json:"min_order" gorm:"type:decimal(10,2);default:0"`
	Image       string          `json:"image" gorm:"size:255"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Joined from users on reads, not persisted here.
	Name  string `json:"name" gorm:"->;-:migration"`
	Email string `json:"email" gorm:"->;-:migration"`
}
