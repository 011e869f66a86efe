package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish belongs to one restaurant (RestaurantID is the owning user id).
// Created, updated and deleted only by that restaurant.
type Dish struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     string          `json:"category" gorm:"size:100"`
	Image        string          `json:"image" gorm:"size:255"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
