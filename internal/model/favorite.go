package model

import "time"

// Favorite joins a customer to a restaurant. The pair is unique; adds and
// removes are idempotent at the service layer.
type Favorite struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customer_id" gorm:"not null;uniqueIndex:idx_customer_restaurant"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_customer_restaurant"`
	CreatedAt    time.Time `json:"created_at"`

	// Joined from users/restaurant_profiles on reads.
	RestaurantName string `json:"restaurant_name" gorm:"->;-:migration"`
	Cuisine        string `json:"cuisine" gorm:"->;-:migration"`
	Image          string `json:"image" gorm:"->;-:migration"`
}
