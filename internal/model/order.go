package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is a flat status enum. There is no ordering restriction between
// states and terminal states are not protected from further transitions;
// validation only rejects values outside the set.
type OrderStatus string

const (
	StatusNew           OrderStatus = "New"
	StatusOrderReceived OrderStatus = "Order Received"
	StatusPreparing     OrderStatus = "Preparing"
	StatusOnTheWay      OrderStatus = "On the Way"
	StatusPickupReady   OrderStatus = "Pick-up Ready"
	StatusDelivered     OrderStatus = "Delivered"
	StatusPickedUp      OrderStatus = "Picked Up"
	StatusCancelled     OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	StatusNew,
	StatusOrderReceived,
	StatusPreparing,
	StatusOnTheWay,
	StatusPickupReady,
	StatusDelivered,
	StatusPickedUp,
	StatusCancelled,
}

// Valid reports whether s is one of the allowed order statuses.
func (s OrderStatus) Valid() bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrderStatuses returns the full allowed status set.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// Order is readable by the customer who placed it and the restaurant that
// received it; status is mutated only by the restaurant.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerID      uint            `json:"customer_id" gorm:"not null;index"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null;index"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	DeliveryAddress string          `json:"delivery_address" gorm:"size:255"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'New';index"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Foreign keys: an order referencing an unknown customer or restaurant
	// violates the schema and rolls the enclosing transaction back.
	Customer   *User `json:"-" gorm:"foreignKey:CustomerID"`
	Restaurant *User `json:"-" gorm:"foreignKey:RestaurantID"`

	// Joined from users on reads.
	CustomerName   string `json:"customer_name,omitempty" gorm:"->;-:migration"`
	RestaurantName string `json:"restaurant_name,omitempty" gorm:"->;-:migration"`
}

// OrderItem is created atomically with its Order and never mutated afterward.
// Price is a snapshot taken at order time, decoupled from later dish price
// changes.
type OrderItem struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	OrderID  uint            `json:"order_id" gorm:"not null;index"`
	DishID   uint            `json:"dish_id" gorm:"not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`

	// Foreign key: an item referencing an unknown dish violates the schema
	// and rolls the enclosing transaction back.
	Dish *Dish `json:"-" gorm:"foreignKey:DishID"`

	// Joined from dishes on reads.
	Name        string `json:"name,omitempty" gorm:"->;-:migration"`
	Description string `json:"description,omitempty" gorm:"->;-:migration"`
	Category    string `json:"category,omitempty" gorm:"->;-:migration"`
}
