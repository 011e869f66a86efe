package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"munchly/internal/config"
	"munchly/internal/db"
	"munchly/internal/model"
	"munchly/internal/repository"
)

type seedRestaurant struct {
	name        string
	email       string
	description string
	location    string
	cuisine     string
	openTime    string
	closeTime   string
	deliveryFee string
	minOrder    string
	dishes      []seedDish
}

type seedDish struct {
	name        string
	description string
	price       string
	category    string
}

var restaurants = []seedRestaurant{
	{
		name:        "Bella Napoli",
		email:       "bella@example.com",
		description: "Wood-fired pizza and fresh pasta",
		location:    "12 Via Roma, Downtown",
		cuisine:     "Italian",
		openTime:    "11:00",
		closeTime:   "23:00",
		deliveryFee: "2.99",
		minOrder:    "10.00",
		dishes: []seedDish{
			{"Margherita", "Tomato, mozzarella, basil", "8.99", "Pizza"},
			{"Carbonara", "Guanciale, pecorino, egg yolk", "11.50", "Pasta"},
			{"Tiramisu", "Classic mascarpone dessert", "5.50", "Dessert"},
		},
	},
	{
		name:        "Tokyo Table",
		email:       "tokyo@example.com",
		description: "Sushi and ramen made to order",
		location:    "88 Cherry Blossom Ave",
		cuisine:     "Japanese",
		openTime:    "12:00",
		closeTime:   "22:00",
		deliveryFee: "3.49",
		minOrder:    "15.00",
		dishes: []seedDish{
			{"Salmon Nigiri", "Two pieces, fresh daily", "4.99", "Sushi"},
			{"Tonkotsu Ramen", "Rich pork broth, chashu, egg", "12.99", "Ramen"},
		},
	},
	{
		name:        "Taco Loco",
		email:       "taco@example.com",
		description: "Street tacos and burritos",
		location:    "5 Mercado Street",
		cuisine:     "Mexican",
		openTime:    "10:00",
		closeTime:   "21:00",
		deliveryFee: "1.99",
		minOrder:    "8.00",
		dishes: []seedDish{
			{"Carne Asada Taco", "Grilled steak, onion, cilantro", "3.50", "Tacos"},
			{"Chicken Burrito", "Rice, beans, salsa verde", "9.25", "Burritos"},
			{"Churros", "With chocolate dip", "4.00", "Dessert"},
		},
	},
}

const (
	seedPassword      = "password123"
	demoCustomerName  = "Demo Customer"
	demoCustomerEmail = "customer@example.com"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CustomerProfile{},
		&model.RestaurantProfile{},
		&model.Dish{},
		&model.Order{},
		&model.OrderItem{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	customerProfileRepo := repository.NewCustomerProfileRepository(gormDB)
	restaurantProfileRepo := repository.NewRestaurantProfileRepository(gormDB)
	dishRepo := repository.NewDishRepository(gormDB)

	created, skipped := 0, 0
	for _, r := range restaurants {
		fresh, err := seedOneRestaurant(ctx, userRepo, restaurantProfileRepo, dishRepo, r)
		if err != nil {
			log.Fatalf("Failed to seed restaurant %s: %v", r.name, err)
		}
		if fresh {
			created++
		} else {
			skipped++
		}
	}

	customerCreated, err := seedCustomer(ctx, userRepo, customerProfileRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo customer: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Restaurants created: %d", created)
	log.Printf("  - Restaurants already present: %d", skipped)
	if customerCreated {
		log.Printf("  - Demo customer created: %s / %s", demoCustomerEmail, seedPassword)
	} else {
		log.Printf("  - Demo customer already present")
	}
}

// seedOneRestaurant creates the restaurant account, profile, and dishes unless
// a user with the same email already exists.
func seedOneRestaurant(
	ctx context.Context,
	users repository.UserRepository,
	profiles repository.RestaurantProfileRepository,
	dishes repository.DishRepository,
	r seedRestaurant,
) (bool, error) {
	existing, err := users.FindByEmail(ctx, r.email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("check %s: %w", r.email, err)
	}
	if existing != nil {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         r.name,
		Email:        r.email,
		PasswordHash: string(hashed),
		Role:         model.RoleRestaurant,
	}
	if err := users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}

	deliveryFee, _ := decimal.NewFromString(r.deliveryFee)
	minOrder, _ := decimal.NewFromString(r.minOrder)
	profile := &model.RestaurantProfile{
		UserID:      user.ID,
		Description: r.description,
		Location:    r.location,
		Cuisine:     r.cuisine,
		OpenTime:    r.openTime,
		CloseTime:   r.closeTime,
		DeliveryFee: deliveryFee,
		MinOrder:    minOrder,
	}
	if err := profiles.Create(ctx, profile); err != nil {
		return false, fmt.Errorf("create profile: %w", err)
	}

	for _, d := range r.dishes {
		price, _ := decimal.NewFromString(d.price)
		dish := &model.Dish{
			RestaurantID: user.ID,
			Name:         d.name,
			Description:  d.description,
			Price:        price,
			Category:     d.category,
			IsAvailable:  true,
		}
		if err := dishes.Create(ctx, dish); err != nil {
			return false, fmt.Errorf("create dish %s: %w", d.name, err)
		}
	}

	return true, nil
}

// seedCustomer creates a demo customer account for manual testing.
func seedCustomer(
	ctx context.Context,
	users repository.UserRepository,
	profiles repository.CustomerProfileRepository,
) (bool, error) {
	existing, err := users.FindByEmail(ctx, demoCustomerEmail)
	if err != nil && err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("check %s: %w", demoCustomerEmail, err)
	}
	if existing != nil {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         demoCustomerName,
		Email:        demoCustomerEmail,
		PasswordHash: string(hashed),
		Role:         model.RoleCustomer,
	}
	if err := users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}

	profile := &model.CustomerProfile{UserID: user.ID, Phone: "555-0100"}
	if err := profiles.Create(ctx, profile); err != nil {
		return false, fmt.Errorf("create profile: %w", err)
	}

	return true, nil
}
