package main

import (
	"log"
	"net/http"
	"os"

	_ "munchly/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"munchly/internal/cache"
	"munchly/internal/config"
	"munchly/internal/db"
	"munchly/internal/errors"
	"munchly/internal/handler"
	"munchly/internal/model"
	"munchly/internal/repository"
	"munchly/internal/router"
	"munchly/internal/service"
	"munchly/internal/session"
	"munchly/internal/upload"
)

// @title Munchly API
// @version 1.0
// @description Food ordering API: customers browse restaurants and place orders, restaurants manage their menu and fulfil them. Authentication is a server-side session cookie.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	// Money fields render as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errors.HTTPErrorHandler(cfg.IsProduction())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.OrderItem{},
			&model.Order{},
			&model.Favorite{},
			&model.Dish{},
			&model.CustomerProfile{},
			&model.RestaurantProfile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CustomerProfile{},
		&model.RestaurantProfile{},
		&model.Dish{},
		&model.Order{},
		&model.OrderItem{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := session.NewStore(cacheClient)

	uploads, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	customerProfileRepo := repository.NewCustomerProfileRepository(gormDB)
	restaurantProfileRepo := repository.NewRestaurantProfileRepository(gormDB)
	dishRepo := repository.NewDishRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, customerProfileRepo, restaurantProfileRepo)
	customerService := service.NewCustomerService(customerProfileRepo)
	restaurantService := service.NewRestaurantService(userRepo, restaurantProfileRepo, dishRepo)
	orderService := service.NewOrderService(orderRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.IsProduction())
	publicHandler := handler.NewPublicHandler(restaurantService)
	customerHandler := handler.NewCustomerHandler(customerService, orderService, uploads)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService, orderService, uploads)
	orderHandler := handler.NewOrderHandler(orderService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		authHandler,
		publicHandler,
		customerHandler,
		restaurantHandler,
		orderHandler,
		favoriteHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
