package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"munchly/internal/config"
	"munchly/internal/handler"
	"munchly/internal/model"
	"munchly/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions session.Store,
	authHandler *handler.AuthHandler,
	publicHandler *handler.PublicHandler,
	customerHandler *handler.CustomerHandler,
	restaurantHandler *handler.RestaurantHandler,
	orderHandler *handler.OrderHandler,
	favoriteHandler *handler.FavoriteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api", session.Authenticate(sessions))

	// Session lifecycle
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/current-user", authHandler.CurrentUser)

	// Public browse
	api.GET("/restaurants", publicHandler.ListRestaurants)
	api.GET("/restaurants/:id", publicHandler.GetRestaurant)
	api.GET("/restaurants/:id/menu", publicHandler.GetMenu)

	// Restaurant self-service
	restaurant := api.Group("/restaurant", session.RequireRole(model.RoleRestaurant))
	restaurant.GET("/profile", restaurantHandler.GetProfile)
	restaurant.PUT("/profile", restaurantHandler.UpdateProfile)
	restaurant.POST("/profile/image", restaurantHandler.UploadImage)
	restaurant.GET("/dishes", restaurantHandler.ListDishes)
	restaurant.POST("/dishes", restaurantHandler.AddDish)
	restaurant.PUT("/dishes/:id", restaurantHandler.UpdateDish)
	restaurant.DELETE("/dishes/:id", restaurantHandler.DeleteDish)
	restaurant.GET("/orders", restaurantHandler.ListOrders)
	restaurant.PUT("/orders/:id/status", restaurantHandler.UpdateOrderStatus)

	// Customer self-service
	customer := api.Group("/customer", session.RequireRole(model.RoleCustomer))
	customer.GET("/profile", customerHandler.GetProfile)
	customer.PUT("/profile", customerHandler.UpdateProfile)
	customer.POST("/profile/picture", customerHandler.UploadProfilePicture)
	customer.GET("/orders", customerHandler.ListOrders)
	customer.POST("/orders", customerHandler.PlaceOrder)

	favorites := api.Group("/favorites", session.RequireRole(model.RoleCustomer))
	favorites.GET("", favoriteHandler.List)
	favorites.POST("/:restaurantId", favoriteHandler.Add)
	favorites.DELETE("/:restaurantId", favoriteHandler.Remove)
	favorites.GET("/:restaurantId/check", favoriteHandler.Check)

	// Shared read, gated by ownership in the service
	api.GET("/orders/:id", orderHandler.GetOrder, session.RequireAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
