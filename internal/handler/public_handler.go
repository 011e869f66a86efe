package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"munchly/internal/errors"
	"munchly/internal/service"
)

// PublicHandler handles the unauthenticated browse endpoints.
type PublicHandler struct {
	restaurantService service.RestaurantService
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(restaurantService service.RestaurantService) *PublicHandler {
	return &PublicHandler{restaurantService: restaurantService}
}

// ListRestaurants godoc
// @Summary List all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} model.RestaurantProfile
// @Router /restaurants [get]
func (h *PublicHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantService.ListRestaurants(c.Request().Context())
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get one restaurant's public profile
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} model.RestaurantProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id} [get]
func (h *PublicHandler) GetRestaurant(c echo.Context) error {
	restaurantID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.restaurantService.GetRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

// GetMenu godoc
// @Summary Get a restaurant's menu
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} model.Dish
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id}/menu [get]
func (h *PublicHandler) GetMenu(c echo.Context) error {
	restaurantID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	dishes, err := h.restaurantService.GetMenu(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, dishes)
}
