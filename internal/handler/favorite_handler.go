package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"munchly/internal/errors"
	"munchly/internal/service"
	"munchly/internal/session"
)

// FavoriteHandler handles a customer's favorite restaurants.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List godoc
// @Summary List favorite restaurants
// @Tags favorites
// @Produce json
// @Success 200 {array} model.Favorite
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	favorites, err := h.favoriteService.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// Add godoc
// @Summary Add a restaurant to favorites (idempotent)
// @Tags favorites
// @Produce json
// @Param restaurantId path int true "Restaurant ID"
// @Success 201 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites/{restaurantId} [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Add(c.Request().Context(), identity.UserID, restaurantID); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "Restaurant added to favorites"})
}

// Remove godoc
// @Summary Remove a restaurant from favorites
// @Tags favorites
// @Produce json
// @Param restaurantId path int true "Restaurant ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites/{restaurantId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.Request().Context(), identity.UserID, restaurantID); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Restaurant removed from favorites"})
}

// Check godoc
// @Summary Check whether a restaurant is a favorite
// @Tags favorites
// @Produce json
// @Param restaurantId path int true "Restaurant ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites/{restaurantId}/check [get]
func (h *FavoriteHandler) Check(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request().Context(), identity.UserID, restaurantID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"isFavorite": isFavorite})
}
