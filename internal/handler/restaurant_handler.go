package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/service"
	"munchly/internal/session"
	"munchly/internal/upload"
)

// RestaurantHandler handles restaurant self-service endpoints. All routes
// are behind the restaurant role gate.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
	orderService      service.OrderService
	uploads           *upload.Saver
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(restaurantService service.RestaurantService, orderService service.OrderService, uploads *upload.Saver) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		orderService:      orderService,
		uploads:           uploads,
	}
}

// UpdateRestaurantProfileRequest is a partial update; absent fields stay
// unchanged.
type UpdateRestaurantProfileRequest struct {
	Description *string          `json:"description"`
	Location    *string          `json:"location"`
	Cuisine     *string          `json:"cuisine"`
	OpenTime    *string          `json:"openTime"`
	CloseTime   *string          `json:"closeTime"`
	DeliveryFee *decimal.Decimal `json:"deliveryFee"`
	MinOrder    *decimal.Decimal `json:"minOrder"`
}

// UpdateStatusRequest carries the new order status.
type UpdateStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required"`
}

// GetProfile godoc
// @Summary Get the restaurant's profile, creating it on first access
// @Tags restaurant
// @Produce json
// @Success 200 {object} model.RestaurantProfile
// @Failure 401 {object} errors.ErrorResponse
// @Router /restaurant/profile [get]
func (h *RestaurantHandler) GetProfile(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	profile, err := h.restaurantService.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the restaurant's profile
// @Tags restaurant
// @Accept json
// @Produce json
// @Param request body UpdateRestaurantProfileRequest true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /restaurant/profile [put]
func (h *RestaurantHandler) UpdateProfile(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	var req UpdateRestaurantProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.restaurantService.UpdateProfile(c.Request().Context(), identity.UserID, service.UpdateRestaurantProfileInput{
		Description: req.Description,
		Location:    req.Location,
		Cuisine:     req.Cuisine,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		DeliveryFee: req.DeliveryFee,
		MinOrder:    req.MinOrder,
	})
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Profile updated successfully"})
}

// UploadImage godoc
// @Summary Upload the restaurant's image
// @Tags restaurant
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file (jpeg, png, gif, webp; max 5MB)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /restaurant/profile/image [post]
func (h *RestaurantHandler) UploadImage(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image uploaded")
	}

	path, err := h.uploads.SaveImage(file, "image")
	if err != nil {
		if upload.IsRejected(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return errors.MapToHTTP(err)
	}

	if err := h.restaurantService.UpdateImage(c.Request().Context(), identity.UserID, path); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Restaurant image updated successfully",
		"image":   path,
	})
}

// ListDishes godoc
// @Summary List the restaurant's dishes
// @Tags restaurant
// @Produce json
// @Success 200 {array} model.Dish
// @Failure 401 {object} errors.ErrorResponse
// @Router /restaurant/dishes [get]
func (h *RestaurantHandler) ListDishes(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	dishes, err := h.restaurantService.ListDishes(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, dishes)
}

// AddDish godoc
// @Summary Add a dish to the menu
// @Tags restaurant
// @Accept mpfd
// @Produce json
// @Param name formData string true "Dish name"
// @Param description formData string true "Description"
// @Param price formData number true "Price"
// @Param category formData string true "Category"
// @Param image formData file false "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /restaurant/dishes [post]
func (h *RestaurantHandler) AddDish(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	in, err := h.dishInputFromForm(c, "")
	if err != nil {
		return err
	}

	dish, err := h.restaurantService.AddDish(c.Request().Context(), identity.UserID, *in)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Dish added successfully",
		"dishId":  dish.ID,
	})
}

// UpdateDish godoc
// @Summary Update an owned dish
// @Tags restaurant
// @Accept mpfd
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurant/dishes/{id} [put]
func (h *RestaurantHandler) UpdateDish(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	dishID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	in, err := h.dishInputFromForm(c, c.FormValue("isAvailable"))
	if err != nil {
		return err
	}

	if _, err := h.restaurantService.UpdateDish(c.Request().Context(), identity.UserID, dishID, *in); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Dish updated successfully"})
}

// DeleteDish godoc
// @Summary Delete an owned dish
// @Tags restaurant
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurant/dishes/{id} [delete]
func (h *RestaurantHandler) DeleteDish(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	dishID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.restaurantService.DeleteDish(c.Request().Context(), identity.UserID, dishID); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Dish deleted successfully"})
}

// ListOrders godoc
// @Summary List received orders, newest first
// @Tags restaurant
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /restaurant/orders [get]
func (h *RestaurantHandler) ListOrders(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	status := model.OrderStatus(c.QueryParam("status"))
	orders, err := h.orderService.ListRestaurantOrders(c.Request().Context(), identity.UserID, status)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Update the status of an owned order
// @Tags restaurant
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurant/orders/{id}/status [put]
func (h *RestaurantHandler) UpdateOrderStatus(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Status is required")
	}

	if err := h.orderService.UpdateStatus(c.Request().Context(), identity.UserID, orderID, req.Status); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Order status updated successfully"})
}

// dishInputFromForm reads the multipart dish form shared by add and update.
// isAvailableRaw is empty on add, where new dishes default to available.
func (h *RestaurantHandler) dishInputFromForm(c echo.Context, isAvailableRaw string) (*service.DishInput, error) {
	name := c.FormValue("name")
	description := c.FormValue("description")
	priceRaw := c.FormValue("price")
	category := c.FormValue("category")
	if name == "" || description == "" || priceRaw == "" || category == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil || price.IsNegative() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid price")
	}

	isAvailable := true
	if isAvailableRaw != "" {
		parsed, err := strconv.ParseBool(isAvailableRaw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid isAvailable value")
		}
		isAvailable = parsed
	}

	in := &service.DishInput{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		IsAvailable: isAvailable,
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.uploads.SaveImage(file, "image")
		if err != nil {
			if upload.IsRejected(err) {
				return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return nil, errors.MapToHTTP(err)
		}
		in.Image = path
	}

	return in, nil
}
