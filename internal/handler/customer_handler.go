package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"munchly/internal/errors"
	"munchly/internal/service"
	"munchly/internal/session"
	"munchly/internal/upload"
)

// CustomerHandler handles customer self-service endpoints. All routes are
// behind the customer role gate.
type CustomerHandler struct {
	customerService service.CustomerService
	orderService    service.OrderService
	uploads         *upload.Saver
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService, orderService service.OrderService, uploads *upload.Saver) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		orderService:    orderService,
		uploads:         uploads,
	}
}

// UpdateProfileRequest is a partial update; absent fields stay unchanged.
type UpdateProfileRequest struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Country *string `json:"country"`
	State   *string `json:"state"`
	City    *string `json:"city"`
}

// OrderItemRequest is one cart line at checkout. Price is the snapshot the
// client saw, stored as-is.
type OrderItemRequest struct {
	DishID   uint            `json:"dishId" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
}

// PlaceOrderRequest represents checkout.
type PlaceOrderRequest struct {
	RestaurantID    uint               `json:"restaurantId" validate:"required"`
	DeliveryAddress string             `json:"deliveryAddress"`
	TotalPrice      decimal.Decimal    `json:"totalPrice"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrderResponse carries the new order's identifier.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"orderId"`
}

// GetProfile godoc
// @Summary Get the customer's profile
// @Tags customer
// @Produce json
// @Success 200 {object} model.CustomerProfile
// @Failure 401 {object} errors.ErrorResponse
// @Router /customer/profile [get]
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	profile, err := h.customerService.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the customer's profile
// @Tags customer
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /customer/profile [put]
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.customerService.UpdateProfile(c.Request().Context(), identity.UserID, service.UpdateCustomerProfileInput{
		Phone:   req.Phone,
		Address: req.Address,
		Country: req.Country,
		State:   req.State,
		City:    req.City,
	})
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Profile updated successfully"})
}

// UploadProfilePicture godoc
// @Summary Upload a profile picture
// @Tags customer
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file (jpeg, png, gif, webp; max 5MB)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /customer/profile/picture [post]
func (h *CustomerHandler) UploadProfilePicture(c echo.Context) error {
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

	if err := h.customerService.UpdateProfilePicture(c.Request().Context(), identity.UserID, path); err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":        "Profile picture updated successfully",
		"profilePicture": path,
	})
}

// ListOrders godoc
// @Summary List the customer's orders, newest first
// @Tags customer
// @Produce json
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /customer/orders [get]
func (h *CustomerHandler) ListOrders(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	orders, err := h.orderService.ListCustomerOrders(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// PlaceOrder godoc
// @Summary Place a new order
// @Tags customer
// @Accept json
// @Produce json
// @Param request body PlaceOrderRequest true "Order data"
// @Success 201 {object} PlaceOrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /customer/orders [post]
func (h *CustomerHandler) PlaceOrder(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	// The total must be provided; it is trusted, not recomputed.
	if req.TotalPrice.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			DishID:   item.DishID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	orderID, err := h.orderService.PlaceOrder(c.Request().Context(), identity.UserID, req.RestaurantID, items, req.TotalPrice, req.DeliveryAddress)
	if err != nil {
		return errors.MapToHTTP(err)
	}

	return c.JSON(http.StatusCreated, PlaceOrderResponse{
		Message: "Order placed successfully",
		OrderID: orderID,
	})
}
