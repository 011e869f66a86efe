package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"munchly/internal/errors"
	"munchly/internal/service"
	"munchly/internal/session"
)

// OrderHandler handles the shared order read, gated by ownership.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrder godoc
// @Summary Get an order with its items
// @Description Readable by the customer who placed the order and the restaurant that received it.
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c echo.Context) error {
	identity, _ := session.IdentityFrom(c)

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), *identity, orderID)
	if err != nil {
		return errors.MapToHTTP(err)
	}
	return c.JSON(http.StatusOK, order)
}
