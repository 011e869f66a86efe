package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrDishNotFound is returned when a dish is not found.
	ErrDishNotFound = errors.New("dish not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrForbidden is returned on role or ownership violations.
	ErrForbidden = errors.New("unauthorized access to this resource")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when signing up with an existing email.
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrInvalidStatus is returned when an order status is outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status value")
	// ErrEmptyOrder is returned when placing an order with no items.
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// ErrInvalidOrderItem is returned when an item has a bad quantity or price.
	ErrInvalidOrderItem = errors.New("invalid order item")
	// ErrInvalidTotal is returned when the order total is missing or negative.
	ErrInvalidTotal = errors.New("invalid total price")
	// ErrWrongAccountType is returned when logging in through the wrong role's option.
	ErrWrongAccountType = errors.New("invalid account type for this login option")
	// ErrMissingRestaurantFields is returned when a restaurant signs up without location or cuisine.
	ErrMissingRestaurantFields = errors.New("location and cuisine are required for restaurants")
)

// ErrorResponse is the JSON error body returned to clients.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MapToHTTP maps domain errors to echo HTTP errors with {message} bodies.
func MapToHTTP(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrDishNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrFavoriteNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrWrongAccountType):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrEmptyOrder),
		errors.Is(err, ErrInvalidOrderItem),
		errors.Is(err, ErrInvalidTotal),
		errors.Is(err, ErrMissingRestaurantFields):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// HTTPErrorHandler returns an echo error handler that renders every error as
// {message}. In production, internal error detail is replaced with a generic
// message so nothing leaks to clients.
func HTTPErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		msg := fmt.Sprintf("%v", he.Message)
		if he.Code >= http.StatusInternalServerError && production {
			msg = "Something went wrong. Please try again."
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = c.JSON(he.Code, ErrorResponse{Message: msg})
	}
}
