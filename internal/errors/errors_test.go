package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMapToHTTP(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrRestaurantNotFound, http.StatusNotFound},
		{ErrDishNotFound, http.StatusNotFound},
		{ErrOrderNotFound, http.StatusNotFound},
		{ErrFavoriteNotFound, http.StatusNotFound},
		{ErrForbidden, http.StatusForbidden},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrWrongAccountType, http.StatusUnauthorized},
		{ErrEmailTaken, http.StatusConflict},
		{ErrInvalidStatus, http.StatusBadRequest},
		{ErrEmptyOrder, http.StatusBadRequest},
		{ErrInvalidOrderItem, http.StatusBadRequest},
		{ErrInvalidTotal, http.StatusBadRequest},
		{ErrMissingRestaurantFields, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			he := MapToHTTP(tt.err)
			assert.Equal(t, tt.expectedCode, he.Code)
			assert.Equal(t, tt.err.Error(), he.Message)
		})
	}
}

func TestMapToHTTP_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("create order: %w", ErrEmptyOrder)
	he := MapToHTTP(wrapped)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHTTPErrorHandler(t *testing.T) {
	render := func(production bool, err error) (*httptest.ResponseRecorder, ErrorResponse) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		HTTPErrorHandler(production)(err, c)

		var body ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		return rec, body
	}

	t.Run("client errors keep their message", func(t *testing.T) {
		rec, body := render(true, echo.NewHTTPError(http.StatusNotFound, "order not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "order not found", body.Message)
	})

	t.Run("internal detail is hidden in production", func(t *testing.T) {
		rec, body := render(true, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong. Please try again.", body.Message)
	})

	t.Run("internal detail is visible in development", func(t *testing.T) {
		rec, body := render(false, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, assert.AnError.Error(), body.Message)
	})
}
