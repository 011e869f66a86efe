package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the generic {message} success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// paramID parses a numeric path parameter, rejecting anything else with 400.
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}
