package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"munchly/internal/errors"
	"munchly/internal/model"
	"munchly/internal/service"
	"munchly/internal/session"
)

// AuthHandler handles the session lifecycle endpoints.
type AuthHandler struct {
	authService  service.AuthService
	sessions     session.Store
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. secureCookie should be true in
// production so the session cookie is only sent over HTTPS.
func NewAuthHandler(authService service.AuthService, sessions session.Store, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

// SignupRequest represents the signup form.
type SignupRequest struct {
	Name      string     `json:"name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=6"`
	Role      model.Role `json:"role" validate:"required,oneof=customer restaurant"`
	Phone     string     `json:"phone"`
	Location  string     `json:"location"`
	Cuisine   string     `json:"cuisine"`
	OwnerName string     `json:"ownerName"`
}

// LoginRequest represents the login form. Role is optional; when present the
// account type must match.
type LoginRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=customer restaurant"`
}

// LoginResponse carries the public user fields after a successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// CurrentUserResponse reports the session state.
type CurrentUserResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        uint       `json:"userId,omitempty"`
	UserRole      model.Role `json:"userRole,omitempty"`
}

// Signup godoc
// @Summary Register a new customer or restaurant account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	_, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Phone:     req.Phone,
		Location:  req.Location,
		Cuisine:   req.Cuisine,
		OwnerName: req.OwnerName,
	})
	if err != nil {
		return errors.MapToHTTP(err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary Log in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return errors.MapToHTTP(err)
	}

	sessionID, err := h.sessions.Create(c.Request().Context(), session.Identity{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return errors.MapToHTTP(err)
	}
	c.SetCookie(session.NewCookie(sessionID, h.secureCookie))

	return c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", User: user})
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = h.sessions.Delete(c.Request().Context(), cookie.Value)
	}
	c.SetCookie(session.ExpiredCookie(h.secureCookie))

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// CurrentUser godoc
// @Summary Report the current session state
// @Tags auth
// @Produce json
// @Success 200 {object} CurrentUserResponse
// @Router /auth/current-user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	identity, ok := session.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, CurrentUserResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, CurrentUserResponse{
		Authenticated: true,
		UserID:        identity.UserID,
		UserRole:      identity.Role,
	})
}
