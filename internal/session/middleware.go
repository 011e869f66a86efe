package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"munchly/internal/model"
)

// CookieName is the opaque session cookie.
const CookieName = "session_id"

const identityContextKey = "munchly.identity"

// NewCookie builds the session cookie with the attributes the frontend
// expects: httpOnly, SameSite Lax, 24h expiry, secure only in production.
func NewCookie(sessionID string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie returns a cookie that clears the session on the client.
func ExpiredCookie(secure bool) *http.Cookie {
	c := NewCookie("", secure)
	c.MaxAge = -1
	return c
}

// Authenticate resolves the session cookie into an Identity and attaches it
// to the request context. A missing or stale cookie is not an error here;
// RequireAuth and RequireRole decide whether anonymity is acceptable.
func Authenticate(store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom extracts the caller identity attached by Authenticate.
func IdentityFrom(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*Identity)
	return identity, ok && identity != nil
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := IdentityFrom(c); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in.")
		}
		return next(c)
	}
}

// RequireRole rejects unauthenticated requests with 401 and wrong-role
// requests with 403. Checks short-circuit in that order.
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in.")
			}
			if identity.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. "+string(role)+" access only.")
			}
			return next(c)
		}
	}
}
