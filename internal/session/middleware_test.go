package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"munchly/internal/model"
)

// stubStore returns a fixed identity for one known session ID.
type stubStore struct {
	sessionID string
	identity  Identity
}

func (s *stubStore) Create(ctx context.Context, identity Identity) (string, error) {
	return s.sessionID, nil
}

func (s *stubStore) Get(ctx context.Context, sessionID string) (*Identity, error) {
	if sessionID != s.sessionID {
		return nil, ErrSessionNotFound
	}
	identity := s.identity
	return &identity, nil
}

func (s *stubStore) Delete(ctx context.Context, sessionID string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	store := &stubStore{
		sessionID: "abc-123",
		identity:  Identity{UserID: 7, Role: model.RoleCustomer},
	}

	t.Run("valid cookie attaches identity", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "abc-123"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var got *Identity
		handler := Authenticate(store)(func(c echo.Context) error {
			got, _ = IdentityFrom(c)
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
		assert.NotNil(t, got)
		assert.Equal(t, uint(7), got.UserID)
		assert.Equal(t, model.RoleCustomer, got.Role)
	})

	t.Run("stale cookie proceeds anonymous", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "expired"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(store)(func(c echo.Context) error {
			_, ok := IdentityFrom(c)
			assert.False(t, ok)
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no cookie proceeds anonymous", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(store)(func(c echo.Context) error {
			_, ok := IdentityFrom(c)
			assert.False(t, ok)
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous is rejected with 401", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := RequireAuth(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(identityContextKey, &Identity{UserID: 7, Role: model.RoleCustomer})

		handler := RequireAuth(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		identity     *Identity
		requiredRole model.Role
		expectedCode int
	}{
		{
			name:         "matching role passes",
			identity:     &Identity{UserID: 9, Role: model.RoleRestaurant},
			requiredRole: model.RoleRestaurant,
			expectedCode: http.StatusOK,
		},
		{
			name:         "wrong role gets 403",
			identity:     &Identity{UserID: 7, Role: model.RoleCustomer},
			requiredRole: model.RoleRestaurant,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "anonymous gets 401 before the role check",
			identity:     nil,
			requiredRole: model.RoleRestaurant,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.identity != nil {
				c.Set(identityContextKey, tt.identity)
			}

			handler := RequireRole(tt.requiredRole)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				he, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, he.Code)
			}
		})
	}
}

func TestCookies(t *testing.T) {
	t.Run("session cookie attributes", func(t *testing.T) {
		c := NewCookie("abc-123", false)

		assert.Equal(t, CookieName, c.Name)
		assert.Equal(t, "abc-123", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, int(TTL.Seconds()), c.MaxAge)
	})

	t.Run("secure flag in production", func(t *testing.T) {
		assert.True(t, NewCookie("abc-123", true).Secure)
	})

	t.Run("expired cookie clears the session", func(t *testing.T) {
		c := ExpiredCookie(false)

		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	})
}
