package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gaming-storefront/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminOnly(t *testing.T) {
	e := echo.New()
	h := AdminOnly(auth.NewStaticAllowList("admin@example.com"))(func(c echo.Context) error {
		return c.String(http.StatusOK, AdminIdentity(c))
	})

	t.Run("allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminIdentityHeader, "admin@example.com")
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))
		assert.Equal(t, "admin@example.com", rec.Body.String())
	})

	t.Run("denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminIdentityHeader, "intruder@example.com")
		rec := httptest.NewRecorder()

		err := h(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := h(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})
}
