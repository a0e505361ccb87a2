package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/openmart/storegate/internal/authz"
	"github.com/openmart/storegate/internal/contexts"
)

func newProfileRouter(identity *authz.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if identity != nil {
		router.Use(func(c *gin.Context) {
			ctx := contexts.WithIdentity(c.Request.Context(), *identity)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	router.PUT("/api/users/:id", WithSelfOrAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func TestWithSelfOrAdmin(t *testing.T) {
	standard := &authz.Identity{ID: 7, Role: authz.Role{Type: "authenticated", Name: "Authenticated"}}
	admin := &authz.Identity{ID: 1, Role: authz.Role{Type: "admin", Name: "Administrator"}}

	t.Run("no identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/7", nil)
		newProfileRouter(nil).ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Authentication required")
	})

	t.Run("self target passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/7", nil)
		newProfileRouter(standard).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other target is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/8", nil)
		newProfileRouter(standard).ServeHTTP(w, req)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, w.Body.String(), "You can only modify your own profile")
	})

	t.Run("admin may target anyone", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/8", nil)
		newProfileRouter(admin).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
