package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/openmart/storegate/internal/contexts"
)

// WithSelfOrAdmin guards the profile update route: the target id must be the
// acting identity's own id unless the identity is an administrator. The
// check runs ahead of the handler so the handler only ever sees authorized
// requests.
func WithSelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := contexts.GetIdentity(c.Request.Context())
		if !ok {
			AbortWithError(c, http.StatusUnauthorized, errors.New("Authentication required"))
			return
		}

		targetID := cast.ToInt(c.Param("id"))
		if !identity.IsElevated() && identity.ID != targetID {
			AbortWithError(c, http.StatusForbidden, errors.New("You can only modify your own profile"))
			return
		}

		c.Next()
	}
}
