package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/server/biz"
)

// ExtractBearerToken pulls the bearer token from the Authorization header.
// An empty string means no credentials were presented.
func ExtractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}

// WithIdentity resolves the acting identity from the request's JWT and
// stores it in the context. A request without credentials passes through
// unauthenticated: each handler decides for itself whether an identity is
// required. A presented-but-invalid token is rejected outright.
func WithIdentity(auth *biz.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearerToken(c.Request)
		if token == "" {
			c.Next()
			return
		}

		identity, err := auth.AuthenticateJWTToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, biz.ErrInvalidJWT) {
				AbortWithError(c, http.StatusUnauthorized, errors.New("Invalid token"))
			} else {
				AbortWithError(c, http.StatusInternalServerError, errors.New("Failed to validate token"))
			}

			return
		}

		ctx := contexts.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
