package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmart/storegate/internal/log"
)

// Recovery turns panics into a 500 response instead of killing the process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "panic recovered", log.Any("panic", recovered))
		AbortWithError(c, http.StatusInternalServerError, errors.New("internal server error"))
	})
}
