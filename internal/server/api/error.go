package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmart/storegate/internal/objects"
)

// JSONError returns a JSON error response and adds the error to gin context
// for access logging.
func JSONError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, objects.ErrorResponse{
		Error: objects.Error{
			Type:    http.StatusText(status),
			Message: err.Error(),
		},
	})
}

// JSONErrorDetail is JSONError plus the underlying error message. Only the
// profile update path exposes the detail; everywhere else store errors are
// genericized.
func JSONErrorDetail(c *gin.Context, status int, message string, cause error) {
	_ = c.Error(cause)
	c.JSON(status, objects.ErrorResponse{
		Error: objects.Error{
			Type:    http.StatusText(status),
			Message: message,
			Detail:  cause.Error(),
		},
	})
}
