package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmart/storegate/internal/build"
)

type SystemHandlers struct{}

func NewSystemHandlers() *SystemHandlers {
	return &SystemHandlers{}
}

// Health reports liveness and build information.
func (h *SystemHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"build":  build.GetBuildInfo(),
	})
}
