package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/log"
	"github.com/openmart/storegate/internal/objects"
	"github.com/openmart/storegate/internal/server/biz"
)

type UserHandlersParams struct {
	fx.In

	UserService *biz.UserService
}

func NewUserHandlers(params UserHandlersParams) *UserHandlers {
	return &UserHandlers{
		UserService: params.UserService,
	}
}

type UserHandlers struct {
	UserService *biz.UserService
}

// Update applies a profile update. The route guard already checked the
// self-or-admin rule; the service re-checks it along with the field
// allow-list and the role-elevation guard.
func (h *UserHandlers) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		JSONError(c, http.StatusBadRequest, errors.New("Invalid request format"))
		return
	}

	profile, err := h.UserService.UpdateProfile(ctx, cast.ToInt(c.Param("id")), payload)
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			JSONError(c, http.StatusUnauthorized, errors.New("Authentication required"))
		case errors.Is(err, biz.ErrForbidden):
			JSONError(c, http.StatusForbidden, errors.New("You can only modify your own profile"))
		case errors.Is(err, biz.ErrRoleChangeForbidden):
			JSONError(c, http.StatusForbidden, errors.New("Only administrators can modify user roles"))
		case errors.Is(err, biz.ErrNoValidFields):
			JSONError(c, http.StatusBadRequest, errors.New("No valid fields to update"))
		default:
			log.Error(ctx, "failed to update user", log.Cause(err))
			JSONErrorDetail(c, http.StatusBadRequest, "Update failed", err)
		}

		return
	}

	c.JSON(http.StatusOK, objects.DataResponse{Data: profile})
}
