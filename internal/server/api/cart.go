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

type CartHandlersParams struct {
	fx.In

	CartService *biz.CartService
}

func NewCartHandlers(params CartHandlersParams) *CartHandlers {
	return &CartHandlers{
		CartService: params.CartService,
	}
}

type CartHandlers struct {
	CartService *biz.CartService
}

// Find lists the acting identity's carts.
func (h *CartHandlers) Find(c *gin.Context) {
	ctx := c.Request.Context()
	q := parseListQuery(c)

	carts, total, err := h.CartService.ListCarts(ctx, q)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			JSONError(c, http.StatusUnauthorized, errors.New("You must be logged in to view your cart."))
			return
		}

		log.Error(ctx, "failed to fetch carts", log.Cause(err))
		JSONError(c, http.StatusInternalServerError, errors.New("Failed to fetch carts."))

		return
	}

	c.JSON(http.StatusOK, objects.ListResponse{
		Data: carts,
		Meta: objects.Meta{
			Pagination: objects.Pagination{Page: q.Page, PageSize: q.PageSize, Total: total},
		},
	})
}

// FindOne fetches one cart after the ownership check.
func (h *CartHandlers) FindOne(c *gin.Context) {
	ctx := c.Request.Context()

	cart, err := h.CartService.GetCart(ctx, cast.ToInt(c.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			JSONError(c, http.StatusUnauthorized, errors.New("You must be logged in to view this cart."))
		case errors.Is(err, biz.ErrNotAuthorized):
			JSONError(c, http.StatusUnauthorized, errors.New("You are not authorized to view this cart."))
		default:
			log.Error(ctx, "failed to fetch cart", log.Cause(err))
			JSONError(c, http.StatusInternalServerError, errors.New("Failed to fetch cart details."))
		}

		return
	}

	c.JSON(http.StatusOK, objects.DataResponse{Data: cart})
}

// Create creates a cart owned by the acting identity.
func (h *CartHandlers) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var input biz.CreateCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, errors.New("Invalid request format"))
		return
	}

	cart, err := h.CartService.CreateCart(ctx, input)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			JSONError(c, http.StatusUnauthorized, errors.New("You must be logged in to create a cart."))
			return
		}

		log.Error(ctx, "failed to create cart", log.Cause(err))
		JSONError(c, http.StatusInternalServerError, errors.New("Failed to create cart."))

		return
	}

	c.JSON(http.StatusOK, objects.DataResponse{Data: cart})
}
