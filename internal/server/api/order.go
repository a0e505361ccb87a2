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

type OrderHandlersParams struct {
	fx.In

	OrderService *biz.OrderService
}

func NewOrderHandlers(params OrderHandlersParams) *OrderHandlers {
	return &OrderHandlers{
		OrderService: params.OrderService,
	}
}

type OrderHandlers struct {
	OrderService *biz.OrderService
}

// Find lists the acting identity's orders.
func (h *OrderHandlers) Find(c *gin.Context) {
	ctx := c.Request.Context()
	q := parseListQuery(c)

	orders, total, err := h.OrderService.ListOrders(ctx, q)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			JSONError(c, http.StatusUnauthorized, errors.New("You must be logged in to view your orders."))
			return
		}

		log.Error(ctx, "failed to fetch orders", log.Cause(err))
		JSONError(c, http.StatusInternalServerError, errors.New("Failed to fetch orders."))

		return
	}

	c.JSON(http.StatusOK, objects.ListResponse{
		Data: orders,
		Meta: objects.Meta{
			Pagination: objects.Pagination{Page: q.Page, PageSize: q.PageSize, Total: total},
		},
	})
}

// FindOne fetches one order after the ownership check.
func (h *OrderHandlers) FindOne(c *gin.Context) {
	ctx := c.Request.Context()

	order, err := h.OrderService.GetOrder(ctx, cast.ToInt(c.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			JSONError(c, http.StatusUnauthorized, errors.New("You must be logged in to view this order."))
		case errors.Is(err, biz.ErrNotAuthorized):
			JSONError(c, http.StatusUnauthorized, errors.New("You are not authorized to view this order."))
		default:
			log.Error(ctx, "failed to fetch order", log.Cause(err))
			JSONError(c, http.StatusInternalServerError, errors.New("Failed to fetch order details."))
		}

		return
	}

	c.JSON(http.StatusOK, objects.DataResponse{Data: order})
}

// Create creates an order owned by the acting identity.
func (h *OrderHandlers) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var input biz.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, errors.New("Invalid request format"))
		return
	}

	order, err := h.OrderService.CreateOrder(ctx, input)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			JSONError(c, http.StatusUnauthorized, errors.New("You must be logged in to place an order."))
			return
		}

		log.Error(ctx, "failed to create order", log.Cause(err))
		JSONError(c, http.StatusInternalServerError, errors.New("Failed to create order."))

		return
	}

	c.JSON(http.StatusOK, objects.DataResponse{Data: order})
}
