package gql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/server/biz"
)

type Dependencies struct {
	fx.In

	UserService     *biz.UserService
	CartService     *biz.CartService
	OrderService    *biz.OrderService
	CouponService   *biz.CouponService
	DiscountService *biz.DiscountService
}

type GraphqlHandler struct {
	schema *Schema
}

func NewGraphqlHandlers(deps Dependencies) *GraphqlHandler {
	return &GraphqlHandler{
		schema: NewSchema(deps),
	}
}

// Request is the standard GraphQL-over-HTTP POST body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type Response struct {
	Data   map[string]any `json:"data"`
	Errors []ErrorEntry   `json:"errors,omitempty"`
}

type ErrorEntry struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// Graphql serves the graph surface. Transport failures are HTTP errors;
// resolver failures travel in the response's errors list with a 200.
func (h *GraphqlHandler) Graphql(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Errors: []ErrorEntry{{Message: "Invalid request format"}},
		})

		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, Response{
			Errors: []ErrorEntry{{Message: "No query document supplied"}},
		})

		return
	}

	resp := h.schema.Execute(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
