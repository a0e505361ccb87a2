package biz

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/store"
)

type OrderServiceParams struct {
	fx.In

	Store store.Store
}

func NewOrderService(params OrderServiceParams) *OrderService {
	return &OrderService{
		AbstractService: &AbstractService{store: params.Store},
	}
}

// OrderService applies ownership enforcement to order operations before
// delegating to the store.
type OrderService struct {
	*AbstractService
}

// CreateOrderInput carries the order creation payload. Any caller-supplied
// owner is ignored; the owner is always stamped from the acting identity.
type CreateOrderInput struct {
	Owner    int                  `json:"owner"`
	Products []store.OrderProduct `json:"products"`
	Total    decimal.Decimal      `json:"total"`
	Status   string               `json:"status"`
}

// ListOrders returns the identity's own orders, ownership filter merged in.
func (s *OrderService) ListOrders(ctx context.Context, q store.Query) ([]*store.Order, int, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, 0, ErrUnauthenticated
	}

	q.Filters = store.ScopeToOwner(q.Filters, orderOwnerField, identity.ID)

	orders, total, err := s.store.Orders().FindMany(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// GetOrder fetches one order with the owner relation expanded and authorizes
// it against the acting identity. Not-found and not-owned are collapsed.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*store.Order, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	order, err := s.store.Orders().FindOne(ctx, id, orderOwnerField)

	var ownerID int
	if order != nil {
		ownerID = order.OwnerID
	}

	if err := guardOwned(identity, ownerID, err); err != nil {
		return nil, err
	}

	return order, nil
}

// CreateOrder stamps the acting identity as owner, totals the product lines
// when the caller did not, and delegates to the store.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*store.Order, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	total := input.Total
	if total.IsZero() {
		for _, product := range input.Products {
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(product.Quantity))))
		}
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	order := &store.Order{
		OwnerID:  identity.ID,
		Products: input.Products,
		Total:    total,
		Status:   status,
	}

	created, err := s.store.Orders().Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return created, nil
}
