package biz

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/store"
)

type CartServiceParams struct {
	fx.In

	Store store.Store
}

func NewCartService(params CartServiceParams) *CartService {
	return &CartService{
		AbstractService: &AbstractService{store: params.Store},
	}
}

// CartService applies ownership enforcement to cart operations before
// delegating to the store.
type CartService struct {
	*AbstractService
}

// CreateCartInput carries the cart creation payload. Any caller-supplied
// owner is ignored; the owner is always stamped from the acting identity.
type CreateCartInput struct {
	User  int              `json:"user"`
	Items []store.CartItem `json:"items"`
}

// ListCarts returns the identity's own carts. The ownership predicate is
// merged into any caller-supplied filters and always wins on the owner
// field.
func (s *CartService) ListCarts(ctx context.Context, q store.Query) ([]*store.Cart, int, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, 0, ErrUnauthenticated
	}

	q.Filters = store.ScopeToOwner(q.Filters, cartOwnerField, identity.ID)

	carts, total, err := s.store.Carts().FindMany(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch carts: %w", err)
	}

	return carts, total, nil
}

// GetCart fetches one cart with the owner relation expanded and authorizes
// it against the acting identity. Not-found and not-owned are collapsed.
func (s *CartService) GetCart(ctx context.Context, id int) (*store.Cart, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	cart, err := s.store.Carts().FindOne(ctx, id, cartOwnerField)

	var ownerID int
	if cart != nil {
		ownerID = cart.UserID
	}

	if err := guardOwned(identity, ownerID, err); err != nil {
		return nil, err
	}

	return cart, nil
}

// CreateCart stamps the acting identity as owner and delegates to the store.
func (s *CartService) CreateCart(ctx context.Context, input CreateCartInput) (*store.Cart, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	cart := &store.Cart{
		UserID: identity.ID,
		Items:  input.Items,
	}

	created, err := s.store.Carts().Create(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return created, nil
}
