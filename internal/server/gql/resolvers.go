package gql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"github.com/openmart/storegate/internal/log"
	"github.com/openmart/storegate/internal/objects"
	"github.com/openmart/storegate/internal/server/biz"
	"github.com/openmart/storegate/internal/store"
)

// NewSchema wires the graph fields to the shared service layer. Every
// authorization decision lives in biz; resolvers only shape arguments and
// error messages.
func NewSchema(deps Dependencies) *Schema {
	r := &resolvers{deps: deps}

	return &Schema{
		queries: map[string]Resolver{
			"orders": r.Orders,
			"order":  r.Order,
			"carts":  r.Carts,
			"cart":   r.Cart,
			"coupon": r.Coupon,
			"me":     r.Me,
		},
		mutations: map[string]Resolver{
			"updateUsersPermissionsUser": r.UpdateUsersPermissionsUser,
			"createOrder":                r.CreateOrder,
			"createCart":                 r.CreateCart,
		},
	}
}

type resolvers struct {
	deps Dependencies
}

func listQueryArgs(args map[string]any) store.Query {
	q := store.Query{
		Page:     cast.ToInt(args["page"]),
		PageSize: cast.ToInt(args["pageSize"]),
	}

	return q.Normalize()
}

func (r *resolvers) Orders(ctx context.Context, args map[string]any) (any, error) {
	orders, _, err := r.deps.OrderService.ListOrders(ctx, listQueryArgs(args))
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			return nil, errors.New("You must be logged in to view your orders.")
		}

		log.Error(ctx, "failed to fetch orders", log.Cause(err))

		return nil, errors.New("Failed to fetch orders.")
	}

	return orders, nil
}

func (r *resolvers) Order(ctx context.Context, args map[string]any) (any, error) {
	order, err := r.deps.OrderService.GetOrder(ctx, cast.ToInt(args["id"]))
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			return nil, errors.New("You must be logged in to view your orders.")
		case errors.Is(err, biz.ErrNotAuthorized):
			return nil, errors.New("You can only view your own orders.")
		default:
			log.Error(ctx, "failed to fetch order", log.Cause(err))

			return nil, errors.New("Failed to fetch order details.")
		}
	}

	return order, nil
}

func (r *resolvers) Carts(ctx context.Context, args map[string]any) (any, error) {
	carts, _, err := r.deps.CartService.ListCarts(ctx, listQueryArgs(args))
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			return nil, errors.New("You must be logged in to view your cart.")
		}

		log.Error(ctx, "failed to fetch carts", log.Cause(err))

		return nil, errors.New("Failed to fetch carts.")
	}

	return carts, nil
}

func (r *resolvers) Cart(ctx context.Context, args map[string]any) (any, error) {
	cart, err := r.deps.CartService.GetCart(ctx, cast.ToInt(args["id"]))
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			return nil, errors.New("You must be logged in to view your cart.")
		case errors.Is(err, biz.ErrNotAuthorized):
			return nil, errors.New("You can only view your own carts.")
		default:
			log.Error(ctx, "failed to fetch cart", log.Cause(err))

			return nil, errors.New("Failed to fetch cart details.")
		}
	}

	return cart, nil
}

func (r *resolvers) Coupon(ctx context.Context, args map[string]any) (any, error) {
	coupon, err := r.deps.CouponService.GetCouponByCode(ctx, cast.ToString(args["code"]))
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			return nil, errors.New("You must be logged in to view coupons.")
		case store.IsNotFound(err):
			return nil, errors.New("Coupon not found.")
		default:
			log.Error(ctx, "failed to fetch coupon", log.Cause(err))

			return nil, errors.New("Failed to fetch coupon.")
		}
	}

	return coupon, nil
}

// meResult is the profile with the coupon and discount relations expanded.
// The outer fields shadow the embedded id-only ones.
type meResult struct {
	*objects.UserProfile

	UsedCoupons []*store.Coupon `json:"used_coupons"`
	Discount    *store.Discount `json:"discount,omitempty"`
}

func (r *resolvers) Me(ctx context.Context, _ map[string]any) (any, error) {
	profile, err := r.deps.UserService.Me(ctx)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			return nil, errors.New("You must be logged in.")
		}

		log.Error(ctx, "failed to fetch profile", log.Cause(err))

		return nil, errors.New("Failed to fetch user data.")
	}

	coupons, err := r.deps.CouponService.ListUsedCoupons(ctx)
	if err != nil {
		log.Error(ctx, "failed to fetch used coupons", log.Cause(err))

		return nil, errors.New("Failed to fetch user data.")
	}

	discount, err := r.deps.DiscountService.GetUserDiscount(ctx)
	if err != nil {
		log.Error(ctx, "failed to fetch discount", log.Cause(err))

		return nil, errors.New("Failed to fetch user data.")
	}

	return meResult{UserProfile: profile, UsedCoupons: coupons, Discount: discount}, nil
}

func (r *resolvers) UpdateUsersPermissionsUser(ctx context.Context, args map[string]any) (any, error) {
	data, _ := args["data"].(map[string]any)

	profile, err := r.deps.UserService.UpdateProfile(ctx, cast.ToInt(args["id"]), data)
	if err != nil {
		switch {
		case errors.Is(err, biz.ErrUnauthenticated):
			return nil, errors.New("You must be logged in to update user data.")
		case errors.Is(err, biz.ErrForbidden):
			return nil, errors.New("You can only update your own user data.")
		case errors.Is(err, biz.ErrRoleChangeForbidden):
			return nil, errors.New("Only administrators can modify user roles.")
		case errors.Is(err, biz.ErrNoValidFields):
			return nil, errors.New("No valid fields to update")
		default:
			log.Error(ctx, "failed to update user", log.Cause(err))

			return nil, errors.New("Update failed")
		}
	}

	return profile, nil
}

func (r *resolvers) CreateOrder(ctx context.Context, args map[string]any) (any, error) {
	var input biz.CreateOrderInput
	if err := decodeInput(args["data"], &input); err != nil {
		return nil, err
	}

	order, err := r.deps.OrderService.CreateOrder(ctx, input)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			return nil, errors.New("You must be logged in to place an order.")
		}

		log.Error(ctx, "failed to create order", log.Cause(err))

		return nil, errors.New("Failed to create order.")
	}

	return order, nil
}

func (r *resolvers) CreateCart(ctx context.Context, args map[string]any) (any, error) {
	var input biz.CreateCartInput
	if err := decodeInput(args["data"], &input); err != nil {
		return nil, err
	}

	cart, err := r.deps.CartService.CreateCart(ctx, input)
	if err != nil {
		if errors.Is(err, biz.ErrUnauthenticated) {
			return nil, errors.New("You must be logged in to create a cart.")
		}

		log.Error(ctx, "failed to create cart", log.Cause(err))

		return nil, errors.New("Failed to create cart.")
	}

	return cart, nil
}

// decodeInput maps a coerced argument object onto a typed create input via a
// JSON round trip, reusing the input structs' tags and decimal handling.
func decodeInput(raw any, target any) error {
	if raw == nil {
		return errors.New("Missing input data")
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("invalid input data: %w", err)
	}

	if err := json.Unmarshal(encoded, target); err != nil {
		return errors.New("Invalid input data")
	}

	return nil
}
