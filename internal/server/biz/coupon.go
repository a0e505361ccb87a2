package biz

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/store"
)

type CouponServiceParams struct {
	fx.In

	Store store.Store
}

func NewCouponService(params CouponServiceParams) *CouponService {
	return &CouponService{
		AbstractService: &AbstractService{store: params.Store},
	}
}

// CouponService gates coupon reads behind authentication. Coupons carry no
// ownership; any authenticated identity may look one up by code.
type CouponService struct {
	*AbstractService
}

// GetCouponByCode returns the coupon with the given unique code. The store's
// not-found error passes through for the surfaces to shape.
func (s *CouponService) GetCouponByCode(ctx context.Context, code string) (*store.Coupon, error) {
	if _, ok := contexts.GetIdentity(ctx); !ok {
		return nil, ErrUnauthenticated
	}

	coupon, err := s.store.Coupons().FindByCode(ctx, code)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to fetch coupon: %w", err)
	}

	return coupon, nil
}

// ListUsedCoupons returns the coupons whose user set contains the acting
// identity.
func (s *CouponService) ListUsedCoupons(ctx context.Context) ([]*store.Coupon, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	coupons, err := s.store.Coupons().FindManyByUser(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupons: %w", err)
	}

	return coupons, nil
}

type DiscountServiceParams struct {
	fx.In

	Store store.Store
}

func NewDiscountService(params DiscountServiceParams) *DiscountService {
	return &DiscountService{
		AbstractService: &AbstractService{store: params.Store},
	}
}

// DiscountService resolves the discount applying to an identity.
type DiscountService struct {
	*AbstractService
}

// GetUserDiscount returns the first discount whose user set contains the
// acting identity, or nil when none does.
func (s *DiscountService) GetUserDiscount(ctx context.Context) (*store.Discount, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	discount, err := s.store.Discounts().FindFirstByUser(ctx, identity.ID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to fetch discount: %w", err)
	}

	return discount, nil
}
