package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmart/storegate/internal/store"
)

func TestCartFindManyFiltersByUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	alice := s.SeedUser(&store.User{Email: "alice@test.com"})
	bob := s.SeedUser(&store.User{Email: "bob@test.com"})

	s.SeedCart(&store.Cart{UserID: alice.ID})
	s.SeedCart(&store.Cart{UserID: alice.ID})
	s.SeedCart(&store.Cart{UserID: bob.ID})

	carts, total, err := s.Carts().FindMany(ctx, store.Query{
		Filters: store.Filters{"user": alice.ID},
	})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, carts, 2)

	for _, cart := range carts {
		require.Equal(t, alice.ID, cart.UserID)
	}
}

func TestCartFindManyUnknownFilterMatchesNothing(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := s.SeedUser(&store.User{Email: "alice@test.com"})
	s.SeedCart(&store.Cart{UserID: user.ID})

	carts, total, err := s.Carts().FindMany(ctx, store.Query{
		Filters: store.Filters{"user": user.ID, "nope": 1},
	})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, carts)
}

func TestOrderPagination(t *testing.T) {
	s := New()
	ctx := context.Background()

	owner := s.SeedUser(&store.User{Email: "alice@test.com"})
	for i := 0; i < 5; i++ {
		s.SeedOrder(&store.Order{OwnerID: owner.ID})
	}

	orders, total, err := s.Orders().FindMany(ctx, store.Query{
		Filters:  store.Filters{"owner": owner.ID},
		Page:     2,
		PageSize: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, orders, 2)
}

func TestOrderFindOnePopulatesOwner(t *testing.T) {
	s := New()
	ctx := context.Background()

	owner := s.SeedUser(&store.User{Email: "alice@test.com"})
	order := s.SeedOrder(&store.Order{OwnerID: owner.ID})

	got, err := s.Orders().FindOne(ctx, order.ID, "owner")
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	require.Equal(t, owner.ID, got.Owner.ID)

	_, err = s.Orders().FindOne(ctx, 999)
	require.True(t, store.IsNotFound(err))
}

func TestUserUpdateMapsWireFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := s.SeedUser(&store.User{Email: "alice@test.com"})
	coupon := s.SeedCoupon(&store.Coupon{Code: "SAVE10"})

	updated, err := s.Users().Update(ctx, user.ID, map[string]any{
		"firstName":    "Alice",
		"zipCode":      "10001",
		"discount":     3,
		"used_coupons": []int{coupon.ID},
		"wishlist":     []int{5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, "Alice", updated.FirstName)
	require.Equal(t, "10001", updated.ZipCode)
	require.NotNil(t, updated.DiscountID)
	require.Equal(t, 3, *updated.DiscountID)
	require.Len(t, updated.UsedCoupons, 1)
	require.Equal(t, []int{5, 6}, updated.Wishlist)
}

func TestCouponLookup(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := s.SeedUser(&store.User{Email: "alice@test.com"})
	s.SeedCoupon(&store.Coupon{Code: "SAVE10", Users: []*store.User{user}})
	s.SeedCoupon(&store.Coupon{Code: "SAVE20"})

	coupon, err := s.Coupons().FindByCode(ctx, "SAVE10")
	require.NoError(t, err)
	require.Equal(t, "SAVE10", coupon.Code)

	_, err = s.Coupons().FindByCode(ctx, "MISSING")
	require.True(t, store.IsNotFound(err))

	coupons, err := s.Coupons().FindManyByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
}

func TestDiscountFirstByUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := s.SeedUser(&store.User{Email: "alice@test.com"})
	first := s.SeedDiscount(&store.Discount{Users: []*store.User{user}})
	s.SeedDiscount(&store.Discount{Users: []*store.User{user}})

	discount, err := s.Discounts().FindFirstByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, discount.ID)

	_, err = s.Discounts().FindFirstByUser(ctx, 999)
	require.True(t, store.IsNotFound(err))
}
