package biz

import (
	"context"

	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/store"
	"github.com/openmart/storegate/internal/store/memstore"
)

var (
	roleAuthenticated = &store.Role{ID: 1, Type: "authenticated", Name: "Authenticated"}
	roleAdmin         = &store.Role{ID: 2, Type: "admin", Name: "Administrator"}
)

func newTestUser(s *memstore.Store, email string, role *store.Role) *store.User {
	return s.SeedUser(&store.User{
		Email:  email,
		RoleID: role.ID,
		Role:   role,
	})
}

// identityCtx builds a request context acting as the given user.
func identityCtx(user *store.User) context.Context {
	return contexts.WithIdentity(context.Background(), IdentityFromUser(user))
}

func newCartServiceForTest(s *memstore.Store) *CartService {
	return NewCartService(CartServiceParams{Store: s})
}

func newOrderServiceForTest(s *memstore.Store) *OrderService {
	return NewOrderService(OrderServiceParams{Store: s})
}

func newUserServiceForTest(s *memstore.Store) *UserService {
	return NewUserService(UserServiceParams{Store: s})
}

func newCouponServiceForTest(s *memstore.Store) *CouponService {
	return NewCouponService(CouponServiceParams{Store: s})
}

func newDiscountServiceForTest(s *memstore.Store) *DiscountService {
	return NewDiscountService(DiscountServiceParams{Store: s})
}

func newAuthServiceForTest(s *memstore.Store) *AuthService {
	return NewAuthService(AuthServiceParams{
		Store:  s,
		Config: AuthConfig{SecretKey: "test-secret"},
	})
}
