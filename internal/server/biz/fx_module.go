package biz

import (
	"go.uber.org/fx"
)

var Module = fx.Module("biz",
	fx.Provide(NewAuthService),
	fx.Provide(NewUserService),
	fx.Provide(NewCartService),
	fx.Provide(NewOrderService),
	fx.Provide(NewCouponService),
	fx.Provide(NewDiscountService),
)
