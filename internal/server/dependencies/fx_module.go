package dependencies

import (
	"context"

	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/store"
)

var Module = fx.Module("dependencies",
	fx.Provide(NewStore),
	fx.Invoke(func(lc fx.Lifecycle, s store.Store) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return s.Close()
			},
		})
	}),
)
