package dependencies

import (
	"fmt"

	"github.com/openmart/storegate/internal/store"
	"github.com/openmart/storegate/internal/store/gormstore"
	"github.com/openmart/storegate/internal/store/memstore"
)

// NewStore opens the record store named by the configured dialect. The memory
// dialect backs local development and tests; postgres is the production path.
func NewStore(cfg store.Config) (store.Store, error) {
	switch cfg.Dialect {
	case "", "postgres":
		s, err := gormstore.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}

		return s, nil
	case "memory":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown store dialect %q", cfg.Dialect)
	}
}
