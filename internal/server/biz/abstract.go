package biz

import (
	"github.com/openmart/storegate/internal/store"
)

// AbstractService carries the injected store client every service delegates
// to. The store is never reached through a global handle.
type AbstractService struct {
	store store.Store
}
