package biz

import (
	"fmt"

	"github.com/openmart/storegate/internal/authz"
	"github.com/openmart/storegate/internal/store"
)

// Owner field names on the wire. Carts historically use "user", orders use
// "owner"; both surfaces and both store backends share these names.
const (
	cartOwnerField  = "user"
	orderOwnerField = "owner"
)

// guardOwned decides a get-one ownership check. A missing record and a
// record owned by another identity produce the same ErrNotAuthorized, so a
// caller can never probe for the existence of someone else's record. Store
// failures other than not-found pass through.
func guardOwned(identity authz.Identity, ownerID int, fetchErr error) error {
	if fetchErr != nil {
		if store.IsNotFound(fetchErr) {
			return ErrNotAuthorized
		}

		return fmt.Errorf("failed to fetch record: %w", fetchErr)
	}

	if ownerID != identity.ID {
		return ErrNotAuthorized
	}

	return nil
}
