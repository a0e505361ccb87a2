package store

// Filters is a set of equality predicates keyed by wire-format field name.
type Filters map[string]any

// Clone returns a shallow copy.
func (f Filters) Clone() Filters {
	if f == nil {
		return nil
	}

	clone := make(Filters, len(f))
	for key, value := range f {
		clone[key] = value
	}

	return clone
}

// ScopeToOwner merges the ownership predicate "ownerField equals ownerID"
// into the caller-supplied filters. Caller filters on other fields are
// preserved; a caller filter on the owner field is discarded so the
// ownership predicate always wins. This is the invariant preventing
// cross-identity leakage on list operations.
func ScopeToOwner(filters Filters, ownerField string, ownerID int) Filters {
	merged := make(Filters, len(filters)+1)

	for key, value := range filters {
		if key == ownerField {
			continue
		}

		merged[key] = value
	}

	merged[ownerField] = ownerID

	return merged
}
