package biz

import (
	"github.com/openmart/storegate/internal/authz"
)

// ProfileAllowedFields is the exact set of profile fields a user may modify.
// Both the direct surface and the graph surface consume this one list; keep
// it here so the two can never drift apart.
var ProfileAllowedFields = []string{
	"firstName",
	"lastName",
	"mobilePhone",
	"homePhone",
	"birthDate",
	"country",
	"address",
	"city",
	"zipCode",
	"discount",
	"used_coupons",
	"wishlist",
}

// PrivilegedFields may only be changed by an administrator.
var PrivilegedFields = []string{"role"}

// FilterPayload returns the subset of payload whose keys are in the
// allow-list, values unchanged. Matching is exact; disallowed keys are
// silently dropped.
func FilterPayload(payload map[string]any, allowList []string) map[string]any {
	allowed := make(map[string]struct{}, len(allowList))
	for _, field := range allowList {
		allowed[field] = struct{}{}
	}

	filtered := make(map[string]any, len(payload))

	for key, value := range payload {
		if _, ok := allowed[key]; ok {
			filtered[key] = value
		}
	}

	return filtered
}

// CheckElevation denies the whole payload when it touches a privileged field
// and the identity is not an administrator. It inspects keys only, never
// values.
func CheckElevation(identity authz.Identity, payload map[string]any, privileged []string) error {
	if identity.IsElevated() {
		return nil
	}

	for _, field := range privileged {
		if _, ok := payload[field]; ok {
			return ErrRoleChangeForbidden
		}
	}

	return nil
}
