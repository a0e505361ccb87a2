package authz

import "fmt"

const (
	// RoleTypeAdmin is the role type granting elevated privilege.
	RoleTypeAdmin = "admin"
	// RoleNameAdministrator is the role name granting elevated privilege.
	RoleNameAdministrator = "Administrator"
)

// Role is the role attached to an identity.
type Role struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Identity is the authenticated actor issuing a request. It is constructed
// fresh per request and never persisted by this layer.
type Identity struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
}

// IsElevated reports whether the identity holds the administrator role.
func (id Identity) IsElevated() bool {
	return id.Role.Type == RoleTypeAdmin || id.Role.Name == RoleNameAdministrator
}

// String returns a stable representation for audit logs.
func (id Identity) String() string {
	return fmt.Sprintf("user:%d", id.ID)
}
