package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityIsElevated(t *testing.T) {
	t.Run("admin role type", func(t *testing.T) {
		identity := Identity{ID: 1, Role: Role{Type: "admin", Name: "Root"}}
		require.True(t, identity.IsElevated())
	})

	t.Run("administrator role name", func(t *testing.T) {
		identity := Identity{ID: 1, Role: Role{Type: "authenticated", Name: "Administrator"}}
		require.True(t, identity.IsElevated())
	})

	t.Run("standard role", func(t *testing.T) {
		identity := Identity{ID: 1, Role: Role{Type: "authenticated", Name: "Authenticated"}}
		require.False(t, identity.IsElevated())
	})

	t.Run("zero role", func(t *testing.T) {
		require.False(t, Identity{ID: 1}.IsElevated())
	})
}

func TestIdentityString(t *testing.T) {
	identity := Identity{ID: 7}
	require.Equal(t, "user:7", identity.String())
}
