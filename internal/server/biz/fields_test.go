package biz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmart/storegate/internal/authz"
)

func TestFilterPayload(t *testing.T) {
	t.Run("keeps only allow-listed keys", func(t *testing.T) {
		payload := map[string]any{"a": 1, "b": 2, "role": "admin"}
		filtered := FilterPayload(payload, []string{"a"})
		require.Equal(t, map[string]any{"a": 1}, filtered)
	})

	t.Run("matching is exact, not fuzzy", func(t *testing.T) {
		payload := map[string]any{"firstName": "X", "firstname": "Y", "FirstName": "Z"}
		filtered := FilterPayload(payload, ProfileAllowedFields)
		require.Equal(t, map[string]any{"firstName": "X"}, filtered)
	})

	t.Run("values pass through unchanged", func(t *testing.T) {
		payload := map[string]any{"wishlist": []int{1, 2, 3}}
		filtered := FilterPayload(payload, ProfileAllowedFields)
		require.Equal(t, []int{1, 2, 3}, filtered["wishlist"])
	})

	t.Run("empty payload stays empty", func(t *testing.T) {
		require.Empty(t, FilterPayload(map[string]any{}, ProfileAllowedFields))
	})

	t.Run("deterministic", func(t *testing.T) {
		payload := map[string]any{"firstName": "X", "email": "x@x.com"}
		first := FilterPayload(payload, ProfileAllowedFields)
		second := FilterPayload(payload, ProfileAllowedFields)
		require.Equal(t, first, second)
	})
}

func TestCheckElevation(t *testing.T) {
	standard := authz.Identity{ID: 1, Role: authz.Role{Type: "authenticated", Name: "Authenticated"}}
	admin := authz.Identity{ID: 2, Role: authz.Role{Type: "admin", Name: "Administrator"}}

	t.Run("standard identity may not touch role", func(t *testing.T) {
		payload := map[string]any{"firstName": "X", "role": 2}
		err := CheckElevation(standard, payload, PrivilegedFields)
		require.ErrorIs(t, err, ErrRoleChangeForbidden)
	})

	t.Run("admin may touch role", func(t *testing.T) {
		payload := map[string]any{"role": 2}
		require.NoError(t, CheckElevation(admin, payload, PrivilegedFields))
	})

	t.Run("payload without privileged fields passes", func(t *testing.T) {
		payload := map[string]any{"firstName": "X"}
		require.NoError(t, CheckElevation(standard, payload, PrivilegedFields))
	})

	t.Run("values are not inspected", func(t *testing.T) {
		// Even a nil role value counts as an attempted change.
		payload := map[string]any{"role": nil}
		err := CheckElevation(standard, payload, PrivilegedFields)
		require.ErrorIs(t, err, ErrRoleChangeForbidden)
	})
}
