// Package authz defines the acting identity of a request and the role
// predicates the rest of the server builds its decisions on.
//
// Core concepts:
//
//   - Identity: the authenticated actor (id plus role). Constructed once per
//     request by the auth middleware and carried in the request context via
//     the contexts package; absence of an identity is a valid state that
//     every handler checks explicitly.
//
//   - Elevation: the administrator role is exempt from ownership and
//     role-change restrictions. Elevation is a property of the role, checked
//     with Identity.IsElevated; nothing else in the codebase inspects role
//     names directly.
package authz
