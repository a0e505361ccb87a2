package biz

import "errors"

var (
	// ErrUnauthenticated means no identity was resolved for the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotAuthorized covers both a missing record and a record owned by
	// another identity; the two are deliberately indistinguishable.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrForbidden means the identity may not act on the targeted record.
	ErrForbidden = errors.New("forbidden")
	// ErrRoleChangeForbidden means a non-administrator tried to change a
	// privileged field.
	ErrRoleChangeForbidden = errors.New("only administrators can modify user roles")
	// ErrNoValidFields means the allow-list filter left nothing to update.
	ErrNoValidFields = errors.New("no valid fields to update")

	ErrInvalidJWT      = errors.New("invalid jwt token")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInternal        = errors.New("server internal error, please try again later")
)
