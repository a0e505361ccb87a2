package contexts

import (
	"context"
	"sync"

	"github.com/openmart/storegate/internal/authz"
)

// contextContainer contains all request-scoped values.
type contextContainer struct {
	RequestID *string
	Identity  *authz.Identity
	Errors    []error
	mu        sync.RWMutex
}

// getContainer retrieves the existing container from the context, or creates
// a new one if it doesn't exist.
func getContainer(ctx context.Context) *contextContainer {
	if container, ok := ctx.Value(containerContextKey).(*contextContainer); ok {
		return container
	}

	return &contextContainer{}
}

// withContainer stores the container in the context (if not already stored).
func withContainer(ctx context.Context, container *contextContainer) context.Context {
	if ctx.Value(containerContextKey) == nil {
		return context.WithValue(ctx, containerContextKey, container)
	}

	return ctx
}
