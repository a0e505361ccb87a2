package contexts

import (
	"context"

	"github.com/openmart/storegate/internal/authz"
)

// ContextKey defines the context key type.
type ContextKey string

const (
	// containerContextKey is used to store the context container in the context.
	containerContextKey ContextKey = "context_container"
)

// WithIdentity stores the acting identity in the context.
func WithIdentity(ctx context.Context, identity authz.Identity) context.Context {
	container := getContainer(ctx)
	container.Identity = &identity

	return withContainer(ctx, container)
}

// GetIdentity resolves the acting identity from the context. Absence is a
// valid, expected outcome that callers must check explicitly.
func GetIdentity(ctx context.Context) (authz.Identity, bool) {
	container := getContainer(ctx)
	if container.Identity != nil {
		return *container.Identity, true
	}

	return authz.Identity{}, false
}

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	container := getContainer(ctx)
	container.RequestID = &requestID

	return withContainer(ctx, container)
}

// GetRequestID retrieves the request id from the context.
func GetRequestID(ctx context.Context) (string, bool) {
	container := getContainer(ctx)
	if container.RequestID != nil {
		return *container.RequestID, true
	}

	return "", false
}

// AddError records an error on the request for access logging.
func AddError(ctx context.Context, err error) {
	container := getContainer(ctx)
	container.mu.Lock()
	container.Errors = append(container.Errors, err)
	container.mu.Unlock()
}

// GetErrors returns the errors recorded on the request.
func GetErrors(ctx context.Context) []error {
	container := getContainer(ctx)
	container.mu.RLock()
	defer container.mu.RUnlock()

	errs := make([]error, len(container.Errors))
	copy(errs, container.Errors)

	return errs
}
