package log

import (
	"context"

	"github.com/openmart/storegate/internal/contexts"
)

// Hook contributes extra fields to every log entry.
type Hook interface {
	Apply(ctx context.Context, msg string) []Field
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(ctx context.Context, msg string) []Field

func (f HookFunc) Apply(ctx context.Context, msg string) []Field {
	return f(ctx, msg)
}

// requestFields attaches the request id and acting identity when present.
func requestFields(ctx context.Context, _ string) []Field {
	if ctx == nil {
		return nil
	}

	var fields []Field

	if requestID, ok := contexts.GetRequestID(ctx); ok {
		fields = append(fields, String("request_id", requestID))
	}

	if identity, ok := contexts.GetIdentity(ctx); ok {
		fields = append(fields, String("identity", identity.String()))
	}

	return fields
}
