package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmart/storegate/internal/authz"
	"github.com/openmart/storegate/internal/contexts"
)

func TestRequestFieldsHook(t *testing.T) {
	hook := HookFunc(requestFields)

	t.Run("with request ID", func(t *testing.T) {
		ctx := contexts.WithRequestID(context.Background(), "req-test-id")
		fields := hook.Apply(ctx, "test message")
		assert.Len(t, fields, 1)
		assert.Equal(t, "request_id", fields[0].Key)
		assert.Equal(t, "req-test-id", fields[0].String)
	})

	t.Run("with identity", func(t *testing.T) {
		ctx := contexts.WithIdentity(context.Background(), authz.Identity{ID: 7})
		fields := hook.Apply(ctx, "test message")
		assert.Len(t, fields, 1)
		assert.Equal(t, "identity", fields[0].Key)
		assert.Equal(t, "user:7", fields[0].String)
	})

	t.Run("with request ID and identity", func(t *testing.T) {
		ctx := contexts.WithRequestID(context.Background(), "req-test-id")
		ctx = contexts.WithIdentity(ctx, authz.Identity{ID: 7})
		fields := hook.Apply(ctx, "test message")
		assert.Len(t, fields, 2)
	})

	t.Run("with empty context", func(t *testing.T) {
		fields := hook.Apply(context.Background(), "test message")
		assert.Len(t, fields, 0)
	})

	t.Run("with nil context", func(t *testing.T) {
		fields := hook.Apply(nil, "test message")
		assert.Len(t, fields, 0)
	})
}
