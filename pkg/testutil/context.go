package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds every test context that does not ask for its own deadline
const DefaultTimeout = 30 * time.Second

// ContextWithTimeout returns a context cancelled at timeout or when the test ends
func ContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Context returns a context bounded by DefaultTimeout
func Context(t *testing.T) context.Context {
	t.Helper()
	return ContextWithTimeout(t, DefaultTimeout)
}

// CancelableContext returns a context for a background worker together with
// the cancel func that stops it. The context is also cancelled when the test ends.
func CancelableContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx, cancel
}

// CancelledContext returns a context that is already done, for asserting that
// blocking calls give up immediately
func CancelledContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := CancelableContext(t)
	cancel()
	return ctx
}
