package middleware

import (
	"context"

	"github.com/goliatone/go-db-middleware/store"
)

// WithConnection acquires a connection for the duration of one logical
// operation and guarantees it is released on every exit path. An open
// failure surfaces immediately as a *store.ConnectionError and the operation
// is never invoked. A close failure is logged by the connection itself and
// never masks the operation's outcome.
func WithConnection[T any](ctx context.Context, locator string, op func(ctx context.Context, conn *store.Conn) (T, error), opts ...store.Option) (T, error) {
	var zero T

	conn, err := store.Open(ctx, locator, opts...)
	if err != nil {
		return zero, err
	}
	defer conn.Close()

	return op(ctx, conn)
}
