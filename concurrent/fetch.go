// Package concurrent runs two independent read operations against the same
// logical store with overlapping execution and joins both before returning.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-db-middleware/middleware"
	"github.com/goliatone/go-db-middleware/store"
)

// Pair holds both branch results in fixed order: First is always the first
// operation's result and Second the second's, regardless of which branch
// physically finished first.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Fetch runs first and second concurrently and returns only after both have
// completed. On failure the first branch error is returned and the shared
// context is cancelled as a fail-fast signal to the sibling; the join
// barrier still waits for the sibling to finish before Fetch returns, so no
// branch ever outlives the call.
func Fetch[A, B any](ctx context.Context, first func(ctx context.Context) (A, error), second func(ctx context.Context) (B, error)) (Pair[A, B], error) {
	var pair Pair[A, B]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := first(gctx)
		if err != nil {
			return err
		}
		pair.First = out
		return nil
	})
	g.Go(func() error {
		out, err := second(gctx)
		if err != nil {
			return err
		}
		pair.Second = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return Pair[A, B]{}, err
	}
	return pair, nil
}

// FetchQueries runs both read queries concurrently, each inside its own
// connection scope against the store behind locator. Connections are never
// shared between the branches.
func FetchQueries(ctx context.Context, locator string, first, second store.Query, opts ...store.Option) (Pair[store.ResultSet, store.ResultSet], error) {
	run := func(q store.Query) func(ctx context.Context) (store.ResultSet, error) {
		return func(ctx context.Context) (store.ResultSet, error) {
			return middleware.WithConnection(ctx, locator, func(ctx context.Context, conn *store.Conn) (store.ResultSet, error) {
				return conn.Execute(ctx, q)
			}, opts...)
		}
	}

	return Fetch(ctx, run(first), run(second))
}
