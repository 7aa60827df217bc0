package middleware

import (
	"context"

	"github.com/goliatone/go-db-middleware/store"
)

// ExecuteScoped runs one query inside its own fully bracketed scope: open a
// connection, execute inside a transaction, commit on success or roll back
// on failure, and close the connection before returning. It is the one-shot
// form of the WithConnection/WithTransaction composition.
func ExecuteScoped(ctx context.Context, locator string, q store.Query, opts ...store.Option) (store.ResultSet, error) {
	return WithConnection(ctx, locator, func(ctx context.Context, conn *store.Conn) (store.ResultSet, error) {
		return WithTransaction(ctx, conn, func(ctx context.Context, tx store.Querier) (store.ResultSet, error) {
			return tx.Execute(ctx, q)
		})
	}, opts...)
}

// ExecScoped is ExecuteScoped for statements that return no rows, reporting
// rows affected instead of a result set.
func ExecScoped(ctx context.Context, locator string, q store.Query, opts ...store.Option) (int64, error) {
	return WithConnection(ctx, locator, func(ctx context.Context, conn *store.Conn) (int64, error) {
		return WithTransaction(ctx, conn, func(ctx context.Context, tx store.Querier) (int64, error) {
			return tx.Exec(ctx, q)
		})
	}, opts...)
}
