// Package middleware provides the composable wrappers that every
// data-access call passes through: connection scope, transaction
// commit/rollback, bounded retry and query logging.
//
// Each wrapper is an explicit higher-order function over a caller-supplied
// operation, mirroring the decorator composition the package replaces. The
// canonical nesting order, outermost to innermost, is:
//
//	WithConnection -> WithTransaction -> WithRetry -> operation
//
// With this order every retry attempt reuses the scope's connection and a
// connection-open failure is NOT retried; callers that want open failures
// retried wrap WithConnection itself in WithRetry instead.
//
// Example:
//
//	out, err := middleware.WithConnection(ctx, locator,
//		func(ctx context.Context, conn *store.Conn) (store.ResultSet, error) {
//			return middleware.WithRetry(ctx, cfg,
//				func(ctx context.Context) (store.ResultSet, error) {
//					return conn.Execute(ctx, query)
//				})
//		})
//
// None of the wrappers swallow failures. The connection scope releases and
// re-raises, the transaction wrapper rolls back and re-raises, and the retry
// policy is the only component that suppresses intermediate failures
// (logging them) before returning either a success or the final attempt's
// error verbatim.
package middleware
