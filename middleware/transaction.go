package middleware

import (
	"context"
	log "log/slog"

	"github.com/goliatone/go-db-middleware/store"
)

// WithTransaction runs op inside a transaction on conn. If op returns
// normally the transaction commits; if op fails the transaction rolls back,
// a diagnostic is logged, and op's error is returned unchanged. Exactly one
// of commit or rollback happens per invocation, never both, never neither.
// The wrapper does not retry and does not suppress the failure.
func WithTransaction[T any](ctx context.Context, conn *store.Conn, op func(ctx context.Context, tx store.Querier) (T, error)) (T, error) {
	var zero T

	tx, err := conn.Begin(ctx)
	if err != nil {
		return zero, err
	}

	out, err := op(ctx, tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("middleware: rollback failed", "conn_id", conn.ID(), "error", rbErr)
		}
		log.Warn("middleware: transaction rolled back", "conn_id", conn.ID(), "error", err)
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return out, nil
}
