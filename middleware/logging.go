package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/goliatone/go-db-middleware/store"
)

// loggingQuerier decorates a Querier, logging every statement before it runs
// and its duration and row count after.
type loggingQuerier struct {
	next store.Querier
	log  *slog.Logger
}

var _ store.Querier = (*loggingQuerier)(nil)

// WithQueryLogging wraps q so every statement is logged with its xxhash
// fingerprint, duration and row count. A nil logger falls back to
// slog.Default. Results and errors pass through untouched.
func WithQueryLogging(q store.Querier, logger *slog.Logger) store.Querier {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingQuerier{next: q, log: logger}
}

func (l *loggingQuerier) Execute(ctx context.Context, q store.Query) (store.ResultSet, error) {
	l.log.Info("executing query", "statement", q.Statement, "fingerprint", q.Fingerprint())

	start := time.Now()
	rs, err := l.next.Execute(ctx, q)
	if err != nil {
		l.log.Warn("query failed", "fingerprint", q.Fingerprint(), "duration", time.Since(start), "error", err)
		return rs, err
	}

	l.log.Info("query completed", "fingerprint", q.Fingerprint(), "duration", time.Since(start), "rows", len(rs.Rows))
	return rs, nil
}

func (l *loggingQuerier) Exec(ctx context.Context, q store.Query) (int64, error) {
	l.log.Info("executing statement", "statement", q.Statement, "fingerprint", q.Fingerprint())

	start := time.Now()
	affected, err := l.next.Exec(ctx, q)
	if err != nil {
		l.log.Warn("statement failed", "fingerprint", q.Fingerprint(), "duration", time.Since(start), "error", err)
		return affected, err
	}

	l.log.Info("statement completed", "fingerprint", q.Fingerprint(), "duration", time.Since(start), "rows_affected", affected)
	return affected, nil
}
