package store

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	// Drivers selected by locator scheme; see driverFor.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Querier executes statements against the store. It is implemented by *Conn
// and *Tx so the same read path works inside and outside a transaction, and
// so callers can decorate execution (logging, caching) without caring which
// one they hold.
type Querier interface {
	// Execute runs a row-returning statement and materializes every row.
	Execute(ctx context.Context, q Query) (ResultSet, error)
	// Exec runs a statement that returns no rows and reports rows affected.
	Exec(ctx context.Context, q Query) (int64, error)
}

// Interface assertions so both execution handles satisfy Querier.
var (
	_ Querier = (*Conn)(nil)
	_ Querier = (*Tx)(nil)
)

// Conn is one live session against the backing store. It is exclusively
// owned by the scope that created it for the scope's lifetime and must not
// be shared across concurrent scopes. Release it exactly once via Close.
type Conn struct {
	id      string
	locator string
	db      *sql.DB
	log     *slog.Logger
}

// Option configures a Conn at Open time.
type Option func(*Conn)

// WithLogger replaces the connection's logger. The default is slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Conn) {
		if log != nil {
			c.log = log
		}
	}
}

// driverFor maps a locator to a registered database/sql driver name.
// postgres:// and postgresql:// route to lib/pq; everything else is treated
// as a SQLite path or DSN.
func driverFor(locator string) string {
	if strings.HasPrefix(locator, "postgres://") || strings.HasPrefix(locator, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// Open acquires a new session against the store behind locator. The session
// is verified with a ping before Open returns, so an unreachable store
// surfaces immediately as a *ConnectionError and no work runs against a dead
// handle. Each Open owns exactly one underlying session; there is no pool.
func Open(ctx context.Context, locator string, opts ...Option) (*Conn, error) {
	conn := &Conn{
		id:      uuid.NewString(),
		locator: locator,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(conn)
	}

	db, err := sql.Open(driverFor(locator), locator)
	if err != nil {
		return nil, &ConnectionError{Locator: locator, Err: err}
	}

	// One live session per scope. The database/sql handle is a pool by
	// default; pinning it to a single connection preserves the
	// open-use-close lifecycle the middleware is built around.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Locator: locator, Err: err}
	}

	conn.db = db
	conn.log.Debug("store: connection opened", "conn_id", conn.id, "locator", locator)
	return conn, nil
}

// ID returns the unique identifier assigned to this connection at Open.
// It appears in every log line the connection emits.
func (c *Conn) ID() string {
	return c.id
}

// Logger returns the logger the connection was opened with.
func (c *Conn) Logger() *slog.Logger {
	return c.log
}

// Close releases the session. It is best effort: a close failure is logged
// and swallowed so it can never mask the outcome of the operation that used
// the connection.
func (c *Conn) Close() {
	if err := c.db.Close(); err != nil {
		c.log.Warn("store: connection close failed", "conn_id", c.id, "error", err)
		return
	}
	c.log.Debug("store: connection closed", "conn_id", c.id)
}

// Execute runs a row-returning statement and materializes the full result
// set before returning. A failed execution returns an *ExecutionError and
// never a partial ResultSet.
func (c *Conn) Execute(ctx context.Context, q Query) (ResultSet, error) {
	return execute(ctx, c.db, q)
}

// Exec runs a statement that returns no rows and reports rows affected.
func (c *Conn) Exec(ctx context.Context, q Query) (int64, error) {
	return exec(ctx, c.db, q)
}

// Begin starts a transaction on the connection's session.
func (c *Conn) Begin(ctx context.Context) (*Tx, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &ExecutionError{Statement: "BEGIN", Err: err}
	}
	return &Tx{tx: tx}, nil
}

// Tx is a transaction on a Conn. Exactly one of Commit or Rollback must be
// called, exactly once; the transaction wrapper in the middleware package
// enforces that discipline.
type Tx struct {
	tx *sql.Tx
}

// Execute runs a row-returning statement inside the transaction.
func (t *Tx) Execute(ctx context.Context, q Query) (ResultSet, error) {
	return execute(ctx, t.tx, q)
}

// Exec runs a statement that returns no rows inside the transaction.
func (t *Tx) Exec(ctx context.Context, q Query) (int64, error) {
	return exec(ctx, t.tx, q)
}

// Commit commits the transaction's pending changes.
func (t *Tx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return &ExecutionError{Statement: "COMMIT", Err: err}
	}
	return nil
}

// Rollback discards the transaction's pending changes.
func (t *Tx) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		return &ExecutionError{Statement: "ROLLBACK", Err: err}
	}
	return nil
}

// runner is the common surface of *sql.DB and *sql.Tx the package needs.
type runner interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execute(ctx context.Context, r runner, q Query) (ResultSet, error) {
	rows, err := r.QueryContext(ctx, q.Statement, q.Args...)
	if err != nil {
		return ResultSet{}, &ExecutionError{Statement: q.Statement, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return ResultSet{}, &ExecutionError{Statement: q.Statement, Err: err}
	}

	rs := ResultSet{Columns: cols}
	for rows.Next() {
		values := make(Row, len(cols))
		scan := make([]any, len(cols))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return ResultSet{}, &ExecutionError{Statement: q.Statement, Err: err}
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return ResultSet{}, &ExecutionError{Statement: q.Statement, Err: err}
	}
	return rs, nil
}

func exec(ctx context.Context, r runner, q Query) (int64, error) {
	res, err := r.ExecContext(ctx, q.Statement, q.Args...)
	if err != nil {
		return 0, &ExecutionError{Statement: q.Statement, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		// Drivers without RowsAffected support still executed the statement.
		return 0, nil
	}
	return affected, nil
}
