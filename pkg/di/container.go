// Package di wires the middleware stack into a ready-to-use accessor: one
// store locator, one query cache, one retry policy, one logger.
package di

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-db-middleware/cache"
	"github.com/goliatone/go-db-middleware/concurrent"
	"github.com/goliatone/go-db-middleware/middleware"
	"github.com/goliatone/go-db-middleware/store"
)

// Container holds the shared pieces of the data-access stack. The query
// cache is the only shared mutable state; connections are opened per call
// and never reused across operations.
type Container struct {
	locator string
	cache   *cache.QueryCache
	retry   middleware.RetryConfig
	log     *slog.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithCache replaces the default query cache.
func WithCache(qc *cache.QueryCache) Option {
	return func(c *Container) {
		if qc != nil {
			c.cache = qc
		}
	}
}

// WithRetryConfig replaces the default retry policy.
func WithRetryConfig(cfg middleware.RetryConfig) Option {
	return func(c *Container) {
		c.retry = cfg
	}
}

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}

// NewContainer builds a container for the store behind locator. Without
// options it uses an unbounded query cache, the default 3-attempt retry
// policy and slog.Default.
func NewContainer(locator string, opts ...Option) (*Container, error) {
	c := &Container{
		locator: locator,
		cache:   cache.New(),
		retry:   middleware.DefaultRetryConfig(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.retry.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Locator returns the store locator the container was built for.
func (c *Container) Locator() string {
	return c.locator
}

// Cache returns the container's query cache.
func (c *Container) Cache() *cache.QueryCache {
	return c.cache
}

// RetryConfig returns a copy of the container's retry policy.
func (c *Container) RetryConfig() middleware.RetryConfig {
	return c.retry
}

// Execute runs one query inside its own connection scope and transaction.
func (c *Container) Execute(ctx context.Context, q store.Query) (store.ResultSet, error) {
	return middleware.ExecuteScoped(ctx, c.locator, q, store.WithLogger(c.log))
}

// Exec runs a row-less statement inside its own connection scope and
// transaction, reporting rows affected.
func (c *Container) Exec(ctx context.Context, q store.Query) (int64, error) {
	return middleware.ExecScoped(ctx, c.locator, q, store.WithLogger(c.log))
}

// CachedExecute consults the query cache before touching the store. A hit
// never opens a connection; a miss executes inside a fresh connection scope
// and populates the cache.
func (c *Container) CachedExecute(ctx context.Context, q store.Query) (store.ResultSet, error) {
	if rs, ok := c.cache.Peek(q); ok {
		return rs, nil
	}
	return middleware.WithConnection(ctx, c.locator, func(ctx context.Context, conn *store.Conn) (store.ResultSet, error) {
		return c.cache.Execute(ctx, middleware.WithQueryLogging(conn, c.log), q)
	}, store.WithLogger(c.log))
}

// ExecuteWithRetry runs one query under the container's retry policy. The
// connection scope sits outside the policy, so every attempt reuses the
// scope's connection and open failures are not retried.
func (c *Container) ExecuteWithRetry(ctx context.Context, q store.Query) (store.ResultSet, error) {
	return middleware.WithConnection(ctx, c.locator, func(ctx context.Context, conn *store.Conn) (store.ResultSet, error) {
		return middleware.WithRetry(ctx, c.retry, func(ctx context.Context) (store.ResultSet, error) {
			return conn.Execute(ctx, q)
		})
	}, store.WithLogger(c.log))
}

// FetchConcurrently runs both read queries concurrently, each in its own
// connection scope, and returns both result sets in fixed order.
func (c *Container) FetchConcurrently(ctx context.Context, first, second store.Query) (concurrent.Pair[store.ResultSet, store.ResultSet], error) {
	return concurrent.FetchQueries(ctx, c.locator, first, second, store.WithLogger(c.log))
}
