package cache

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-db-middleware/store"
)

// ResultStore holds cached result sets keyed by query identity. Lookup and
// Store must each be individually atomic under concurrent use; the
// check-then-populate sequence around them is deliberately not serialized.
type ResultStore interface {
	Lookup(key string) (store.ResultSet, bool)
	Store(key string, rs store.ResultSet)
	Delete(key string)
	Len() int
	Reset()
}

// QueryCache consults a ResultStore before execution and populates it after
// a miss. It is an explicit object rather than package-global state so tests
// can reset it and callers can scope its lifetime.
type QueryCache struct {
	results ResultStore
	key     KeyFunc
	log     *slog.Logger
}

// Option configures a QueryCache.
type Option func(*QueryCache)

// WithResultStore replaces the default unbounded backend.
func WithResultStore(rs ResultStore) Option {
	return func(c *QueryCache) {
		if rs != nil {
			c.results = rs
		}
	}
}

// WithKeyFunc replaces the default StatementKey strategy.
func WithKeyFunc(fn KeyFunc) Option {
	return func(c *QueryCache) {
		if fn != nil {
			c.key = fn
		}
	}
}

// WithLogger replaces the default slog.Default logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *QueryCache) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a QueryCache. Without options it uses the unbounded in-process
// backend and the statement-text key.
func New(opts ...Option) *QueryCache {
	c := &QueryCache{
		results: NewMemoryStore(),
		key:     StatementKey,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute looks the query up by its key. On a hit the stored result set is
// returned without touching the querier. On a miss the query is executed,
// the result stored under the key, and returned. An execution error
// propagates and nothing is stored, so the next call re-executes.
func (c *QueryCache) Execute(ctx context.Context, q store.Querier, query store.Query) (store.ResultSet, error) {
	key := c.key(query)

	if rs, ok := c.results.Lookup(key); ok {
		c.log.Debug("cache: hit", "fingerprint", query.Fingerprint())
		return rs, nil
	}

	rs, err := q.Execute(ctx, query)
	if err != nil {
		return store.ResultSet{}, err
	}

	c.results.Store(key, rs)
	c.log.Debug("cache: populated", "fingerprint", query.Fingerprint(), "rows", len(rs.Rows))
	return rs, nil
}

// Peek reports whether a result set is already cached for the query,
// without executing anything. Callers use it to skip acquiring a connection
// entirely on a hit.
func (c *QueryCache) Peek(query store.Query) (store.ResultSet, bool) {
	return c.results.Lookup(c.key(query))
}

// Invalidate drops the entry for a query, if present.
func (c *QueryCache) Invalidate(query store.Query) {
	c.results.Delete(c.key(query))
}

// Len returns the number of cached result sets.
func (c *QueryCache) Len() int {
	return c.results.Len()
}

// Reset drops every entry. Meant for tests and cache-scoped lifecycles.
func (c *QueryCache) Reset() {
	c.results.Reset()
}
