package store

import (
	"github.com/cespare/xxhash/v2"
)

// Query is an immutable pair of statement text and ordered bind parameters.
type Query struct {
	Statement string
	Args      []any
}

// NewQuery builds a Query from a statement and optional bind parameters.
func NewQuery(statement string, args ...any) Query {
	return Query{Statement: statement, Args: args}
}

// Identity returns the textual identity of the query as used by the query
// cache: the statement text alone. Bind parameters are deliberately not part
// of the identity, which means two queries sharing the same text but bound
// to different values collide under the default cache key. See
// cache.StatementArgsKey for the opt-in alternative.
func (q Query) Identity() string {
	return q.Statement
}

// Fingerprint returns a stable xxhash64 digest of the statement text.
// It is meant for log correlation, not for cache identity.
func (q Query) Fingerprint() uint64 {
	return xxhash.Sum64String(q.Statement)
}

// Row is an ordered sequence of column values.
type Row []any

// ResultSet is the ordered output of exactly one query execution. It is
// immutable once returned; callers must not mutate Rows they did not create.
type ResultSet struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the result set contains no rows.
func (rs ResultSet) Empty() bool {
	return len(rs.Rows) == 0
}
