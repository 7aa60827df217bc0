package cache

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-db-middleware/store"
)

// KeySeparator delimits cache key segments.
const KeySeparator = "::"

// KeyFunc maps a query to its cache key.
type KeyFunc func(q store.Query) string

// StatementKey is the default key strategy: the statement text alone, as in
// the observed behavior. Bind values are NOT part of the key, so queries
// sharing text but bound to different values collide. See the package
// documentation before relying on this with parameterized statements.
func StatementKey(q store.Query) string {
	return q.Identity()
}

// StatementArgsKey appends the bind values to the statement text, closing
// the collision gap StatementKey carries. Opt in via WithKeyFunc.
func StatementArgsKey(q store.Query) string {
	if len(q.Args) == 0 {
		return q.Statement
	}

	parts := make([]string, 0, len(q.Args)+1)
	parts = append(parts, q.Statement)
	for _, arg := range q.Args {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	return strings.Join(parts, KeySeparator)
}
