package cache

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-db-middleware/store"
)

// memoryStore is the default ResultStore: an unbounded concurrent map with
// process-lifetime scope. Individual operations are atomic; nothing beyond
// that is serialized.
type memoryStore struct {
	entries *xsync.MapOf[string, store.ResultSet]
}

var _ ResultStore = (*memoryStore)(nil)

// NewMemoryStore returns the unbounded in-process backend. Entries are never
// evicted and never expire.
func NewMemoryStore() ResultStore {
	return &memoryStore{entries: xsync.NewMapOf[string, store.ResultSet]()}
}

func (m *memoryStore) Lookup(key string) (store.ResultSet, bool) {
	return m.entries.Load(key)
}

func (m *memoryStore) Store(key string, rs store.ResultSet) {
	m.entries.Store(key, rs)
}

func (m *memoryStore) Delete(key string) {
	m.entries.Delete(key)
}

func (m *memoryStore) Len() int {
	return m.entries.Size()
}

func (m *memoryStore) Reset() {
	m.entries.Clear()
}
