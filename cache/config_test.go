package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-db-middleware/store"
)

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected the default config to be valid, got %v", err)
	}

	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Capacity = 0 }},
		{"zero shards", func(c *Config) { c.NumShards = 0 }},
		{"zero ttl", func(c *Config) { c.TTL = 0 }},
		{"eviction over 100", func(c *Config) { c.EvictionPercentage = 150 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected %+v to be invalid", cfg)
			}
		})
	}
}

func TestNewBoundedStore_RejectsInvalidConfig(t *testing.T) {
	_, err := NewBoundedStore(Config{})
	if err == nil {
		t.Fatal("expected the zero config to be rejected")
	}
}

func TestBoundedStore_Contract(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TTL = time.Minute

	bounded, err := NewBoundedStore(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rs := store.ResultSet{Columns: []string{"id"}, Rows: []store.Row{{int64(1)}}}

	bounded.Store("k", rs)
	got, ok := bounded.Lookup("k")
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if !reflect.DeepEqual(got, rs) {
		t.Errorf("expected the stored result back, got %v", got)
	}

	bounded.Delete("k")
	if _, ok := bounded.Lookup("k"); ok {
		t.Error("expected a miss after Delete")
	}

	bounded.Store("a", rs)
	bounded.Store("b", rs)
	bounded.Reset()
	if bounded.Len() != 0 {
		t.Errorf("expected an empty store after Reset, got %d entries", bounded.Len())
	}
}

func TestQueryCache_WithBoundedBackend(t *testing.T) {
	bounded, err := NewBoundedStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	querier := &countingQuerier{result: usersResult()}
	qc := New(WithResultStore(bounded))
	q := store.NewQuery(`SELECT id, name FROM users`)

	for i := 0; i < 3; i++ {
		if _, err := qc.Execute(context.Background(), querier, q); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if querier.executeCount() != 1 {
		t.Errorf("expected one execution against the bounded backend, got %d", querier.executeCount())
	}
}
