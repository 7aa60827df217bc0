package cacheinfra

import (
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-db-middleware/store"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected the default config to validate, got %v", err)
	}
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero value", Config{}},
		{"negative capacity", Config{Capacity: -1, NumShards: 8, TTL: time.Minute, EvictionPercentage: 10}},
		{"zero shards", Config{Capacity: 100, NumShards: 0, TTL: time.Minute, EvictionPercentage: 10}},
		{"zero ttl", Config{Capacity: 100, NumShards: 8, TTL: 0, EvictionPercentage: 10}},
		{"eviction out of range", Config{Capacity: 100, NumShards: 8, TTL: time.Minute, EvictionPercentage: 101}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Errorf("expected %+v to be invalid", tc.cfg)
			}
		})
	}
}

func TestNewSturdycStore_RejectsInvalidConfig(t *testing.T) {
	if _, err := NewSturdycStore(Config{}); err == nil {
		t.Fatal("expected the zero config to be rejected")
	}
}

func TestSturdycStore_RoundTrip(t *testing.T) {
	s, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rs := store.ResultSet{
		Columns: []string{"id", "name"},
		Rows:    []store.Row{{int64(1), "a"}, {int64(2), "b"}},
	}

	if _, ok := s.Lookup("q"); ok {
		t.Error("expected a miss before Store")
	}

	s.Store("q", rs)
	got, ok := s.Lookup("q")
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if !reflect.DeepEqual(got, rs) {
		t.Errorf("expected the stored result back, got %v", got)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len())
	}

	s.Delete("q")
	if _, ok := s.Lookup("q"); ok {
		t.Error("expected a miss after Delete")
	}
}

func TestSturdycStore_Reset(t *testing.T) {
	s, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rs := store.ResultSet{Columns: []string{"n"}}
	s.Store("a", rs)
	s.Store("b", rs)
	s.Store("c", rs)

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("expected an empty store after Reset, got %d entries", s.Len())
	}
}
