package cacheinfra

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"

	"github.com/goliatone/go-db-middleware/store"
)

// Config holds the settings for the sturdyc-backed bounded result store.
type Config struct {
	// Capacity is the maximum number of entries the cache can store.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	NumShards int

	// TTL is the time-to-live for cached entries.
	TTL time.Duration

	// EvictionPercentage is what percentage of entries to evict when the
	// cache reaches capacity. Must be between 1 and 100.
	EvictionPercentage int
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
		validation.Field(&c.TTL, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// SturdycStore adapts a sturdyc client to the cache.ResultStore interface,
// trading the unbounded default for capacity and TTL limits.
type SturdycStore struct {
	client *sturdyc.Client[store.ResultSet]
	config Config
}

// NewSturdycStore validates cfg and builds the bounded backend.
//
// Version compatibility note: this assumes the sturdyc v1.x constructor
// signature; watch option mapping on upgrades.
func NewSturdycStore(cfg Config) (*SturdycStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[store.ResultSet](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
	)

	return &SturdycStore{client: client, config: cfg}, nil
}

// Lookup returns the entry for key while it is live.
func (s *SturdycStore) Lookup(key string) (store.ResultSet, bool) {
	return s.client.Get(key)
}

// Store caches rs under key with the configured TTL.
func (s *SturdycStore) Store(key string, rs store.ResultSet) {
	s.client.Set(key, rs)
}

// Delete removes the entry for key, if present.
func (s *SturdycStore) Delete(key string) {
	s.client.Delete(key)
}

// Len returns the number of live entries.
func (s *SturdycStore) Len() int {
	return s.client.Size()
}

// Reset drops every entry.
func (s *SturdycStore) Reset() {
	for _, key := range s.client.ScanKeys() {
		s.client.Delete(key)
	}
}
