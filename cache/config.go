package cache

import (
	"time"

	"github.com/goliatone/go-db-middleware/internal/cacheinfra"
)

// Config exposes the bounded backend's options for consumers of the cache
// package. The zero value is not valid; start from DefaultConfig.
type Config struct {
	// Capacity is the maximum number of cached result sets.
	Capacity int

	// NumShards controls how the backend shards entries for concurrent access.
	NumShards int

	// TTL is how long a cached result set stays trusted.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted when capacity is hit.
	EvictionPercentage int
}

// DefaultConfig returns the bounded backend defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewBoundedStore builds the capacity/TTL-bounded ResultStore backend. Use
// it with WithResultStore for workloads whose distinct-query set is neither
// small nor stable enough for the unbounded default.
func NewBoundedStore(cfg Config) (ResultStore, error) {
	return cacheinfra.NewSturdycStore(cfg.toInternal())
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
	}
}
