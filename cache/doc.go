// Package cache provides the process-wide query-result cache consulted
// before execution and populated after a miss.
//
// # Overview
//
// The package exports:
//
//   - QueryCache: the check-then-populate cache around a store.Querier
//   - ResultStore: the pluggable backend holding cached result sets
//   - KeyFunc: the strategy mapping a query to its cache key
//
// The default backend is an unbounded concurrent map with process-lifetime
// scope: no eviction, no TTL, trusted unconditionally once populated. That
// is appropriate only for workloads with a small, stable set of distinct
// queries; NewBoundedStore offers a capacity/TTL-bounded alternative for
// anything else.
//
// # Key Strategy
//
// The default key is the statement text alone (StatementKey). Two queries
// sharing identical text but different bind values therefore collide and
// the second caller is served the first caller's rows. This is a latent
// correctness gap carried over from the observed behavior, kept deliberately
// rather than fixed silently; StatementArgsKey is the explicit opt-in fix.
//
// # Concurrency
//
// Individual backend reads and writes are atomic, but the check-then-populate
// sequence is not serialized: concurrent callers racing the same uncached
// query may both execute it and both write the backend, last writer wins.
// Duplicate recomputation is accepted; results for one query are assumed
// deterministic, so this is an inefficiency, not a correctness violation.
package cache
