// Package ordmap provides an ordered associative container: a mapping from
// keys to values, keyed by a total order, with logarithmic lookup and
// amortized sub-linear insert/erase, backed by contiguous, cache-friendly
// storage rather than a tree.
//
// # Design
//
// Map keeps three coordinated sorted regions instead of one:
//
//   - storage: the primary sorted array of entries.
//   - buffer: a small sorted array of entries pending merge into storage.
//   - erased: a sorted list of indices into storage marking dead slots
//     (tombstones).
//
// The logical contents of a Map is (storage ∖ erased) ∪ buffer, which is
// always a set: a new insert lands in storage via an O(1) tail append when
// the key is a new maximum, otherwise it lands in the small buffer, which
// is periodically folded back into storage. Erase either shrinks the
// buffer, pops a live tail entry from storage, or records a tombstone.
// Structural maintenance (merge, compaction, growth) happens lazily, on
// buffer/tombstone-list overflow, keeping amortized mutation cost bounded
// while preserving O(log n) lookup via three coordinated binary searches.
//
// # Concurrency
//
// A Map is not safe for concurrent use. External synchronization is
// required if a Map is shared across goroutines.
//
// # Iterator invalidation
//
// Any mutating call (Insert, Delete, Clear, Reserve, Merge) invalidates
// every outstanding Iterator for that Map. Using an iterator afterwards is
// undefined behavior and is not detected, even when [Debug] is set.
package ordmap
