package ordmap

// Entry is a single key/value pair as stored in a Map's regions.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// compareFunc orders keys the way [cmp.Compare] does: negative if a < b,
// zero if equal, positive if a > b.
type compareFunc[K any] func(a, b K) int
