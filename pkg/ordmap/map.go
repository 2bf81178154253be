package ordmap

import "cmp"

// defaultCapacity is the initial capacity a zero-value-like Map starts at.
const defaultCapacity = 8

// Map is an ordered associative container keyed by K with values V.
//
// The zero value is not usable; construct with [New] or [NewFunc].
type Map[K any, V any] struct {
	compare compareFunc[K]

	storage []Entry[K, V] // sorted by key; live entries plus tombstoned slots
	buffer  []Entry[K, V] // sorted by key; pending merge into storage
	erased  []int         // sorted ascending indices into storage; tombstones
}

// New returns an empty Map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty Map ordered by the given comparator. compare
// must implement a strict weak ordering and must not mutate the Map (it is
// called from within Map's own operations).
func NewFunc[K any, V any](compare func(a, b K) int) *Map[K, V] {
	if compare == nil {
		panic("ordmap: compare is nil")
	}

	m := &Map[K, V]{compare: compare}
	m.growTo(defaultCapacity)

	return m
}

// Collect builds a Map from a sequence of key/value pairs, in the iteration
// order given, using [New]'s natural ordering.
func Collect[K cmp.Ordered, V any](seq func(yield func(K, V) bool)) *Map[K, V] {
	return CollectFunc[K, V](cmp.Compare[K], seq)
}

// CollectFunc builds a Map from a sequence of key/value pairs using an
// explicit comparator.
func CollectFunc[K any, V any](compare func(a, b K) int, seq func(yield func(K, V) bool)) *Map[K, V] {
	m := NewFunc[K, V](compare)

	seq(func(k K, v V) bool {
		m.Insert(k, v)

		return true
	})

	return m
}

// bufferCapacityFor computes cap(buffer)/cap(erased) for a given cap(storage),
// per the sizing rule of floor(sqrt(storageCap)), floored to 1 whenever
// storageCap > 0 (storageCap == 0 yields 0, keeping a freshly-zeroed Map
// fully empty).
func bufferCapacityFor(storageCap int) int {
	if storageCap <= 0 {
		return 0
	}

	c := isqrt(storageCap)
	if c < 1 {
		c = 1
	}

	return c
}

// isqrt returns floor(sqrt(n)) for n >= 0 using integer arithmetic only, so
// capacity planning never depends on floating point rounding.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}

	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}

// growTo allocates fresh backing arrays at the given storage capacity,
// discarding any existing contents. Used only by constructors, where the
// Map starts empty.
func (m *Map[K, V]) growTo(storageCap int) {
	bufCap := bufferCapacityFor(storageCap)
	m.storage = make([]Entry[K, V], 0, storageCap)
	m.buffer = make([]Entry[K, V], 0, bufCap)
	m.erased = make([]int, 0, bufCap)
}

// Len returns the logical number of entries: (storage ∖ erased) ∪ buffer.
func (m *Map[K, V]) Len() int {
	return len(m.storage) - len(m.erased) + len(m.buffer)
}

// Empty reports whether the Map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

// Clear removes every entry, dropping all references so the garbage
// collector can reclaim them, but keeps the current capacities.
func (m *Map[K, V]) Clear() {
	clear(m.storage)
	clear(m.buffer)
	m.storage = m.storage[:0]
	m.buffer = m.buffer[:0]
	m.erased = m.erased[:0]
}

// KeyCompare returns the comparator used to order keys.
func (m *Map[K, V]) KeyCompare() func(a, b K) int {
	return m.compare
}

// StorageCap, BufferCap and ErasedCap expose the current capacities of the
// three regions. They exist for tests and benchmarks that want to observe
// the structural maintenance policy; ordinary callers don't need them.
func (m *Map[K, V]) StorageCap() int { return cap(m.storage) }
func (m *Map[K, V]) BufferCap() int  { return cap(m.buffer) }
func (m *Map[K, V]) ErasedCap() int  { return cap(m.erased) }

// StorageLen, BufferLen and ErasedLen expose the current physical lengths
// of the three regions, for the same reason.
func (m *Map[K, V]) StorageLen() int { return len(m.storage) }
func (m *Map[K, V]) BufferLen() int  { return len(m.buffer) }
func (m *Map[K, V]) ErasedLen() int  { return len(m.erased) }

// Reserve grows storage capacity to at least newCap, compacting out
// tombstones and merging the buffer back in as a side effect. newCap must
// exceed the current storage capacity and must be at least the Map's
// current length (live storage entries plus buffered ones), since that is
// the minimum the merged result has to fit.
//
// Reserve offers the strong exception-safety guarantee at the design level:
// in Go this shows up only as "no partial mutation on allocation failure",
// which make's OOM panic does not let callers recover from anyway, so the
// guarantee is structural (build the new arrays fully before touching the
// Map's fields) rather than error-returning.
func (m *Map[K, V]) Reserve(newCap int) {
	if newCap <= cap(m.storage) {
		preconditionf("Reserve(%d) does not exceed current capacity %d", newCap, cap(m.storage))

		return
	}

	// Check against the logical length (which already excludes erased
	// slots) before compacting: compactOut rewrites storage's backing array
	// in place, so a rejected call must return before reaching it.
	if newCap < m.Len() {
		preconditionf("Reserve(%d) is smaller than the Map's current length %d", newCap, m.Len())

		return
	}

	// Compact tombstones out of the old storage first so the merge below
	// only ever has to reason about live entries.
	live := compactOut(m.storage, m.erased)

	bufCap := bufferCapacityFor(newCap)

	newStorage := make([]Entry[K, V], len(live), newCap)
	newBuffer := make([]Entry[K, V], 0, bufCap)
	newErased := make([]int, 0, bufCap)

	copy(newStorage, live)

	merged := twoWayMerge(newStorage[:len(live)], m.buffer, m.compare)

	clear(m.storage)
	clear(m.buffer)

	m.storage = merged
	m.buffer = newBuffer
	m.erased = newErased
}

// Merge flattens buffer and erased into storage: tombstones are compacted
// out and buffer is folded in, in place, without changing capacity unless
// the combined size would overflow it (in which case it behaves like
// Reserve(2*cap(storage))). Merge is idempotent and never changes the
// Map's observable content.
func (m *Map[K, V]) Merge() {
	if len(m.storage)+len(m.buffer) > cap(m.storage) {
		m.Reserve(2 * cap(m.storage))

		return
	}

	m.storage = compactOut(m.storage, m.erased)
	m.erased = m.erased[:0]

	m.storage = twoWayMerge(m.storage, m.buffer, m.compare)
	clear(m.buffer)
	m.buffer = m.buffer[:0]
}

// maybeMergeForBufferInsert implements merge decision 1 of the spec: called
// when the buffer is full and a new key needs to land there. It either
// reserves (which absorbs the buffer) or compacts+merges in place.
func (m *Map[K, V]) maybeMergeForBufferInsert() {
	if len(m.storage)+len(m.buffer) > cap(m.storage) {
		m.Reserve(2 * cap(m.storage))

		return
	}

	if len(m.erased) > 0 {
		m.storage = compactOut(m.storage, m.erased)
		m.erased = m.erased[:0]
	}

	m.storage = twoWayMerge(m.storage, m.buffer, m.compare)
	clear(m.buffer)
	m.buffer = m.buffer[:0]
}

// maybeCompactForErasedOverflow implements merge decision 2: called after
// erase pushes len(erased) to cap(erased).
func (m *Map[K, V]) maybeCompactForErasedOverflow() {
	if len(m.erased) < cap(m.erased) {
		return
	}

	m.storage = compactOut(m.storage, m.erased)
	m.erased = m.erased[:0]
}
