package ordmap

// source identifies which region an iterator's current element comes from.
type source int

const (
	sourceEnd source = iota
	sourceStorage
	sourceBuffer
)

// cursor is a lazily-resolved sub-cursor into one region. An unresolved
// cursor carries no meaningful pos; it is materialized on first use via a
// binary search keyed by the element the iterator currently denotes.
//
// When this cursor is the "other" region (current is in the sibling
// region), pos is only meaningful together with forward: a forward cursor
// holds the first index whose key is greater than current; a backward
// cursor holds the last index whose key is less than current. These are
// two distinct candidates, not one reinterpreted as the other, so stepping
// in a new direction after the cursor was resolved for the old one forces
// a fresh resolution rather than reusing pos as-is.
type cursor struct {
	resolved bool
	forward  bool
	pos      int
}

// Iterator walks the logical sequence (storage ∖ erased) ∪ buffer without
// ever materializing it: at any time it holds at most two sub-cursors (one
// per region) plus a source tag saying which region "current" is in. The
// cursor for the region current is NOT in is left unresolved until the
// iterator is advanced, at which point it is computed via a binary search
// and cached.
//
// A forward Iterator and its reverse counterpart share this same type; the
// only difference is which cursor wins when both regions have a candidate
// (min for forward, max for reverse) and which of Next/Prev steps which way.
// See [Map.Begin], [Map.End], [Map.RBegin], [Map.REnd].
//
// The zero Iterator is not meaningful; obtain one from a Map method.
type Iterator[K any, V any] struct {
	m       *Map[K, V]
	reverse bool
	source  source
	s       cursor // resolved iff source == sourceStorage, or lazily on demand
	b       cursor // resolved iff source == sourceBuffer, or lazily on demand
}

// Valid reports whether the iterator denotes an element (false at end/rend).
func (it *Iterator[K, V]) Valid() bool {
	return it.source != sourceEnd
}

// Key returns the key the iterator currently denotes.
//
// Precondition: Valid().
func (it *Iterator[K, V]) Key() K {
	switch it.source {
	case sourceStorage:
		return it.m.storage[it.s.pos].Key
	case sourceBuffer:
		return it.m.buffer[it.b.pos].Key
	default:
		preconditionf("Key called on an invalid iterator")

		var zero K

		return zero
	}
}

// Value returns the value the iterator currently denotes.
//
// Precondition: Valid().
func (it *Iterator[K, V]) Value() V {
	switch it.source {
	case sourceStorage:
		return it.m.storage[it.s.pos].Value
	case sourceBuffer:
		return it.m.buffer[it.b.pos].Value
	default:
		preconditionf("Value called on an invalid iterator")

		var zero V

		return zero
	}
}

// Entry returns the key/value pair the iterator currently denotes.
//
// Precondition: Valid().
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{Key: it.Key(), Value: it.Value()}
}

// Equal reports whether it and other denote the same logical position in
// the same Map. Only the current region's cursor is compared, so no
// unresolved cursor is resolved.
func (it *Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if it.m != other.m || it.source != other.source {
		return false
	}

	switch it.source {
	case sourceEnd:
		return true
	case sourceStorage:
		return it.s.pos == other.s.pos
	case sourceBuffer:
		return it.b.pos == other.b.pos
	default:
		return false
	}
}

// Next advances the iterator to the next element in its iteration order
// (increasing key for a forward iterator, decreasing key for a reverse
// one).
//
// Precondition: Valid(). Advancing past end (or rend, for a reverse
// iterator) is undefined behavior.
func (it *Iterator[K, V]) Next() {
	if it.source == sourceEnd {
		preconditionf("Next called on an exhausted iterator")

		return
	}

	if it.reverse {
		it.stepBackward()
	} else {
		it.stepForward()
	}
}

// Prev moves the iterator to the previous element in its iteration order.
// Unlike Next, calling Prev on an end iterator is well defined: it lands on
// the last element in that iteration order (or stays at end/rend if the Map
// is empty).
//
// Precondition: the iterator must not already be at the position one
// before the beginning of its iteration order; decrementing past that is
// undefined behavior and is not detected.
func (it *Iterator[K, V]) Prev() {
	if it.reverse {
		it.stepForward()
	} else {
		it.stepBackward()
	}
}

// ensureS resolves the storage cursor for the given direction: when current
// is in buffer, the storage cursor becomes either the first live storage
// index whose key is greater than the current key (forward) or the last
// live storage index whose key is less than it (backward). current's key
// can never be present in storage, live or not, per the container's
// invariant that a key lives in exactly one region, so the two candidates
// are always adjacent around it. A cursor already resolved for the
// requested direction is left untouched; one resolved for the other
// direction (left stale by a prior step the opposite way) is re-resolved.
func (it *Iterator[K, V]) ensureS(forward bool) {
	if it.source == sourceStorage || it.source == sourceEnd {
		return
	}

	if it.s.resolved && it.s.forward == forward {
		return
	}

	key := it.m.buffer[it.b.pos].Key
	boundary := lowerBound(it.m.storage, key, it.m.compare)

	if forward {
		it.s.pos = it.m.firstLiveStorageFrom(boundary)
	} else {
		it.s.pos = it.m.lastLiveStorageFrom(boundary - 1)
	}

	it.s.resolved = true
	it.s.forward = forward
}

// ensureB resolves the buffer cursor for the given direction, symmetric to
// ensureS. Buffer carries no tombstones, so its backward candidate is
// simply one less than its forward one.
func (it *Iterator[K, V]) ensureB(forward bool) {
	if it.source == sourceBuffer || it.source == sourceEnd {
		return
	}

	if it.b.resolved && it.b.forward == forward {
		return
	}

	key := it.m.storage[it.s.pos].Key
	boundary := lowerBound(it.m.buffer, key, it.m.compare)

	if forward {
		it.b.pos = boundary
	} else {
		it.b.pos = boundary - 1
	}

	it.b.resolved = true
	it.b.forward = forward
}

// stepForward moves both cursors one logical step towards larger keys and
// re-selects current. When current is in storage, the storage cursor
// "self"-advances (it was already consumed); the buffer cursor is left as
// the still-valid forward candidate it already was, or freshly resolved as
// one if the last step moved the other way. Symmetric for buffer. At end,
// both cursors are simultaneously "self" (both fully exhausted).
func (it *Iterator[K, V]) stepForward() {
	it.ensureS(true)
	it.ensureB(true)

	// The cursor(s) advanced here are "self" right now, but if they lose
	// the selectForward race below they become "other" on the next step.
	// Tag them forward so a later step in the same direction can trust the
	// cached value without a binary search; a later step the other way
	// will see the mismatch and re-resolve instead of misreading it.
	switch it.source {
	case sourceStorage:
		it.s.pos = it.m.firstLiveStorageFrom(it.s.pos + 1)
		it.s.forward = true
	case sourceBuffer:
		it.b.pos++
		it.b.forward = true
	case sourceEnd:
		it.s.pos = it.m.firstLiveStorageFrom(it.s.pos + 1)
		it.b.pos++
		it.s.forward = true
		it.b.forward = true
	}

	it.selectForward()
}

// stepBackward is stepForward's mirror image, moving both cursors towards
// smaller keys.
func (it *Iterator[K, V]) stepBackward() {
	it.ensureS(false)
	it.ensureB(false)

	switch it.source {
	case sourceStorage:
		it.s.pos = it.m.lastLiveStorageFrom(it.s.pos - 1)
		it.s.forward = false
	case sourceBuffer:
		it.b.pos--
		it.b.forward = false
	case sourceEnd:
		it.s.pos = it.m.lastLiveStorageFrom(it.s.pos - 1)
		it.b.pos--
		it.s.forward = false
		it.b.forward = false
	}

	it.selectBackward()
}

// selectForward picks the region with the smaller head key as current,
// given both cursors already point at valid forward candidates (or past
// the end of their region).
func (it *Iterator[K, V]) selectForward() {
	sHas := it.s.pos < len(it.m.storage)
	bHas := it.b.pos < len(it.m.buffer)

	switch {
	case !sHas && !bHas:
		it.source = sourceEnd
	case !bHas:
		it.source = sourceStorage
	case !sHas:
		it.source = sourceBuffer
	case it.m.compare(it.m.storage[it.s.pos].Key, it.m.buffer[it.b.pos].Key) <= 0:
		it.source = sourceStorage
	default:
		it.source = sourceBuffer
	}
}

// selectBackward picks the region with the larger head key as current.
func (it *Iterator[K, V]) selectBackward() {
	sHas := it.s.pos >= 0
	bHas := it.b.pos >= 0

	switch {
	case !sHas && !bHas:
		it.source = sourceEnd
	case !bHas:
		it.source = sourceStorage
	case !sHas:
		it.source = sourceBuffer
	case it.m.compare(it.m.storage[it.s.pos].Key, it.m.buffer[it.b.pos].Key) >= 0:
		it.source = sourceStorage
	default:
		it.source = sourceBuffer
	}
}

// firstLiveStorageFrom returns the smallest index >= idx that is not
// tombstoned, or len(storage) if every remaining position is tombstoned.
func (m *Map[K, V]) firstLiveStorageFrom(idx int) int {
	epos := lowerBoundInt(m.erased, idx)
	for idx < len(m.storage) && epos < len(m.erased) && m.erased[epos] == idx {
		idx++
		epos++
	}

	return idx
}

// lastLiveStorageFrom returns the greatest index <= idx that is not
// tombstoned, or -1 if idx is already -1 or every remaining position going
// backward is tombstoned.
func (m *Map[K, V]) lastLiveStorageFrom(idx int) int {
	if idx < 0 {
		return idx
	}

	epos, ok := lastLE(m.erased, idx)
	for idx >= 0 && ok && m.erased[epos] == idx {
		idx--
		epos--
		ok = epos >= 0
	}

	return idx
}

// iteratorAtStorage builds a lazily-resolved forward iterator whose current
// element is the live storage entry at pos; the buffer cursor is left
// unresolved.
func (m *Map[K, V]) iteratorAtStorage(pos int) Iterator[K, V] {
	return Iterator[K, V]{m: m, source: sourceStorage, s: cursor{resolved: true, pos: pos}}
}

// iteratorAtBuffer builds a lazily-resolved forward iterator whose current
// element is the buffer entry at pos; the storage cursor is left
// unresolved.
func (m *Map[K, V]) iteratorAtBuffer(pos int) Iterator[K, V] {
	return Iterator[K, V]{m: m, source: sourceBuffer, b: cursor{resolved: true, pos: pos}}
}

// makeForward builds a fully-resolved forward iterator from two already
// forward-candidate positions (as produced by lowerBound/upperBound plus
// tombstone-skipping).
func (m *Map[K, V]) makeForward(sPos, bPos int) Iterator[K, V] {
	it := Iterator[K, V]{
		m: m,
		s: cursor{resolved: true, forward: true, pos: sPos},
		b: cursor{resolved: true, forward: true, pos: bPos},
	}
	it.selectForward()

	return it
}

// Begin returns an iterator to the smallest key, or an iterator equal to
// End if the Map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{m: m, source: sourceEnd, s: cursor{resolved: true, pos: -1}, b: cursor{resolved: true, pos: -1}}
	it.stepForward()

	return it
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{
		m: m, source: sourceEnd,
		s: cursor{resolved: true, pos: len(m.storage)},
		b: cursor{resolved: true, pos: len(m.buffer)},
	}
}

// RBegin returns a reverse iterator to the largest key, or REnd if the Map
// is empty.
func (m *Map[K, V]) RBegin() Iterator[K, V] {
	it := Iterator[K, V]{
		m: m, reverse: true, source: sourceEnd,
		s: cursor{resolved: true, pos: len(m.storage)},
		b: cursor{resolved: true, pos: len(m.buffer)},
	}
	it.stepBackward()

	return it
}

// REnd returns the before-the-beginning iterator for reverse iteration.
func (m *Map[K, V]) REnd() Iterator[K, V] {
	return Iterator[K, V]{m: m, reverse: true, source: sourceEnd, s: cursor{resolved: true, pos: -1}, b: cursor{resolved: true, pos: -1}}
}

// All returns a forward range-over-func sequence over the Map's logical
// contents in ascending key order, for use with `for k, v := range m.All()`.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns a reverse range-over-func sequence over the Map's
// logical contents in descending key order.
func (m *Map[K, V]) Backward() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for it := m.RBegin(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
