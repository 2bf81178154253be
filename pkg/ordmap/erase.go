package ordmap

// Delete removes key from the Map, returning 1 if it was present and 0
// otherwise. Deleting a missing key is not an error; it is an ordinary
// result.
func (m *Map[K, V]) Delete(key K) int {
	pos, found := findEqual(m.storage, key, m.compare)
	if found {
		if _, tombstoned := findInt(m.erased, pos); tombstoned {
			// Logically absent from storage already; it cannot also be
			// live in buffer (invariant 5), so the key isn't present.
			return 0
		}

		m.deleteStorageAt(pos)

		return 1
	}

	if bPos, bFound := findEqual(m.buffer, key, m.compare); bFound {
		m.buffer = eraseAt(m.buffer, bPos)

		return 1
	}

	return 0
}

// DeleteIterator removes the entry it currently denotes and returns an
// iterator to the next logical element. it must belong to this Map and
// must be Valid().
func (m *Map[K, V]) DeleteIterator(it Iterator[K, V]) Iterator[K, V] {
	if it.m != m {
		preconditionf("DeleteIterator called with an iterator from a different Map")

		return m.End()
	}

	switch it.source {
	case sourceStorage:
		key := m.storage[it.s.pos].Key
		m.deleteStorageAt(it.s.pos)

		return m.LowerBound(key)
	case sourceBuffer:
		key := m.buffer[it.b.pos].Key
		m.buffer = eraseAt(m.buffer, it.b.pos)

		return m.LowerBound(key)
	default:
		preconditionf("DeleteIterator called with an invalid iterator")

		return m.End()
	}
}

// deleteStorageAt removes the live (non-tombstoned) storage entry at pos:
// a true tail pop if pos is the last index (cascading through any
// tombstones that become the new tail), otherwise a tombstone recorded in
// erased, triggering compaction if that fills erased to capacity.
func (m *Map[K, V]) deleteStorageAt(pos int) {
	if pos == len(m.storage)-1 {
		m.popStorageTail()

		for len(m.erased) > 0 && m.erased[len(m.erased)-1] == len(m.storage)-1 {
			m.erased = m.erased[:len(m.erased)-1]
			m.popStorageTail()
		}

		return
	}

	m.erased = insertSortedInt(m.erased, pos)
	m.maybeCompactForErasedOverflow()
}

// popStorageTail drops the last storage entry, clearing its slot so the
// dropped value doesn't stay reachable through the backing array.
func (m *Map[K, V]) popStorageTail() {
	n := len(m.storage) - 1

	var zero Entry[K, V]

	m.storage[n] = zero
	m.storage = m.storage[:n]
}
