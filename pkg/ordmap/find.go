package ordmap

// Find returns an iterator to key's entry, or an iterator equal to End if
// key is not present.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	pos, found := findEqual(m.storage, key, m.compare)
	if found {
		if _, tombstoned := findInt(m.erased, pos); !tombstoned {
			return m.iteratorAtStorage(pos)
		}
	}

	if bPos, bFound := findEqual(m.buffer, key, m.compare); bFound {
		return m.iteratorAtBuffer(bPos)
	}

	return m.End()
}

// Get returns the value stored under key and true, or the zero value and
// false if key is not present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.Find(key)
	if !it.Valid() {
		var zero V

		return zero, false
	}

	return it.Value(), true
}

// Count returns 1 if key is present, 0 otherwise. It exists for parity with
// the map/multimap family of containers; for Map (unique keys) it is
// equivalent to a boolean presence check.
func (m *Map[K, V]) Count(key K) int {
	if _, ok := m.Get(key); ok {
		return 1
	}

	return 0
}

// LowerBound returns an iterator to the first entry with a key >= target,
// or End if none.
func (m *Map[K, V]) LowerBound(target K) Iterator[K, V] {
	sPos := m.firstLiveStorageFrom(lowerBound(m.storage, target, m.compare))
	bPos := lowerBound(m.buffer, target, m.compare)

	return m.makeForward(sPos, bPos)
}

// UpperBound returns an iterator to the first entry with a key > target, or
// End if none.
func (m *Map[K, V]) UpperBound(target K) Iterator[K, V] {
	sPos := m.firstLiveStorageFrom(upperBound(m.storage, target, m.compare))
	bPos := upperBound(m.buffer, target, m.compare)

	return m.makeForward(sPos, bPos)
}

// EqualRange returns [LowerBound(key), UpperBound(key)). Since keys are
// unique, the range spans at most one entry.
func (m *Map[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// Range returns a forward range-over-func sequence over every entry with
// key in [lo, hi), for `for k, v := range m.Range(lo, hi)`.
func (m *Map[K, V]) Range(lo, hi K) func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		end := m.LowerBound(hi)

		for it := m.LowerBound(lo); it.Valid() && !it.Equal(end); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
