package ordmap

// Insert adds key/value to the Map. If key is already present, Insert
// leaves its value untouched and returns the existing position with
// inserted == false (standard associative-container semantics: Insert
// never updates). Use [Map.Set] for upsert semantics.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	if m.isTailCandidate(key) {
		return m.appendTail(key, value)
	}

	pos, found := findEqual(m.storage, key, m.compare)
	if !found {
		return m.insertBuffer(key, value)
	}

	if ePos, tombstoned := findInt(m.erased, pos); tombstoned {
		m.erased = removeIntAt(m.erased, ePos)
		m.storage[pos].Value = value

		return m.iteratorAtStorage(pos), true
	}

	return m.iteratorAtStorage(pos), false
}

// Set inserts key/value, overwriting the value if key is already present.
// It is not part of the original container's contract (spec.md §9 notes
// the source's Insert intentionally never updates) but is a natural,
// non-conflicting idiomatic-Go addition for callers who want upsert
// semantics without a separate Get+Insert dance.
func (m *Map[K, V]) Set(key K, value V) {
	it, inserted := m.Insert(key, value)
	if inserted {
		return
	}

	switch it.source {
	case sourceStorage:
		m.storage[it.s.pos].Value = value
	case sourceBuffer:
		m.buffer[it.b.pos].Value = value
	}
}

// isTailCandidate reports whether key exceeds the maximum key currently
// held in both storage and buffer (or the corresponding region is empty),
// making it eligible for the O(1) tail-append fast path.
func (m *Map[K, V]) isTailCandidate(key K) bool {
	if n := len(m.storage); n > 0 && m.compare(key, m.storage[n-1].Key) <= 0 {
		return false
	}

	if n := len(m.buffer); n > 0 && m.compare(key, m.buffer[n-1].Key) <= 0 {
		return false
	}

	return true
}

// appendTail implements the tail fast path: key is strictly greater than
// every existing key, so it can be appended to the end of storage directly,
// growing storage first if it's full.
func (m *Map[K, V]) appendTail(key K, value V) (Iterator[K, V], bool) {
	if len(m.storage) == cap(m.storage) {
		m.Reserve(2 * cap(m.storage))
	}

	pos := len(m.storage)
	m.storage = append(m.storage, Entry[K, V]{Key: key, Value: value})

	return m.iteratorAtStorage(pos), true
}

// insertBuffer handles the case where key is absent from storage: insert
// into buffer (merging buffer into storage first if buffer is full), or
// report the existing position if key is already buffered.
func (m *Map[K, V]) insertBuffer(key K, value V) (Iterator[K, V], bool) {
	pos, found := findEqual(m.buffer, key, m.compare)
	if found {
		return m.iteratorAtBuffer(pos), false
	}

	if len(m.buffer) == cap(m.buffer) {
		m.maybeMergeForBufferInsert()
		// Buffer is now empty; key was absent from the pre-merge storage
		// and buffer, and the merge only adds entries drawn from those two
		// regions, so key remains absent from the merged storage too.
		pos = 0
	}

	m.buffer = insertSorted(m.buffer, pos, Entry[K, V]{Key: key, Value: value})

	return m.iteratorAtBuffer(pos), true
}
