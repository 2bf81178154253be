package ordmap

// At returns a pointer to the value stored under key, inserting the zero
// value first if key is absent. This is the Go rendition of operator[]:
// the returned pointer is valid only until the next mutating call on m, the
// same validity window as every other reference into a Map's regions.
func (m *Map[K, V]) At(key K) *V {
	it, _ := m.Insert(key, *new(V))

	switch it.source {
	case sourceStorage:
		return &m.storage[it.s.pos].Value
	case sourceBuffer:
		return &m.buffer[it.b.pos].Value
	default:
		preconditionf("At produced an invalid iterator")

		return nil
	}
}
