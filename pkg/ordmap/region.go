package ordmap

// This file holds the raw-array primitives the three regions are built on:
// binary search, sorted insert/erase, tombstone compaction and the two-way
// merge that folds buffer back into storage. Every function here operates
// on a slice already sized to its live length (len(s) entries physically
// present) plus whatever spare capacity was reserved ahead of time; none of
// them grow a slice past its existing capacity themselves — callers reserve
// first and these functions only ever return a slice within that capacity.

// lowerBound returns the index of the first entry whose key is >= target,
// or len(s) if every key is smaller. s must be sorted ascending by cmp.
func lowerBound[K any, V any](s []Entry[K, V], target K, cmp compareFunc[K]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(s[mid].Key, target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// findEqual locates target in s via lowerBound and confirms equality.
func findEqual[K any, V any](s []Entry[K, V], target K, cmp compareFunc[K]) (int, bool) {
	pos := lowerBound(s, target, cmp)
	if pos < len(s) && cmp(s[pos].Key, target) == 0 {
		return pos, true
	}

	return pos, false
}

// upperBound returns the index of the first entry whose key is > target.
func upperBound[K any, V any](s []Entry[K, V], target K, cmp compareFunc[K]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(target, s[mid].Key) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// insertSorted inserts e into s at pos, shifting the tail right by one.
// Precondition: len(s) < cap(s), pos is e.Key's sorted position, and e.Key
// is not already present (callers get pos from findEqual themselves, since
// they usually need the position either way). Returns the extended slice.
func insertSorted[K any, V any](s []Entry[K, V], pos int, e Entry[K, V]) []Entry[K, V] {
	s = s[:len(s)+1]
	copy(s[pos+1:], s[pos:len(s)-1])
	s[pos] = e

	return s
}

// eraseAt removes the entry at pos, shifting the tail left by one and
// clearing the now-unused trailing slot so it doesn't keep a stale
// reference alive.
func eraseAt[K any, V any](s []Entry[K, V], pos int) []Entry[K, V] {
	copy(s[pos:], s[pos+1:])

	var zero Entry[K, V]
	s[len(s)-1] = zero

	return s[:len(s)-1]
}

// compactOut removes every tombstoned position listed in erased (sorted
// ascending, every index valid in storage) from storage in a single
// left-to-right sweep, preserving order. It does not clear erased; callers
// do that once compaction succeeds.
func compactOut[K any, V any](storage []Entry[K, V], erased []int) []Entry[K, V] {
	if len(erased) == 0 {
		return storage
	}

	write := 0
	skip := 0

	for read := 0; read < len(storage); read++ {
		if skip < len(erased) && erased[skip] == read {
			skip++

			continue
		}

		storage[write] = storage[read]
		write++
	}

	var zero Entry[K, V]
	for i := write; i < len(storage); i++ {
		storage[i] = zero
	}

	return storage[:write]
}

// twoWayMerge merges buffer into storage, writing the sorted result back
// into storage's backing array from the right end so no live element is
// overwritten before it is read. Precondition: cap(storage) >= len(storage)
// + len(buffer). It does not clear buffer; callers do that once the merge
// succeeds.
func twoWayMerge[K any, V any](storage, buffer []Entry[K, V], cmp compareFunc[K]) []Entry[K, V] {
	total := len(storage) + len(buffer)
	out := storage[:total]

	i, j, w := len(storage)-1, len(buffer)-1, total-1
	for i >= 0 && j >= 0 {
		if cmp(storage[i].Key, buffer[j].Key) > 0 {
			out[w] = storage[i]
			i--
		} else {
			out[w] = buffer[j]
			j--
		}

		w--
	}

	for j >= 0 {
		out[w] = buffer[j]
		j--
		w--
	}

	// Remaining storage[0..i] is already in place.
	return out
}

// lowerBoundInt returns the index of the first value >= target in a slice
// of indices sorted ascending.
func lowerBoundInt(xs []int, target int) int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if xs[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// findInt locates target in a sorted []int via lowerBoundInt.
func findInt(xs []int, target int) (int, bool) {
	pos := lowerBoundInt(xs, target)
	if pos < len(xs) && xs[pos] == target {
		return pos, true
	}

	return pos, false
}

// insertSortedInt inserts v into its sorted position. Precondition:
// len(xs) < cap(xs) and v is not already present.
func insertSortedInt(xs []int, v int) []int {
	pos := lowerBoundInt(xs, v)
	xs = xs[:len(xs)+1]
	copy(xs[pos+1:], xs[pos:len(xs)-1])
	xs[pos] = v

	return xs
}

// removeIntAt removes the value at pos, shifting the tail left by one.
func removeIntAt(xs []int, pos int) []int {
	copy(xs[pos:], xs[pos+1:])

	return xs[:len(xs)-1]
}

// lastLE returns the index of the greatest value <= target, or (-1, false)
// if every element is greater than target.
func lastLE(xs []int, target int) (int, bool) {
	pos := lowerBoundInt(xs, target+1)
	if pos == 0 {
		return -1, false
	}

	return pos - 1, true
}
