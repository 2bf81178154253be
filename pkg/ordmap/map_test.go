package ordmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_StartsEmpty(t *testing.T) {
	t.Parallel()

	m := New[int, string]()
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Len())
}

func Test_NewFunc_CustomOrder_Descending(t *testing.T) {
	t.Parallel()

	m := NewFunc[int, string](func(a, b int) int { return b - a })
	for _, k := range []int{1, 2, 3} {
		m.Insert(k, "x")
	}

	var got []int
	for k := range m.All() {
		got = append(got, k)
	}

	assert.Equal(t, []int{3, 2, 1}, got)
}

func Test_NewFunc_NilComparator_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewFunc[int, int](nil)
	})
}

func Test_Collect(t *testing.T) {
	t.Parallel()

	seq := func(yield func(int, string) bool) {
		for _, k := range []int{5, 1, 3} {
			if !yield(k, "v") {
				return
			}
		}
	}

	m := Collect[int, string](seq)

	assert.Equal(t, 3, m.Len())

	var got []int
	for k := range m.All() {
		got = append(got, k)
	}

	assert.Equal(t, []int{1, 3, 5}, got)
}

func Test_CaseInsensitive_StringComparator(t *testing.T) {
	t.Parallel()

	m := NewFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	m.Insert("Bob", 1)
	_, inserted := m.Insert("bob", 2)

	assert.False(t, inserted, "case-insensitive comparator should treat Bob/bob as the same key")
	assert.Equal(t, 1, m.Len())
}

func Test_Clear_KeepsCapacity(t *testing.T) {
	t.Parallel()

	m := New[int, int]()
	for i := 0; i < 20; i++ {
		m.Insert(i, i)
	}

	cap := m.StorageCap()
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.True(t, m.Empty())
	assert.Equal(t, cap, m.StorageCap(), "Clear should keep capacity")

	m.Insert(1, 1)
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func Test_Set_UpsertsExistingKey(t *testing.T) {
	t.Parallel()

	m := New[int, string]()
	m.Insert(1, "a")
	m.Set(1, "b")
	m.Set(2, "c")

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, m.Len())
}

func Test_Count(t *testing.T) {
	t.Parallel()

	m := New[int, int]()
	m.Insert(1, 1)

	assert.Equal(t, 1, m.Count(1))
	assert.Equal(t, 0, m.Count(2))
}

func Test_Reserve_SmallerCapacity_Panics(t *testing.T) {
	t.Parallel()

	m := New[int, int]()

	assert.Panics(t, func() {
		m.Reserve(m.StorageCap())
	})
}

// Test_Reserve_TooSmallForContent_PanicsInsteadOfCorrupting covers a newCap
// that clears the cap(storage) precondition but is still too small to hold
// storage's live entries plus the buffered ones: it must be rejected as a
// precondition violation rather than reach the internal make() with a
// length exceeding its capacity.
func Test_Reserve_TooSmallForContent_PanicsInsteadOfCorrupting(t *testing.T) {
	t.Parallel()

	m := New[int, int]()
	for i := 0; i < m.StorageCap(); i++ {
		m.Insert(i, i)
	}

	m.Insert(-1, -1)
	m.Insert(-2, -2)

	require.Equal(t, m.StorageCap(), m.StorageLen())
	require.Equal(t, 2, m.BufferLen())

	capBefore := m.StorageCap()
	newCap := capBefore + 1
	require.Less(t, newCap, m.StorageLen()+m.BufferLen())

	assert.Panics(t, func() {
		m.Reserve(newCap)
	})

	assert.Equal(t, capBefore, m.StorageCap(), "a rejected Reserve must not mutate the Map")

	v, ok := m.Get(0)
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func Test_Reserve_GrowsAndPreservesContent(t *testing.T) {
	t.Parallel()

	m := New[int, int]()
	for i := 0; i < 5; i++ {
		m.Insert(i, i*i)
	}

	m.Reserve(1000)
	assert.Equal(t, 1000, m.StorageCap())
	assert.Equal(t, 5, m.Len())

	for i := 0; i < 5; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}

func Test_Merge_IsIdempotentAndFlattens(t *testing.T) {
	t.Parallel()

	m := New[int, int]()
	for _, k := range []int{5, 3, 1, 4, 2} {
		m.Insert(k, k)
	}
	m.Delete(3)

	before := snapshotOf(m)

	m.Merge()

	assert.Equal(t, 0, m.BufferLen())
	assert.Equal(t, 0, m.ErasedLen())
	assert.Equal(t, before, snapshotOf(m))

	m.Merge()
	assert.Equal(t, before, snapshotOf(m), "Merge should be idempotent")
}

func Test_DeleteIterator_ForeignIterator_Panics(t *testing.T) {
	t.Parallel()

	a := New[int, int]()
	a.Insert(1, 1)

	b := New[int, int]()
	b.Insert(1, 1)

	it := a.Find(1)

	assert.Panics(t, func() {
		b.DeleteIterator(it)
	})
}
