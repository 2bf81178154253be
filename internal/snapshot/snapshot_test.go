package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nburk/ordmap/pkg/ordmap"
)

func Test_SaveLoad_RoundTrips(t *testing.T) {
	t.Parallel()

	m := ordmap.New[string, string]()
	m.Insert("b", "2")
	m.Insert("a", "1")
	m.Insert("c", "3")
	m.Delete("b")

	path := filepath.Join(t.TempDir(), "snap.bin")
	require.NoError(t, Save(path, m))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, m.Len(), loaded.Len())

	for k, v := range m.All() {
		got, ok := loaded.Get(k)
		require.True(t, ok, "key %q", k)
		assert.Equal(t, v, got)
	}
}

func Test_Load_EmptyMap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, Save(path, ordmap.New[string, string]()))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func Test_Load_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func Test_Load_TruncatedFile_IsCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrCorrupt)
}

func Test_Load_WrongMagic_IsIncompatible(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad-magic.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrIncompatible)
}

func Test_Load_CorruptedChecksum(t *testing.T) {
	t.Parallel()

	m := ordmap.New[string, string]()
	m.Insert("x", "1")

	path := filepath.Join(t.TempDir(), "flipped.bin")
	require.NoError(t, Save(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Flip a byte inside the body (past the 12-byte header) to corrupt the
	// checksum without touching magic/version.
	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = Load(path)
	require.ErrorIs(t, err, ErrCorrupt)
}
