package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nburk/ordmap/internal/config"
	"github.com/nburk/ordmap/internal/fsx"
	"github.com/nburk/ordmap/pkg/ordmap"
)

func newTestShell(t *testing.T) *shell {
	t.Helper()

	return &shell{
		m:      ordmap.New[string, string](),
		cfg:    config.Default(),
		fs:     fsx.NewReal(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func Test_Dispatch_InsertFindErase(t *testing.T) {
	t.Parallel()

	sh := newTestShell(t)

	require.NoError(t, sh.dispatch("insert a 1"))
	require.NoError(t, sh.dispatch("insert b 2"))
	assert.Equal(t, 2, sh.m.Len())

	require.NoError(t, sh.dispatch("erase a"))
	assert.Equal(t, 1, sh.m.Len())

	_, ok := sh.m.Get("a")
	assert.False(t, ok)
}

func Test_Dispatch_Len_Merge_Reserve(t *testing.T) {
	t.Parallel()

	sh := newTestShell(t)

	require.NoError(t, sh.dispatch("insert a 1"))
	require.NoError(t, sh.dispatch("merge"))
	require.NoError(t, sh.dispatch("reserve 100"))

	assert.Equal(t, 100, sh.m.StorageCap())
}

func Test_Dispatch_SaveLoadRoundTrips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snap.bin")

	sh1 := newTestShell(t)
	sh1.cfg.Snapshot = path

	require.NoError(t, sh1.dispatch("insert k v"))
	require.NoError(t, sh1.dispatch("save"))

	sh2 := newTestShell(t)
	sh2.cfg.Snapshot = path

	require.NoError(t, sh2.dispatch("load"))

	v, ok := sh2.m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func Test_Dispatch_UnknownCommand(t *testing.T) {
	t.Parallel()

	sh := newTestShell(t)

	err := sh.dispatch("frobnicate")
	assert.Error(t, err)
}
