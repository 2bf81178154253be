package fsx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fake_WriteRequiresExistingDir(t *testing.T) {
	t.Parallel()

	f := NewFake()

	err := f.WriteFile("/data/snap.bin", []byte("x"), 0o644)
	require.Error(t, err)

	require.NoError(t, f.MkdirAll("/data", 0o755))
	require.NoError(t, f.WriteFile("/data/snap.bin", []byte("x"), 0o644))

	got, err := f.ReadFile("/data/snap.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}

func Test_Fake_ReadMissing_ReturnsNotExist(t *testing.T) {
	t.Parallel()

	f := NewFake()

	_, err := f.ReadFile("/nope")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func Test_Fake_Exists(t *testing.T) {
	t.Parallel()

	f := NewFake()
	require.NoError(t, f.MkdirAll("/data", 0o755))

	ok, err := f.Exists("/data")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Exists("/data/missing.bin")
	require.NoError(t, err)
	assert.False(t, ok)
}
