package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_NoFile_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Load_ProjectFile_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `{
		// trailing comments and commas are fine, this is JSONC
		"snapshot": "custom.snap",
		"capacity": 64,
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "custom.snap", cfg.Snapshot)
	assert.Equal(t, 64, cfg.Capacity)
	assert.Equal(t, FormatTable, cfg.Format, "unset fields should keep their default")
}

func Test_Load_InvalidFormat_Rejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `{"format": "xml"}`)

	_, err := Load(dir)
	require.ErrorIs(t, err, errInvalidFormat)
}

func Test_Load_MalformedJSON_IsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `{ not json `)

	_, err := Load(dir)
	require.Error(t, err)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}
