package dper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "peers.conf")

	// New file
	changed, err := WriteConfig(name, []byte("zone a\n"), false)
	require.NoError(t, err)
	require.True(t, changed)

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "zone a\n", string(b))

	fi, err := os.Stat(name)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0444), fi.Mode().Perm())

	// Same content
	changed, err = WriteConfig(name, []byte("zone a\n"), false)
	require.NoError(t, err)
	require.False(t, changed)

	// Same content, forced
	changed, err = WriteConfig(name, []byte("zone a\n"), true)
	require.NoError(t, err)
	require.True(t, changed)

	// Updated
	changed, err = WriteConfig(name, []byte("zone a\nzone b\n"), false)
	require.NoError(t, err)
	require.True(t, changed)
	b, err = os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "zone a\nzone b\n", string(b))

	// No temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(name))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestReconfigure(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "reloaded")

	require.NoError(t, Reconfigure(context.Background(), "echo reload && touch "+marker))
	_, err := os.Stat(marker)
	require.NoError(t, err)

	require.Error(t, Reconfigure(context.Background(), "exit 3"))
}
