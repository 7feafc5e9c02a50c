package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "secret")

	require.NoError(t, SafeWrite(path, []byte("one"), 0o600, 0o700))
	require.NoError(t, SafeWrite(path, []byte("two"), 0o600, 0o700))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, RemoveIfExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, RemoveIfExists(path))

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)
}
