package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreLifecycle(t *testing.T) {
	dir := t.TempDir()
	store := NewTokenStore(dir, "http://localhost:5000")
	assert.Equal(t, filepath.Join(dir, "tokens", "localhost-5000.token"), store.Path())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc.def.ghi"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStorePerHost(t *testing.T) {
	dir := t.TempDir()
	a := NewTokenStore(dir, "https://a.example.com")
	b := NewTokenStore(dir, "https://b.example.com")

	require.NoError(t, a.Save("token-a"))

	token, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStoreWatch(t *testing.T) {
	store := NewTokenStore(t.TempDir(), "http://localhost:5000")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := store.Watch(ctx)
	require.NoError(t, err)

	// The other writer is a second process logging in.
	other := NewTokenStore(filepath.Dir(filepath.Dir(store.Path())), "http://localhost:5000")
	require.NoError(t, other.Save("fresh"))
	assert.Equal(t, "fresh", receive(t, updates))

	require.NoError(t, other.Clear())
	assert.Equal(t, "", receive(t, updates))

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for token update")
		return ""
	}
}
