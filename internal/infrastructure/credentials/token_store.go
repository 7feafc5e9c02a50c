package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"rkanban/internal/domain/repository"
	"rkanban/pkg/filesystem"
	"rkanban/pkg/slug"
)

const (
	tokenPerm      = 0o600
	tokenDirPerm   = 0o700
	watchDebounce  = 100 * time.Millisecond
	tokenExtension = ".token"
)

var _ repository.TokenRepository = (*TokenStore)(nil)

// TokenStore keeps the bearer token for one API server in a file under
// <dataPath>/tokens
type TokenStore struct {
	path string
}

// NewTokenStore creates a store for the API at apiURL
func NewTokenStore(dataPath, apiURL string) *TokenStore {
	return &TokenStore{
		path: filepath.Join(dataPath, "tokens", slug.FromURL(apiURL)+tokenExtension),
	}
}

// Path returns the token file location
func (s *TokenStore) Path() string {
	return s.path
}

// Load returns the stored token, or "" when none is stored
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save replaces the stored token
func (s *TokenStore) Save(token string) error {
	if err := filesystem.SafeWrite(s.path, []byte(token+"\n"), tokenPerm, tokenDirPerm); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear removes the stored token
func (s *TokenStore) Clear() error {
	return filesystem.RemoveIfExists(s.path)
}

// Watch emits the token each time the file is written or removed ("" on
// removal) until ctx is done. Bursts of events are coalesced.
func (s *TokenStore) Watch(ctx context.Context) (<-chan string, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, tokenDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create token directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Atomic saves rename over the file, so watch the directory.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan string, 1)
	go s.watch(ctx, watcher, out)
	return out, nil
}

func (s *TokenStore) watch(ctx context.Context, watcher *fsnotify.Watcher, out chan<- string) {
	defer close(out)
	defer watcher.Close()

	logger := log.WithField("path", s.path)
	name := filepath.Base(s.path)
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				debounce.Reset(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.WithError(err).Warn("token watcher error")

		case <-debounce.C:
			token, err := s.Load()
			if err != nil {
				logger.WithError(err).Warn("failed to reload token")
				continue
			}
			select {
			case out <- token:
			case <-ctx.Done():
				return
			}
		}
	}
}
