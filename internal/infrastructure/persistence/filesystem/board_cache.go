package filesystem

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/infrastructure/persistence/mapper"
	"rkanban/pkg/filesystem"
)

const (
	cachePerm    = 0o600
	cacheDirPerm = 0o700
)

var _ repository.BoardCache = (*BoardCache)(nil)

// BoardCache stores the last fetched board of one server as a YAML file
type BoardCache struct {
	path string
	now  func() time.Time
}

// NewBoardCache creates a cache for the server at apiURL
func NewBoardCache(dataPath, apiURL string) *BoardCache {
	return &BoardCache{
		path: NewPathBuilder(dataPath).BoardCache(apiURL),
		now:  time.Now,
	}
}

// Path returns the cache file location
func (c *BoardCache) Path() string {
	return c.path
}

// Load reads the cached board
func (c *BoardCache) Load() (*entity.Board, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, entity.ErrBoardNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board cache: %w", err)
	}

	var storage mapper.BoardStorage
	if err := yaml.Unmarshal(data, &storage); err != nil {
		return nil, fmt.Errorf("failed to parse board cache: %w", err)
	}
	return mapper.BoardFromStorage(storage)
}

// Save writes board atomically
func (c *BoardCache) Save(board *entity.Board) error {
	data, err := yaml.Marshal(mapper.BoardToStorage(board, c.now()))
	if err != nil {
		return fmt.Errorf("failed to marshal board cache: %w", err)
	}
	if err := filesystem.SafeWrite(c.path, data, cachePerm, cacheDirPerm); err != nil {
		return fmt.Errorf("failed to write board cache: %w", err)
	}
	return nil
}

// Clear removes the cache file
func (c *BoardCache) Clear() error {
	return filesystem.RemoveIfExists(c.path)
}
