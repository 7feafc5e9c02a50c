package board

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// CachedBoardUseCase keeps a local copy of the last server board so a new
// session can show something before the first fetch returns. The copy is
// never sent back to the server.
type CachedBoardUseCase struct {
	cache repository.BoardCache
	store *service.BoardStore
}

// NewCachedBoardUseCase creates a new CachedBoardUseCase
func NewCachedBoardUseCase(cache repository.BoardCache, store *service.BoardStore) *CachedBoardUseCase {
	return &CachedBoardUseCase{cache: cache, store: store}
}

// Restore installs the cached board if the store has not received one yet.
// It reports whether the cache was used.
func (uc *CachedBoardUseCase) Restore() (bool, error) {
	if uc.store.Version() > 0 {
		return false, nil
	}

	cached, err := uc.cache.Load()
	if errors.Is(err, entity.ErrBoardNotCached) {
		return false, nil
	}
	if err != nil {
		// A broken cache is only a missed warm start
		log.WithError(err).Warn("discarding board cache")
		if clearErr := uc.cache.Clear(); clearErr != nil {
			return false, fmt.Errorf("failed to clear board cache: %w", clearErr)
		}
		return false, nil
	}

	restored := false
	uc.store.Apply("restore-cache", func(b *entity.Board) *entity.Board {
		if b.ListCount() > 0 {
			return b
		}
		restored = true
		return cached
	})
	if restored {
		log.WithField("lists", cached.ListCount()).Debug("restored cached board")
	}
	return restored, nil
}

// Persist writes the current snapshot to the cache. An empty board clears it.
func (uc *CachedBoardUseCase) Persist() error {
	board := uc.store.Snapshot()
	if board.ListCount() == 0 {
		return uc.cache.Clear()
	}
	if err := uc.cache.Save(board); err != nil {
		return err
	}
	log.WithField("lists", board.ListCount()).Debug("saved board cache")
	return nil
}
