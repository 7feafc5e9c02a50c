package repository

import "rkanban/internal/domain/entity"

//go:generate mockgen -source=board_cache.go -destination=mocks/board_cache_mock.go -package=mocks BoardCache

// BoardCache keeps the last board fetched from the server, so a new session
// can show it before the first fetch completes
type BoardCache interface {
	// Load returns the cached board, or entity.ErrBoardNotCached
	Load() (*entity.Board, error)

	// Save replaces the cached board
	Save(board *entity.Board) error

	// Clear removes the cached board
	Clear() error
}
