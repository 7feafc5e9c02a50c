package mapper

import (
	"fmt"
	"time"

	"rkanban/internal/domain/entity"
)

// StorageVersion is the current cache file layout
const StorageVersion = 1

// ListStorage represents list storage format
type ListStorage struct {
	ID    string        `yaml:"id"`
	Title string        `yaml:"title"`
	Tasks []TaskStorage `yaml:"tasks"`
}

// BoardStorage represents board storage format
type BoardStorage struct {
	Version int           `yaml:"version"`
	SavedAt time.Time     `yaml:"saved_at"`
	Lists   []ListStorage `yaml:"lists"`
}

// BoardToStorage converts a board snapshot to storage format
func BoardToStorage(board *entity.Board, savedAt time.Time) BoardStorage {
	storage := BoardStorage{
		Version: StorageVersion,
		SavedAt: savedAt.UTC(),
		Lists:   make([]ListStorage, 0, board.ListCount()),
	}
	for _, l := range board.Lists() {
		ls := ListStorage{ID: l.ID(), Title: l.Title(), Tasks: make([]TaskStorage, 0, l.TaskCount())}
		for _, t := range l.Tasks() {
			ls.Tasks = append(ls.Tasks, TaskToStorage(t))
		}
		storage.Lists = append(storage.Lists, ls)
	}
	return storage
}

// BoardFromStorage rebuilds a board snapshot. Unlike the wire mapper it is
// strict: a cache that does not load cleanly is discarded as a whole.
func BoardFromStorage(storage BoardStorage) (*entity.Board, error) {
	if storage.Version != StorageVersion {
		return nil, fmt.Errorf("unsupported board cache version %d", storage.Version)
	}

	lists := make([]entity.List, 0, len(storage.Lists))
	for _, ls := range storage.Lists {
		tasks := make([]entity.Task, 0, len(ls.Tasks))
		for _, ts := range ls.Tasks {
			task, err := TaskFromStorage(ts, ls.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load task %s: %w", ts.ID, err)
			}
			tasks = append(tasks, task)
		}
		l, err := entity.NewList(ls.ID, ls.Title, tasks)
		if err != nil {
			return nil, fmt.Errorf("failed to load list %s: %w", ls.ID, err)
		}
		lists = append(lists, l)
	}
	return entity.NewBoard(lists)
}
