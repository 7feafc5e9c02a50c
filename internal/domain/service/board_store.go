package service

import (
	"sync"

	"rkanban/internal/domain/entity"
)

// Change describes a board snapshot transition
type Change struct {
	Version uint64
	Reason  string
	Board   *entity.Board
}

// BoardStore owns the current board snapshot. Each operation reads the latest
// snapshot and atomically installs the next one, so snapshots are totally
// ordered by the sequence of mutating calls.
type BoardStore struct {
	mu      sync.RWMutex
	board   *entity.Board
	version uint64

	subMu       sync.RWMutex
	subscribers map[int]chan Change
	nextSubID   int
}

// NewBoardStore creates a store holding an empty board
func NewBoardStore() *BoardStore {
	return &BoardStore{
		board:       entity.EmptyBoard(),
		subscribers: make(map[int]chan Change),
	}
}

// Snapshot returns the current board snapshot
func (s *BoardStore) Snapshot() *entity.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Version returns the number of transitions that changed the board
func (s *BoardStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Apply runs a pure transition against the latest snapshot and installs its result.
// Transitions returning the same snapshot are not counted and not broadcast.
func (s *BoardStore) Apply(reason string, transition func(*entity.Board) *entity.Board) *entity.Board {
	s.mu.Lock()
	current := s.board
	next := transition(current)
	if next == nil || next == current {
		s.mu.Unlock()
		return current
	}
	s.board = next
	s.version++
	change := Change{Version: s.version, Reason: reason, Board: next}
	s.mu.Unlock()

	s.notifySubscribers(change)
	return next
}

// MoveTask moves a task between (or within) lists
func (s *BoardStore) MoveTask(taskID, fromListID, toListID string, atIndex int) *entity.Board {
	return s.Apply("move-task", func(b *entity.Board) *entity.Board {
		return b.MoveTask(taskID, fromListID, toListID, atIndex)
	})
}

// UpsertTask inserts or replaces a task in listID
func (s *BoardStore) UpsertTask(task entity.Task, listID string) *entity.Board {
	return s.Apply("upsert-task", func(b *entity.Board) *entity.Board {
		return b.UpsertTask(task, listID)
	})
}

// RemoveTask removes a task from the board
func (s *BoardStore) RemoveTask(taskID string) *entity.Board {
	return s.Apply("remove-task", func(b *entity.Board) *entity.Board {
		return b.RemoveTask(taskID)
	})
}

// UpsertList inserts or replaces a list
func (s *BoardStore) UpsertList(list entity.List) *entity.Board {
	return s.Apply("upsert-list", func(b *entity.Board) *entity.Board {
		return b.UpsertList(list)
	})
}

// RemoveList removes a list and its tasks
func (s *BoardStore) RemoveList(listID string) *entity.Board {
	return s.Apply("remove-list", func(b *entity.Board) *entity.Board {
		return b.RemoveList(listID)
	})
}

// ReplaceBoard overwrites the snapshot, discarding any optimistic state
func (s *BoardStore) ReplaceBoard(board *entity.Board) *entity.Board {
	if board == nil {
		board = entity.EmptyBoard()
	}
	return s.Apply("replace-board", func(*entity.Board) *entity.Board {
		return board
	})
}

// Subscribe registers an observer for snapshot changes. The returned function
// unregisters it and closes the channel. Slow observers miss changes rather
// than block transitions.
func (s *BoardStore) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 16)

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// notifySubscribers sends a change to all subscribers
func (s *BoardStore) notifySubscribers(change Change) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- change:
		default:
			// Channel full, skip this subscriber
		}
	}
}
