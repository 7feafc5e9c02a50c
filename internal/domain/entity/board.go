package entity

import "fmt"

// AppendIndex asks MoveTask to append the task to the destination list
const AppendIndex = -1

// Board is an immutable snapshot of all lists and their tasks.
// Every transition returns a new *Board and leaves the receiver untouched;
// a transition that changes nothing returns the receiver itself.
type Board struct {
	lists []List
}

// NewBoard creates a board snapshot from lists, enforcing that list IDs are
// unique and every task ID appears in exactly one list.
func NewBoard(lists []List) (*Board, error) {
	b := &Board{lists: make([]List, len(lists))}
	copy(b.lists, lists)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// EmptyBoard returns a board with no lists
func EmptyBoard() *Board {
	return &Board{}
}

// Lists returns a copy of the board's lists in order
func (b *Board) Lists() []List {
	listsCopy := make([]List, len(b.lists))
	copy(listsCopy, b.lists)
	return listsCopy
}

// ListCount returns the number of lists
func (b *Board) ListCount() int {
	return len(b.lists)
}

// List returns the list with the given ID
func (b *Board) List(listID string) (List, bool) {
	if i := b.listIndex(listID); i >= 0 {
		return b.lists[i], true
	}
	return List{}, false
}

// HasList reports whether listID names a list on the board
func (b *Board) HasList(listID string) bool {
	return b.listIndex(listID) >= 0
}

// ListOf returns the ID of the list currently holding taskID
func (b *Board) ListOf(taskID string) (string, bool) {
	for _, l := range b.lists {
		if l.Contains(taskID) {
			return l.id, true
		}
	}
	return "", false
}

// FindTask returns the task and the ID of the list holding it
func (b *Board) FindTask(taskID string) (Task, string, bool) {
	for _, l := range b.lists {
		if i := l.IndexOf(taskID); i >= 0 {
			return l.tasks[i], l.id, true
		}
	}
	return Task{}, "", false
}

// TaskIDs returns every task ID on the board in list order
func (b *Board) TaskIDs() []string {
	ids := make([]string, 0)
	for _, l := range b.lists {
		for _, task := range l.tasks {
			ids = append(ids, task.id)
		}
	}
	return ids
}

// TaskCount returns the number of tasks across all lists
func (b *Board) TaskCount() int {
	n := 0
	for _, l := range b.lists {
		n += len(l.tasks)
	}
	return n
}

// Validate checks list ID uniqueness and single membership of every task
func (b *Board) Validate() error {
	listSeen := make(map[string]struct{}, len(b.lists))
	taskSeen := make(map[string]string)
	for _, l := range b.lists {
		if _, dup := listSeen[l.id]; dup {
			return fmt.Errorf("duplicate list %q on board", l.id)
		}
		listSeen[l.id] = struct{}{}
		for _, task := range l.tasks {
			if other, dup := taskSeen[task.id]; dup {
				return fmt.Errorf("task %q appears in lists %q and %q", task.id, other, l.id)
			}
			taskSeen[task.id] = l.id
		}
	}
	return nil
}

// MoveTask removes taskID from fromListID and inserts it into toListID at atIndex
// (AppendIndex or any negative value appends; larger values are clamped).
// It is a no-op when the task is not in fromListID, when either list is missing,
// or when fromListID equals toListID and no reordering is requested.
func (b *Board) MoveTask(taskID, fromListID, toListID string, atIndex int) *Board {
	from := b.listIndex(fromListID)
	to := b.listIndex(toListID)
	if from < 0 || to < 0 {
		return b
	}
	pos := b.lists[from].IndexOf(taskID)
	if pos < 0 {
		return b
	}
	if from == to && (atIndex < 0 || atIndex == pos) {
		return b
	}

	task := b.lists[from].tasks[pos]
	source := removeAt(b.lists[from].tasks, pos)

	next := b.cloneLists()
	if from == to {
		next[from] = next[from].withTasks(insertAt(source, task, atIndex))
		return &Board{lists: next}
	}

	next[from] = next[from].withTasks(source)
	next[to] = next[to].withTasks(insertAt(b.lists[to].tasks, task.WithListID(toListID), atIndex))
	return &Board{lists: next}
}

// UpsertTask places task into listID. Any existing copy of the task in another
// list is removed first; an existing copy in listID is replaced in place.
// Unknown lists leave the board unchanged.
func (b *Board) UpsertTask(task Task, listID string) *Board {
	target := b.listIndex(listID)
	if target < 0 {
		return b
	}
	task = task.WithListID(listID)

	next := b.cloneLists()
	for i, l := range b.lists {
		pos := l.IndexOf(task.id)
		switch {
		case i == target && pos >= 0:
			tasks := l.Tasks()
			tasks[pos] = task
			next[i] = l.withTasks(tasks)
		case i == target:
			next[i] = l.withTasks(insertAt(l.tasks, task, AppendIndex))
		case pos >= 0:
			next[i] = l.withTasks(removeAt(l.tasks, pos))
		}
	}
	return &Board{lists: next}
}

// RemoveTask removes taskID from whichever list holds it
func (b *Board) RemoveTask(taskID string) *Board {
	for i, l := range b.lists {
		if pos := l.IndexOf(taskID); pos >= 0 {
			next := b.cloneLists()
			next[i] = l.withTasks(removeAt(l.tasks, pos))
			return &Board{lists: next}
		}
	}
	return b
}

// UpsertList adds list or replaces the list with the same ID in place.
// A replacement without tasks keeps the current tasks (a rename response);
// tasks carried by the incoming list are removed from every other list.
func (b *Board) UpsertList(list List) *Board {
	next := b.cloneLists()
	idx := b.listIndex(list.id)
	switch {
	case idx < 0:
		next = append(next, list.withTasks(list.Tasks()))
		idx = len(next) - 1
	case list.TaskCount() == 0:
		next[idx] = next[idx].withTitle(list.title)
	default:
		next[idx] = list.withTasks(list.Tasks())
	}

	for _, task := range list.tasks {
		for i := range next {
			if i == idx {
				continue
			}
			if pos := next[i].IndexOf(task.id); pos >= 0 {
				next[i] = next[i].withTasks(removeAt(next[i].tasks, pos))
			}
		}
	}
	return &Board{lists: next}
}

// RemoveList removes listID together with every task it contains
func (b *Board) RemoveList(listID string) *Board {
	idx := b.listIndex(listID)
	if idx < 0 {
		return b
	}
	next := make([]List, 0, len(b.lists)-1)
	next = append(next, b.lists[:idx]...)
	next = append(next, b.lists[idx+1:]...)
	return &Board{lists: next}
}

func (b *Board) listIndex(listID string) int {
	for i, l := range b.lists {
		if l.id == listID {
			return i
		}
	}
	return -1
}

func (b *Board) cloneLists() []List {
	next := make([]List, len(b.lists))
	copy(next, b.lists)
	return next
}

// removeAt returns a new slice without the element at pos
func removeAt(tasks []Task, pos int) []Task {
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:pos]...)
	return append(out, tasks[pos+1:]...)
}

// insertAt returns a new slice with task inserted at index, appending when
// index is negative or past the end
func insertAt(tasks []Task, task Task, index int) []Task {
	if index < 0 || index > len(tasks) {
		index = len(tasks)
	}
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks[:index]...)
	out = append(out, task)
	return append(out, tasks[index:]...)
}
