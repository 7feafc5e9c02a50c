package entity

import "strings"

// List is a named, ordered container of tasks
type List struct {
	id    string
	title string
	tasks []Task
}

// NewList creates a new List entity. Tasks are copied and stamped with the list ID.
func NewList(id, title string, tasks []Task) (List, error) {
	if id == "" {
		return List{}, ErrEmptyListID
	}
	if strings.TrimSpace(title) == "" {
		return List{}, NewValidationError("title", ErrEmptyListTitle)
	}
	l := List{id: id, title: title}
	l.tasks = make([]Task, len(tasks))
	for i, task := range tasks {
		l.tasks[i] = task.WithListID(id)
	}
	return l, nil
}

// ID returns the list ID
func (l List) ID() string {
	return l.id
}

// Title returns the list title
func (l List) Title() string {
	return l.title
}

// Tasks returns a copy of the list's tasks in order
func (l List) Tasks() []Task {
	tasksCopy := make([]Task, len(l.tasks))
	copy(tasksCopy, l.tasks)
	return tasksCopy
}

// TaskCount returns the number of tasks in the list
func (l List) TaskCount() int {
	return len(l.tasks)
}

// IndexOf returns the position of taskID, or -1
func (l List) IndexOf(taskID string) int {
	for i, task := range l.tasks {
		if task.id == taskID {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds taskID
func (l List) Contains(taskID string) bool {
	return l.IndexOf(taskID) >= 0
}

// withTasks returns a copy of the list holding tasks. The slice is owned by the result.
func (l List) withTasks(tasks []Task) List {
	l.tasks = tasks
	return l
}

// withTitle returns a renamed copy of the list
func (l List) withTitle(title string) List {
	l.title = title
	return l
}
