package entity

import (
	"strings"
	"time"

	"rkanban/internal/domain/valueobject"
)

// Task represents a work item within a list
type Task struct {
	id          string
	title       string
	description string
	dueDate     valueobject.DueDate
	priority    valueobject.Priority
	listID      string
}

// NewTask creates a new Task entity. The list ID records the owning list as the
// server reported it; board membership is decided by the list that holds the task.
func NewTask(
	id string,
	title string,
	description string,
	dueDate valueobject.DueDate,
	priority valueobject.Priority,
	listID string,
) (Task, error) {
	if id == "" {
		return Task{}, ErrEmptyTaskID
	}
	if strings.TrimSpace(title) == "" {
		return Task{}, NewValidationError("title", ErrEmptyTaskTitle)
	}
	if priority == "" {
		priority = valueobject.DefaultPriority
	}
	if !priority.IsValid() {
		return Task{}, NewValidationError("priority", ErrInvalidPriority)
	}

	return Task{
		id:          id,
		title:       title,
		description: description,
		dueDate:     dueDate,
		priority:    priority,
		listID:      listID,
	}, nil
}

// ID returns the task ID
func (t Task) ID() string {
	return t.id
}

// Title returns the task title
func (t Task) Title() string {
	return t.title
}

// Description returns the task description
func (t Task) Description() string {
	return t.description
}

// DueDate returns the task due date
func (t Task) DueDate() valueobject.DueDate {
	return t.dueDate
}

// Priority returns the task priority
func (t Task) Priority() valueobject.Priority {
	return t.priority
}

// ListID returns the list the task was last recorded in
func (t Task) ListID() string {
	return t.listID
}

// WithListID returns a copy of the task recorded in listID
func (t Task) WithListID(listID string) Task {
	t.listID = listID
	return t
}

// IsOverdue checks if the task is overdue
func (t Task) IsOverdue(now time.Time) bool {
	return t.dueDate.IsPast(now)
}
