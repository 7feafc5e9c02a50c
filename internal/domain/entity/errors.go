package entity

import (
	"errors"
	"fmt"

	"rkanban/internal/domain/valueobject"
)

var (
	// List errors
	ErrListNotFound   = errors.New("list not found")
	ErrEmptyListTitle = errors.New("list title cannot be empty")
	ErrEmptyListID    = errors.New("list ID cannot be empty")

	// Task errors
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")

	// Validation errors
	ErrInvalidPriority = valueobject.ErrInvalidPriority
	ErrInvalidDate     = valueobject.ErrInvalidDate
	ErrRequiredField   = errors.New("required field is missing")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrDragInProgress   = errors.New("a drag is already in progress")
	ErrNoActiveDrag     = errors.New("no drag in progress")
	ErrSaving           = errors.New("a change is still being saved")

	// Cache errors
	ErrBoardNotCached = errors.New("no cached board")
)

// Sync operation names carried by SyncFailure
const (
	OpFetchBoard = "fetch-board"
	OpCreateList = "create-list"
	OpRenameList = "rename-list"
	OpDeleteList = "delete-list"
	OpCreateTask = "create-task"
	OpUpdateTask = "update-task"
	OpDeleteTask = "delete-task"
	OpMoveTask   = "move-task"
	OpLogin      = "login"
	OpRegister   = "register"
)

// ValidationError reports an empty or malformed required field.
// It is raised before any network call.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// NotFoundError reports that a local mutation target vanished
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is lets errors.Is match the list/task sentinels
func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrTaskNotFound:
		return e.Kind == "task"
	case ErrListNotFound:
		return e.Kind == "list"
	}
	return false
}

// SyncFailure reports a transport or server error on a remote board call
type SyncFailure struct {
	Op         string
	EntityID   string
	RequestID  string
	StatusCode int
	Err        error
}

func (e *SyncFailure) Error() string {
	msg := fmt.Sprintf("sync %s failed", e.Op)
	if e.EntityID != "" {
		msg += fmt.Sprintf(" for %s", e.EntityID)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyncFailure) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsSyncFailure extracts the SyncFailure from err, if any
func AsSyncFailure(err error) (*SyncFailure, bool) {
	var sf *SyncFailure
	if errors.As(err, &sf) {
		return sf, true
	}
	return nil, false
}
