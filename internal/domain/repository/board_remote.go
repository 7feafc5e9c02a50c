package repository

import (
	"context"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/valueobject"
)

//go:generate mockgen -source=board_remote.go -destination=mocks/board_remote_mock.go -package=mocks BoardRemote

// TaskPayload carries the task fields sent on create and update.
// An empty ListID on update leaves the owning list unchanged.
type TaskPayload struct {
	Title       string
	Description string
	DueDate     valueobject.DueDate
	Priority    valueobject.Priority
	ListID      string
}

// BoardRemote is the board API as seen by the client. Implementations hold no
// entity state: every call returns the server-canonical entity or a
// *entity.SyncFailure naming the attempted operation. No method retries.
type BoardRemote interface {
	// FetchBoard retrieves the full board with nested tasks
	FetchBoard(ctx context.Context, token string) (*entity.Board, error)

	// CreateList creates a list with the given title
	CreateList(ctx context.Context, token string, title string) (entity.List, error)

	// RenameList changes a list's title
	RenameList(ctx context.Context, token string, listID string, title string) (entity.List, error)

	// DeleteList removes a list and its tasks
	DeleteList(ctx context.Context, token string, listID string) error

	// CreateTask creates a task in payload.ListID
	CreateTask(ctx context.Context, token string, payload TaskPayload) (entity.Task, error)

	// UpdateTask replaces a task's fields, optionally moving it to payload.ListID
	UpdateTask(ctx context.Context, token string, taskID string, payload TaskPayload) (entity.Task, error)

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, token string, taskID string) error

	// MoveTask records that taskID now belongs to listID
	MoveTask(ctx context.Context, token string, taskID string, listID string) (entity.Task, error)
}
