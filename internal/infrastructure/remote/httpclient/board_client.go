package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/infrastructure/remote/mapper"
)

var _ repository.BoardRemote = (*Client)(nil)

const (
	boardPath = "/api/board"
	listPath  = "/api/board/list"
	taskPath  = "/api/board/task"
)

type titleRequest struct {
	Title string `json:"title"`
}

type moveRequest struct {
	ListID string `json:"listId"`
}

// FetchBoard retrieves the full board
func (c *Client) FetchBoard(ctx context.Context, token string) (*entity.Board, error) {
	var w mapper.BoardWire
	if err := c.do(ctx, call{op: entity.OpFetchBoard, method: http.MethodGet, path: boardPath, token: token}, &w); err != nil {
		return nil, err
	}
	board, err := mapper.BoardFromWire(w)
	if err != nil {
		return nil, &entity.SyncFailure{Op: entity.OpFetchBoard, Err: fmt.Errorf("invalid board from server: %w", err)}
	}
	return board, nil
}

// CreateList creates a list
func (c *Client) CreateList(ctx context.Context, token, title string) (entity.List, error) {
	var w mapper.ListWire
	in := call{op: entity.OpCreateList, method: http.MethodPost, path: listPath, token: token, body: titleRequest{Title: title}}
	if err := c.do(ctx, in, &w); err != nil {
		return entity.List{}, err
	}
	return listResult(entity.OpCreateList, "", w)
}

// RenameList changes a list's title. When the server answers without a list
// body the renamed list is built from the request.
func (c *Client) RenameList(ctx context.Context, token, listID, title string) (entity.List, error) {
	var w mapper.ListWire
	in := call{
		op:       entity.OpRenameList,
		entityID: listID,
		method:   http.MethodPut,
		path:     listPath + "/" + url.PathEscape(listID),
		token:    token,
		body:     titleRequest{Title: title},
	}
	if err := c.do(ctx, in, &w); err != nil {
		return entity.List{}, err
	}
	if w.ID == "" {
		w = mapper.ListWire{ID: listID, Title: title}
	}
	return listResult(entity.OpRenameList, listID, w)
}

// DeleteList removes a list
func (c *Client) DeleteList(ctx context.Context, token, listID string) error {
	return c.do(ctx, call{
		op:       entity.OpDeleteList,
		entityID: listID,
		method:   http.MethodDelete,
		path:     listPath + "/" + url.PathEscape(listID),
		token:    token,
	}, nil)
}

// CreateTask creates a task in payload.ListID
func (c *Client) CreateTask(ctx context.Context, token string, payload repository.TaskPayload) (entity.Task, error) {
	var w mapper.TaskWire
	in := call{op: entity.OpCreateTask, method: http.MethodPost, path: taskPath, token: token, body: mapper.PayloadToWire(payload)}
	if err := c.do(ctx, in, &w); err != nil {
		return entity.Task{}, err
	}
	return taskResult(entity.OpCreateTask, "", w)
}

// UpdateTask replaces a task's fields
func (c *Client) UpdateTask(ctx context.Context, token, taskID string, payload repository.TaskPayload) (entity.Task, error) {
	var w mapper.TaskWire
	in := call{
		op:       entity.OpUpdateTask,
		entityID: taskID,
		method:   http.MethodPut,
		path:     taskPath + "/" + url.PathEscape(taskID),
		token:    token,
		body:     mapper.PayloadToWire(payload),
	}
	if err := c.do(ctx, in, &w); err != nil {
		return entity.Task{}, err
	}
	return taskResult(entity.OpUpdateTask, taskID, w)
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, token, taskID string) error {
	return c.do(ctx, call{
		op:       entity.OpDeleteTask,
		entityID: taskID,
		method:   http.MethodDelete,
		path:     taskPath + "/" + url.PathEscape(taskID),
		token:    token,
	}, nil)
}

// MoveTask sends only the new list id. A response without a task body yields
// the zero Task.
func (c *Client) MoveTask(ctx context.Context, token, taskID, listID string) (entity.Task, error) {
	var w mapper.TaskWire
	in := call{
		op:       entity.OpMoveTask,
		entityID: taskID,
		method:   http.MethodPut,
		path:     taskPath + "/" + url.PathEscape(taskID),
		token:    token,
		body:     moveRequest{ListID: listID},
	}
	if err := c.do(ctx, in, &w); err != nil {
		return entity.Task{}, err
	}
	if w.ID == "" {
		return entity.Task{}, nil
	}
	return taskResult(entity.OpMoveTask, taskID, w)
}

func taskResult(op, entityID string, w mapper.TaskWire) (entity.Task, error) {
	task, err := mapper.TaskFromWire(w)
	if err != nil {
		return entity.Task{}, &entity.SyncFailure{Op: op, EntityID: entityID, Err: fmt.Errorf("invalid task from server: %w", err)}
	}
	return task, nil
}

func listResult(op, entityID string, w mapper.ListWire) (entity.List, error) {
	l, err := mapper.ListFromWire(w)
	if err != nil {
		return entity.List{}, &entity.SyncFailure{Op: op, EntityID: entityID, Err: fmt.Errorf("invalid list from server: %w", err)}
	}
	return l, nil
}
