package task

import (
	"time"

	"rkanban/internal/application/dto"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/service"
)

// FindTaskUseCase looks a task up in the current snapshot
type FindTaskUseCase struct {
	store *service.BoardStore
	now   func() time.Time
}

// NewFindTaskUseCase creates a new FindTaskUseCase
func NewFindTaskUseCase(store *service.BoardStore) *FindTaskUseCase {
	return &FindTaskUseCase{store: store, now: time.Now}
}

// Execute returns the task with taskID
func (uc *FindTaskUseCase) Execute(taskID string) (dto.TaskDTO, error) {
	task, listID, ok := uc.store.Snapshot().FindTask(taskID)
	if !ok {
		return dto.TaskDTO{}, &entity.NotFoundError{Kind: "task", ID: taskID}
	}
	return dto.TaskToDTO(task, listID, uc.now()), nil
}

// Form returns an edit form pre-filled from the task with taskID
func (uc *FindTaskUseCase) Form(taskID string) (dto.TaskForm, error) {
	task, listID, ok := uc.store.Snapshot().FindTask(taskID)
	if !ok {
		return dto.TaskForm{}, &entity.NotFoundError{Kind: "task", ID: taskID}
	}
	return dto.FormFromTask(task, listID), nil
}
