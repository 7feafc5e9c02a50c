package task

import (
	"context"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// DeleteTaskUseCase removes a task on the server and then locally
type DeleteTaskUseCase struct {
	remote  repository.BoardRemote
	store   *service.BoardStore
	session *session.Session
	tracker *status.Tracker
	refresh *board.RefreshBoardUseCase
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase
func NewDeleteTaskUseCase(
	remote repository.BoardRemote,
	store *service.BoardStore,
	sess *session.Session,
	tracker *status.Tracker,
	refresh *board.RefreshBoardUseCase,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		remote:  remote,
		store:   store,
		session: sess,
		tracker: tracker,
		refresh: refresh,
	}
}

// Execute deletes taskID. On failure the board is refetched.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, taskID string) error {
	if taskID == "" {
		return entity.NewValidationError("id", entity.ErrEmptyTaskID)
	}

	end := uc.tracker.Begin(entity.OpDeleteTask)
	err := uc.remote.DeleteTask(ctx, uc.session.Token(), taskID)
	end()
	if err != nil {
		if rerr := uc.refresh.Reconcile(ctx, entity.OpDeleteTask, err); rerr != nil {
			log.WithError(rerr).WithField("task_id", taskID).Warn("board left unreconciled after failed delete")
		}
		return err
	}

	uc.store.RemoveTask(taskID)
	log.WithField("task_id", taskID).Info("task deleted")
	return nil
}
