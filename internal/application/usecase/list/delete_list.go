package list

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

// DeleteListUseCase handles deleting a list together with its tasks
type DeleteListUseCase struct {
	remote  repository.BoardRemote
	store   *service.BoardStore
	session *session.Session
	tracker *status.Tracker
	refresh *board.RefreshBoardUseCase
}

// NewDeleteListUseCase creates a new DeleteListUseCase
func NewDeleteListUseCase(
	remote repository.BoardRemote,
	store *service.BoardStore,
	sess *session.Session,
	tracker *status.Tracker,
	refresh *board.RefreshBoardUseCase,
) *DeleteListUseCase {
	return &DeleteListUseCase{
		remote:  remote,
		store:   store,
		session: sess,
		tracker: tracker,
		refresh: refresh,
	}
}

// Execute deletes listID on the server, then drops it and its tasks locally
func (uc *DeleteListUseCase) Execute(ctx context.Context, listID string) error {
	if listID == "" {
		return entity.NewValidationError("id", entity.ErrEmptyListID)
	}

	end := uc.tracker.Begin(entity.OpDeleteList)
	err := uc.remote.DeleteList(ctx, uc.session.Token(), listID)
	end()
	if err != nil {
		if rerr := uc.refresh.Reconcile(ctx, entity.OpDeleteList, err); rerr != nil {
			log.WithError(rerr).WithField("list_id", listID).Warn("board left unreconciled after failed delete")
		}
		return err
	}

	uc.store.RemoveList(listID)
	log.WithField("list_id", listID).Info("list deleted")
	return nil
}
