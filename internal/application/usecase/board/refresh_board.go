package board

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// RefreshBoardUseCase fetches the full board and replaces the local snapshot.
// It is the reconciliation path: any optimistic state is discarded.
// Concurrent callers share a single in-flight fetch.
type RefreshBoardUseCase struct {
	remote  repository.BoardRemote
	store   *service.BoardStore
	session *session.Session
	tracker *status.Tracker
	group   singleflight.Group
}

// NewRefreshBoardUseCase creates a new RefreshBoardUseCase
func NewRefreshBoardUseCase(
	remote repository.BoardRemote,
	store *service.BoardStore,
	sess *session.Session,
	tracker *status.Tracker,
) *RefreshBoardUseCase {
	return &RefreshBoardUseCase{
		remote:  remote,
		store:   store,
		session: sess,
		tracker: tracker,
	}
}

// Execute fetches the board and installs it as the current snapshot
func (uc *RefreshBoardUseCase) Execute(ctx context.Context) (*entity.Board, error) {
	v, err, shared := uc.group.Do("board", func() (interface{}, error) {
		end := uc.tracker.Begin(entity.OpFetchBoard)
		defer end()

		fetched, err := uc.remote.FetchBoard(ctx, uc.session.Token())
		if err != nil {
			return nil, err
		}
		return uc.store.ReplaceBoard(fetched), nil
	})
	if err != nil {
		log.WithError(err).Warn("board refresh failed")
		return nil, err
	}

	board := v.(*entity.Board)
	log.WithFields(log.Fields{
		"lists":  board.ListCount(),
		"tasks":  board.TaskCount(),
		"shared": shared,
	}).Debug("board refreshed")
	return board, nil
}

// Reconcile refreshes the board after a failed mutation and records a notice
// for the failure that caused it
func (uc *RefreshBoardUseCase) Reconcile(ctx context.Context, op string, cause error) error {
	uc.tracker.Error(op, cause)
	log.WithError(cause).WithField("op", op).Info("reconciling board with server")
	if _, err := uc.Execute(ctx); err != nil {
		uc.tracker.Error(entity.OpFetchBoard, err)
		return err
	}
	return nil
}
