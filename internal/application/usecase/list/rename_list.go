package list

import (
	"context"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// RenameListUseCase handles changing a list's title
type RenameListUseCase struct {
	remote     repository.BoardRemote
	store      *service.BoardStore
	session    *session.Session
	tracker    *status.Tracker
	refresh    *board.RefreshBoardUseCase
	validation *service.ValidationService
}

// NewRenameListUseCase creates a new RenameListUseCase
func NewRenameListUseCase(
	remote repository.BoardRemote,
	store *service.BoardStore,
	sess *session.Session,
	tracker *status.Tracker,
	refresh *board.RefreshBoardUseCase,
	validation *service.ValidationService,
) *RenameListUseCase {
	return &RenameListUseCase{
		remote:     remote,
		store:      store,
		session:    sess,
		tracker:    tracker,
		refresh:    refresh,
		validation: validation,
	}
}

// Execute renames listID. The list keeps its tasks and position.
func (uc *RenameListUseCase) Execute(ctx context.Context, listID, title string) (dto.ListDTO, error) {
	if err := uc.validation.ValidateListTitle(title); err != nil {
		return dto.ListDTO{}, err
	}
	if listID == "" {
		return dto.ListDTO{}, entity.NewValidationError("id", entity.ErrEmptyListID)
	}

	end := uc.tracker.Begin(entity.OpRenameList)
	renamed, err := uc.remote.RenameList(ctx, uc.session.Token(), listID, title)
	end()
	if err != nil {
		if rerr := uc.refresh.Reconcile(ctx, entity.OpRenameList, err); rerr != nil {
			log.WithError(rerr).WithField("list_id", listID).Warn("board left unreconciled after failed rename")
		}
		return dto.ListDTO{}, err
	}

	uc.store.UpsertList(renamed)
	log.WithField("list_id", listID).Info("list renamed")
	return toDTO(renamed), nil
}
