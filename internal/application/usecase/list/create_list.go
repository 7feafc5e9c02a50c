package list

import (
	"context"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// CreateListUseCase handles creating a new list
type CreateListUseCase struct {
	remote     repository.BoardRemote
	store      *service.BoardStore
	session    *session.Session
	tracker    *status.Tracker
	validation *service.ValidationService
}

// NewCreateListUseCase creates a new CreateListUseCase
func NewCreateListUseCase(
	remote repository.BoardRemote,
	store *service.BoardStore,
	sess *session.Session,
	tracker *status.Tracker,
	validation *service.ValidationService,
) *CreateListUseCase {
	return &CreateListUseCase{
		remote:     remote,
		store:      store,
		session:    sess,
		tracker:    tracker,
		validation: validation,
	}
}

// Execute creates a list and appends the server's copy to the board
func (uc *CreateListUseCase) Execute(ctx context.Context, title string) (dto.ListDTO, error) {
	if err := uc.validation.ValidateListTitle(title); err != nil {
		return dto.ListDTO{}, err
	}

	end := uc.tracker.Begin(entity.OpCreateList)
	created, err := uc.remote.CreateList(ctx, uc.session.Token(), title)
	end()
	if err != nil {
		uc.tracker.Error(entity.OpCreateList, err)
		return dto.ListDTO{}, err
	}

	uc.store.UpsertList(created)
	log.WithField("list_id", created.ID()).Info("list created")
	return toDTO(created), nil
}

func toDTO(l entity.List) dto.ListDTO {
	return dto.ListDTO{ID: l.ID(), Title: l.Title(), Tasks: []dto.TaskDTO{}}
}
