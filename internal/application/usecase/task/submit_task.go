package task

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// SubmitTaskUseCase handles the task form: create when the form has no ID,
// update otherwise
type SubmitTaskUseCase struct {
	remote     repository.BoardRemote
	store      *service.BoardStore
	session    *session.Session
	tracker    *status.Tracker
	refresh    *board.RefreshBoardUseCase
	validation *service.ValidationService
	now        func() time.Time
}

// NewSubmitTaskUseCase creates a new SubmitTaskUseCase
func NewSubmitTaskUseCase(
	remote repository.BoardRemote,
	store *service.BoardStore,
	sess *session.Session,
	tracker *status.Tracker,
	refresh *board.RefreshBoardUseCase,
	validation *service.ValidationService,
) *SubmitTaskUseCase {
	return &SubmitTaskUseCase{
		remote:     remote,
		store:      store,
		session:    sess,
		tracker:    tracker,
		refresh:    refresh,
		validation: validation,
		now:        time.Now,
	}
}

// Execute validates the form and sends it to the server. The server's task is
// then placed into its list, leaving any other list that held it.
func (uc *SubmitTaskUseCase) Execute(ctx context.Context, form dto.TaskForm) (dto.TaskDTO, error) {
	payload, err := uc.payload(form)
	if err != nil {
		return dto.TaskDTO{}, err
	}
	if form.ID == "" {
		return uc.create(ctx, payload)
	}
	return uc.update(ctx, form.ID, payload)
}

func (uc *SubmitTaskUseCase) payload(form dto.TaskForm) (repository.TaskPayload, error) {
	if err := uc.validation.ValidateTaskTitle(form.Title); err != nil {
		return repository.TaskPayload{}, err
	}
	priority, err := uc.validation.ValidatePriority(form.Priority)
	if err != nil {
		return repository.TaskPayload{}, err
	}
	dueDate, err := uc.validation.ValidateDueDate(form.DueDate)
	if err != nil {
		return repository.TaskPayload{}, err
	}
	return repository.TaskPayload{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     dueDate,
		Priority:    priority,
		ListID:      form.ListID,
	}, nil
}

func (uc *SubmitTaskUseCase) create(ctx context.Context, payload repository.TaskPayload) (dto.TaskDTO, error) {
	if payload.ListID == "" {
		return dto.TaskDTO{}, entity.NewValidationError("list", entity.ErrRequiredField)
	}
	if !uc.store.Snapshot().HasList(payload.ListID) {
		return dto.TaskDTO{}, &entity.NotFoundError{Kind: "list", ID: payload.ListID}
	}

	end := uc.tracker.Begin(entity.OpCreateTask)
	created, err := uc.remote.CreateTask(ctx, uc.session.Token(), payload)
	end()
	if err != nil {
		// Nothing was applied locally, so there is nothing to roll back.
		uc.tracker.Error(entity.OpCreateTask, err)
		return dto.TaskDTO{}, err
	}

	listID := placement(created, payload.ListID)
	uc.store.UpsertTask(created, listID)
	log.WithFields(log.Fields{"task_id": created.ID(), "list_id": listID}).Info("task created")
	return dto.TaskToDTO(created, listID, uc.now()), nil
}

func (uc *SubmitTaskUseCase) update(ctx context.Context, taskID string, payload repository.TaskPayload) (dto.TaskDTO, error) {
	if payload.ListID == "" {
		if current, ok := uc.store.Snapshot().ListOf(taskID); ok {
			payload.ListID = current
		}
	}

	end := uc.tracker.Begin(entity.OpUpdateTask)
	updated, err := uc.remote.UpdateTask(ctx, uc.session.Token(), taskID, payload)
	end()
	if err != nil {
		if rerr := uc.refresh.Reconcile(ctx, entity.OpUpdateTask, err); rerr != nil {
			log.WithError(rerr).WithField("task_id", taskID).Warn("board left unreconciled after failed update")
		}
		return dto.TaskDTO{}, err
	}

	listID := placement(updated, payload.ListID)
	uc.store.UpsertTask(updated, listID)
	log.WithFields(log.Fields{"task_id": taskID, "list_id": listID}).Info("task updated")
	return dto.TaskToDTO(updated, listID, uc.now()), nil
}

// placement prefers the list the server reports for the task
func placement(task entity.Task, requested string) string {
	if task.ListID() != "" {
		return task.ListID()
	}
	return requested
}
