package drag

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// Controller owns the drag-session state machine:
//
//	Idle --Start--> Dragging --Over--> Dragging
//	Dragging --End(new list)--> Committing --> Idle
//	Dragging --End(same list / no target) | Cancel--> Idle
//
// Drag-over moves are local only; a single remote call is made on drag end.
type Controller struct {
	mu    sync.Mutex
	state dragSession

	store         *service.BoardStore
	remote        repository.BoardRemote
	refresh       *board.RefreshBoardUseCase
	session       *session.Session
	tracker       *status.Tracker
	commitTimeout time.Duration
}

// NewController creates a drag controller. A non-positive commitTimeout
// disables the commit deadline.
func NewController(
	store *service.BoardStore,
	remote repository.BoardRemote,
	refresh *board.RefreshBoardUseCase,
	sess *session.Session,
	tracker *status.Tracker,
	commitTimeout time.Duration,
) *Controller {
	return &Controller{
		store:         store,
		remote:        remote,
		refresh:       refresh,
		session:       sess,
		tracker:       tracker,
		commitTimeout: commitTimeout,
	}
}

// State returns the current drag state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.State
}

// Start begins dragging taskID. It fails while another drag is active or any
// change is still being saved, and returns a NotFoundError for unknown tasks.
func (c *Controller) Start(taskID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.Phase {
	case PhaseDragging:
		return entity.ErrDragInProgress
	case PhaseCommitting:
		return entity.ErrSaving
	}
	if c.tracker.Saving() {
		return entity.ErrSaving
	}

	snapshot := c.store.Snapshot()
	listID, ok := snapshot.ListOf(taskID)
	if !ok {
		return &entity.NotFoundError{Kind: "task", ID: taskID}
	}
	l, _ := snapshot.List(listID)

	c.state = dragSession{
		State: State{
			Phase:        PhaseDragging,
			ActiveTaskID: taskID,
			SourceListID: listID,
			DestListID:   listID,
		},
		snapshot:    snapshot,
		sourceIndex: l.IndexOf(taskID),
		last:        snapshot,
	}
	log.WithFields(log.Fields{"task_id": taskID, "list_id": listID}).Debug("drag started")
	return nil
}

// Over updates the provisional destination from the identifier under the
// pointer and mirrors it on the board with an optimistic local move.
// It reports whether the board changed.
func (c *Controller) Over(overID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase != PhaseDragging {
		return false
	}

	current := c.store.Snapshot()
	dest, ok := ResolveDestination(current, overID)
	if !ok {
		return false
	}
	from, ok := current.ListOf(c.state.ActiveTaskID)
	if !ok {
		return false
	}

	c.state.DestListID = dest
	if from == dest {
		return false
	}

	next := c.store.MoveTask(c.state.ActiveTaskID, from, dest, entity.AppendIndex)
	c.state.last = next
	return next != current
}

// Cancel aborts the drag and reverts any optimistic move
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase != PhaseDragging {
		return false
	}
	c.revertLocked()
	log.WithField("task_id", c.state.ActiveTaskID).Debug("drag cancelled")
	c.state = dragSession{}
	return true
}

// End drops the dragged task on overID. Source and destination are recomputed
// from the current board. Drops outside any list, and drops back onto the
// original list, revert locally without a network call. Otherwise the move is
// sent to the server; if that fails the whole board is refetched.
func (c *Controller) End(ctx context.Context, overID string) Result {
	c.mu.Lock()
	if c.state.Phase != PhaseDragging {
		c.mu.Unlock()
		return Result{Outcome: OutcomeNone, Err: entity.ErrNoActiveDrag}
	}

	taskID := c.state.ActiveTaskID
	origin := c.state.SourceListID
	current := c.store.Snapshot()
	from, found := current.ListOf(taskID)
	dest, resolved := ResolveDestination(current, overID)

	if !found || !resolved || dest == origin {
		c.revertLocked()
		c.state = dragSession{}
		c.mu.Unlock()
		outcome := OutcomeReverted
		if found && resolved && from == origin {
			outcome = OutcomeNone
		}
		log.WithFields(log.Fields{"task_id": taskID, "over": overID, "outcome": outcome}).Debug("drag ended without commit")
		return Result{Outcome: outcome, TaskID: taskID, From: origin, To: dest}
	}

	if from != dest {
		c.store.MoveTask(taskID, from, dest, entity.AppendIndex)
	}
	snapshot := c.state.snapshot
	c.state.Phase = PhaseCommitting
	c.state.DestListID = dest
	c.mu.Unlock()

	result := c.commit(ctx, taskID, origin, dest, snapshot)

	c.mu.Lock()
	c.state = dragSession{}
	c.mu.Unlock()
	return result
}

// commit sends the move and reconciles on failure
func (c *Controller) commit(ctx context.Context, taskID, from, to string, snapshot *entity.Board) Result {
	end := c.tracker.Begin(entity.OpMoveTask)
	defer end()

	logger := log.WithFields(log.Fields{"task_id": taskID, "from": from, "to": to})
	result := Result{TaskID: taskID, From: from, To: to}

	commitCtx, cancel := c.withCommitTimeout(ctx)
	task, err := c.remote.MoveTask(commitCtx, c.session.Token(), taskID, to)
	cancel()

	if err == nil {
		// Servers may answer a move without a body; the optimistic state stands.
		if task.ID() == taskID {
			c.store.Apply("confirm-move", func(b *entity.Board) *entity.Board {
				if listID, ok := b.ListOf(taskID); ok && listID == to {
					return b.UpsertTask(task, to)
				}
				return b
			})
		}
		logger.Info("task moved")
		result.Outcome = OutcomeCommitted
		return result
	}

	logger.WithError(err).Warn("move rejected, reconciling board")
	result.Outcome = OutcomeReconciled
	result.Err = err

	refreshCtx, cancelRefresh := c.withCommitTimeout(context.WithoutCancel(ctx))
	defer cancelRefresh()
	if rerr := c.refresh.Reconcile(refreshCtx, entity.OpMoveTask, err); rerr != nil {
		// No authoritative board to fall back on: drop the optimistic move.
		c.store.Apply("revert-move", func(b *entity.Board) *entity.Board {
			if listID, ok := b.ListOf(taskID); ok && listID == to {
				if l, ok := snapshot.List(from); ok {
					return b.MoveTask(taskID, to, from, l.IndexOf(taskID))
				}
			}
			return b
		})
		logger.WithError(rerr).Error("reconciliation failed")
	}
	return result
}

// revertLocked undoes the drag's optimistic moves. If nothing else changed
// the board meanwhile the pre-drag snapshot is restored wholesale; otherwise
// only the dragged task is put back.
func (c *Controller) revertLocked() {
	s := c.state
	if s.snapshot == nil {
		return
	}
	current := c.store.Snapshot()
	if current == s.last {
		if current != s.snapshot {
			c.store.ReplaceBoard(s.snapshot)
		}
		return
	}
	if listID, ok := current.ListOf(s.ActiveTaskID); ok && listID != s.SourceListID {
		c.store.MoveTask(s.ActiveTaskID, listID, s.SourceListID, s.sourceIndex)
	}
}

func (c *Controller) withCommitTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.commitTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.commitTimeout)
}
