package drag

import "rkanban/internal/domain/entity"

// Phase is the drag session state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	default:
		return "idle"
	}
}

// State is the observable part of a drag session
type State struct {
	Phase        Phase
	ActiveTaskID string
	SourceListID string
	DestListID   string
}

// dragSession is the full drag session, including what is needed to revert it
type dragSession struct {
	State

	// snapshot is the board before the drag began
	snapshot *entity.Board
	// sourceIndex is the task's position in the source list before the drag
	sourceIndex int
	// last is the snapshot this controller installed most recently; if the
	// store still holds it, nobody else has touched the board since
	last *entity.Board
}

// Outcome tells the caller what a drag end did
type Outcome int

const (
	// OutcomeNone: nothing happened (no destination change or nothing to drop)
	OutcomeNone Outcome = iota
	// OutcomeReverted: optimistic state was rolled back locally, no network call
	OutcomeReverted
	// OutcomeCommitted: the server confirmed the move
	OutcomeCommitted
	// OutcomeReconciled: the server rejected the move and the board was refetched
	OutcomeReconciled
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeReverted:
		return "reverted"
	case OutcomeCommitted:
		return "committed"
	case OutcomeReconciled:
		return "reconciled"
	default:
		return "none"
	}
}

// Result describes a finished drag
type Result struct {
	Outcome Outcome
	TaskID  string
	From    string
	To      string
	// Err holds the SyncFailure of a rejected move. A failed refetch after
	// the rejection is logged and noticed, not returned here.
	Err error
}

// ResolveDestination maps the identifier under the pointer to a list ID.
// A list ID is used directly; otherwise the list holding a task with that ID wins.
func ResolveDestination(board *entity.Board, overID string) (string, bool) {
	if overID == "" {
		return "", false
	}
	if board.HasList(overID) {
		return overID, true
	}
	return board.ListOf(overID)
}
