package task

import (
	"sort"
	"time"

	"rkanban/internal/application/dto"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/service"
	"rkanban/internal/domain/valueobject"
)

// ListTasksFilter narrows ListTasksUseCase results
type ListTasksFilter struct {
	ListID      string
	Priority    valueobject.Priority
	OverdueOnly bool
	// ByDueDate orders tasks by due date (undated last) instead of board order
	ByDueDate bool
}

// ListTasksUseCase handles listing tasks across the board
type ListTasksUseCase struct {
	store *service.BoardStore
	now   func() time.Time
}

// NewListTasksUseCase creates a new ListTasksUseCase
func NewListTasksUseCase(store *service.BoardStore) *ListTasksUseCase {
	return &ListTasksUseCase{store: store, now: time.Now}
}

// Execute lists tasks in board order, list by list
func (uc *ListTasksUseCase) Execute(filter ListTasksFilter) ([]dto.TaskDTO, error) {
	board := uc.store.Snapshot()
	if filter.ListID != "" && !board.HasList(filter.ListID) {
		return nil, &entity.NotFoundError{Kind: "list", ID: filter.ListID}
	}

	now := uc.now()
	result := make([]dto.TaskDTO, 0)
	var dates []valueobject.DueDate
	for _, l := range board.Lists() {
		if filter.ListID != "" && l.ID() != filter.ListID {
			continue
		}
		for _, t := range l.Tasks() {
			if filter.Priority != "" && t.Priority() != filter.Priority {
				continue
			}
			if filter.OverdueOnly && !t.IsOverdue(now) {
				continue
			}
			result = append(result, dto.TaskToDTO(t, l.ID(), now))
			dates = append(dates, t.DueDate())
		}
	}

	if filter.ByDueDate {
		idx := make([]int, len(result))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			da, db := dates[idx[a]], dates[idx[b]]
			if da.IsZero() || db.IsZero() {
				return !da.IsZero() && db.IsZero()
			}
			return da.Time().Before(db.Time())
		})
		sorted := make([]dto.TaskDTO, len(result))
		for i, j := range idx {
			sorted[i] = result[j]
		}
		result = sorted
	}
	return result, nil
}
