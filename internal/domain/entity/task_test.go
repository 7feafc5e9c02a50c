package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/domain/valueobject"
)

func TestNewTaskValidation(t *testing.T) {
	_, err := NewTask("T1", "  ", "", valueobject.DueDate{}, valueobject.PriorityLow, "L1")
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrEmptyTaskTitle)

	_, err = NewTask("", "title", "", valueobject.DueDate{}, valueobject.PriorityLow, "L1")
	assert.ErrorIs(t, err, ErrEmptyTaskID)

	_, err = NewTask("T1", "title", "", valueobject.DueDate{}, valueobject.Priority("urgent"), "L1")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestNewTaskDefaultsPriority(t *testing.T) {
	task, err := NewTask("T1", "title", "", valueobject.DueDate{}, "", "L1")
	require.NoError(t, err)
	assert.Equal(t, valueobject.PriorityLow, task.Priority())
}

func TestTaskIsOverdue(t *testing.T) {
	task, err := NewTask("T1", "title", "", valueobject.NewDueDate(2024, time.January, 1), valueobject.PriorityLow, "L1")
	require.NoError(t, err)
	assert.True(t, task.IsOverdue(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, task.IsOverdue(time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC)))
}

func TestNewListValidation(t *testing.T) {
	_, err := NewList("L1", "", nil)
	assert.ErrorIs(t, err, ErrEmptyListTitle)
	assert.True(t, IsValidation(err))
}

func TestErrorHelpers(t *testing.T) {
	sf := &SyncFailure{Op: OpMoveTask, EntityID: "T1", StatusCode: 500, Err: errors.New("boom")}
	wrapped := errors.Join(errors.New("context"), sf)

	got, ok := AsSyncFailure(wrapped)
	require.True(t, ok)
	assert.Equal(t, OpMoveTask, got.Op)
	assert.Contains(t, sf.Error(), "status 500")

	nf := &NotFoundError{Kind: "task", ID: "T1"}
	assert.True(t, IsNotFound(nf))
	assert.ErrorIs(t, nf, ErrTaskNotFound)
	assert.NotErrorIs(t, nf, ErrListNotFound)
}
