package entity

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/domain/valueobject"
)

func mustTask(t *testing.T, id string) Task {
	t.Helper()
	task, err := NewTask(id, "Task "+id, "", valueobject.DueDate{}, valueobject.PriorityLow, "")
	require.NoError(t, err)
	return task
}

func mustList(t *testing.T, id string, taskIDs ...string) List {
	t.Helper()
	tasks := make([]Task, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		tasks = append(tasks, mustTask(t, taskID))
	}
	l, err := NewList(id, "List "+id, tasks)
	require.NoError(t, err)
	return l
}

func mustBoard(t *testing.T, lists ...List) *Board {
	t.Helper()
	b, err := NewBoard(lists)
	require.NoError(t, err)
	return b
}

func taskIDsOf(b *Board, listID string) []string {
	l, ok := b.List(listID)
	if !ok {
		return nil
	}
	ids := make([]string, 0, l.TaskCount())
	for _, task := range l.Tasks() {
		ids = append(ids, task.ID())
	}
	return ids
}

func TestNewBoardRejectsDuplicateMembership(t *testing.T) {
	_, err := NewBoard([]List{mustList(t, "L1", "T1"), mustList(t, "L2", "T1")})
	assert.Error(t, err)

	_, err = NewBoard([]List{mustList(t, "L1"), mustList(t, "L1")})
	assert.Error(t, err)
}

func TestMoveTaskAcrossLists(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2"), mustList(t, "L2"))

	next := b.MoveTask("T1", "L1", "L2", AppendIndex)

	assert.Equal(t, []string{"T2"}, taskIDsOf(next, "L1"))
	assert.Equal(t, []string{"T1"}, taskIDsOf(next, "L2"))
	assert.NoError(t, next.Validate())

	task, listID, ok := next.FindTask("T1")
	require.True(t, ok)
	assert.Equal(t, "L2", listID)
	assert.Equal(t, "L2", task.ListID())

	// original snapshot untouched
	assert.Equal(t, []string{"T1", "T2"}, taskIDsOf(b, "L1"))
	assert.Empty(t, taskIDsOf(b, "L2"))
}

func TestMoveTaskAtIndex(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1"), mustList(t, "L2", "T2", "T3"))

	next := b.MoveTask("T1", "L1", "L2", 1)
	assert.Equal(t, []string{"T2", "T1", "T3"}, taskIDsOf(next, "L2"))

	next = b.MoveTask("T1", "L1", "L2", 99)
	assert.Equal(t, []string{"T2", "T3", "T1"}, taskIDsOf(next, "L2"))
}

func TestMoveTaskIdempotentWithinSameList(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2", "T3"))

	assert.Same(t, b, b.MoveTask("T2", "L1", "L1", 1))
	assert.Same(t, b, b.MoveTask("T2", "L1", "L1", AppendIndex))
}

func TestMoveTaskReordersWithinSameList(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2", "T3"))

	next := b.MoveTask("T1", "L1", "L1", 2)
	assert.Equal(t, []string{"T2", "T3", "T1"}, taskIDsOf(next, "L1"))

	next = b.MoveTask("T3", "L1", "L1", 0)
	assert.Equal(t, []string{"T3", "T1", "T2"}, taskIDsOf(next, "L1"))
}

func TestMoveTaskNoOps(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1"), mustList(t, "L2", "T2"))

	assert.Same(t, b, b.MoveTask("T2", "L1", "L2", AppendIndex), "task not in from-list")
	assert.Same(t, b, b.MoveTask("T1", "L1", "missing", AppendIndex), "unknown destination")
	assert.Same(t, b, b.MoveTask("T1", "missing", "L2", AppendIndex), "unknown source")
	assert.Same(t, b, b.MoveTask("nope", "L1", "L2", AppendIndex), "unknown task")
}

func TestUpsertTaskMovesBetweenLists(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2"), mustList(t, "L2", "T3"))

	edited, err := NewTask("T1", "Renamed", "desc", valueobject.DueDate{}, valueobject.PriorityHigh, "L1")
	require.NoError(t, err)

	next := b.UpsertTask(edited, "L2")

	assert.Equal(t, []string{"T2"}, taskIDsOf(next, "L1"))
	assert.Equal(t, []string{"T3", "T1"}, taskIDsOf(next, "L2"))
	require.NoError(t, next.Validate())

	task, listID, ok := next.FindTask("T1")
	require.True(t, ok)
	assert.Equal(t, "L2", listID)
	assert.Equal(t, "Renamed", task.Title())
	assert.Equal(t, valueobject.PriorityHigh, task.Priority())
}

func TestUpsertTaskReplacesInPlace(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2", "T3"))

	edited, err := NewTask("T2", "Edited", "", valueobject.DueDate{}, valueobject.PriorityMedium, "L1")
	require.NoError(t, err)

	next := b.UpsertTask(edited, "L1")
	assert.Equal(t, []string{"T1", "T2", "T3"}, taskIDsOf(next, "L1"))
	task, _, _ := next.FindTask("T2")
	assert.Equal(t, "Edited", task.Title())
}

func TestUpsertTaskUnknownListIsNoOp(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1"))
	assert.Same(t, b, b.UpsertTask(mustTask(t, "T9"), "missing"))
}

func TestUpsertListRenameKeepsTasks(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1"), mustList(t, "L2"))

	renamed, err := NewList("L1", "Doing", nil)
	require.NoError(t, err)

	next := b.UpsertList(renamed)
	l, ok := next.List("L1")
	require.True(t, ok)
	assert.Equal(t, "Doing", l.Title())
	assert.Equal(t, []string{"T1"}, taskIDsOf(next, "L1"))
	assert.Equal(t, 2, next.ListCount())
}

func TestUpsertListAppendsAndClaimsTasks(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2"))

	next := b.UpsertList(mustList(t, "L2", "T2"))
	assert.Equal(t, []string{"T1"}, taskIDsOf(next, "L1"))
	assert.Equal(t, []string{"T2"}, taskIDsOf(next, "L2"))
	assert.NoError(t, next.Validate())
}

func TestRemoveListCascadesTasks(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2"), mustList(t, "L2", "T3"))

	next := b.RemoveList("L1")

	assert.False(t, next.HasList("L1"))
	assert.Equal(t, []string{"T3"}, next.TaskIDs())
	for _, id := range []string{"T1", "T2"} {
		_, ok := next.ListOf(id)
		assert.False(t, ok, "task %s must not survive its list", id)
	}
	assert.Same(t, b, b.RemoveList("missing"))
}

func TestRemoveTask(t *testing.T) {
	b := mustBoard(t, mustList(t, "L1", "T1", "T2"))

	next := b.RemoveTask("T1")
	assert.Equal(t, []string{"T2"}, taskIDsOf(next, "L1"))
	assert.Same(t, next, next.RemoveTask("T1"))
}

// Every reachable snapshot keeps each task in exactly one list.
func TestMembershipInvariantUnderRandomTransitions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := mustBoard(t, mustList(t, "L1", "T1", "T2", "T3"), mustList(t, "L2", "T4"), mustList(t, "L3"))
	listIDs := []string{"L1", "L2", "L3", "L4"}
	taskIDs := []string{"T1", "T2", "T3", "T4", "T5", "T6"}

	for step := 0; step < 2000; step++ {
		taskID := taskIDs[rng.Intn(len(taskIDs))]
		listID := listIDs[rng.Intn(len(listIDs))]
		switch rng.Intn(5) {
		case 0:
			from, ok := b.ListOf(taskID)
			if !ok {
				from = listIDs[rng.Intn(len(listIDs))]
			}
			b = b.MoveTask(taskID, from, listID, rng.Intn(5)-1)
		case 1:
			b = b.UpsertTask(mustTask(t, taskID), listID)
		case 2:
			b = b.RemoveTask(taskID)
		case 3:
			if rng.Intn(4) == 0 {
				b = b.RemoveList(listID)
			}
		case 4:
			b = b.UpsertList(mustList(t, listID))
		}
		require.NoError(t, b.Validate(), fmt.Sprintf("step %d", step))
	}
}
