package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/valueobject"
)

func seedBoard(t *testing.T) *entity.Board {
	t.Helper()
	t1, err := entity.NewTask("T1", "One", "", valueobject.DueDate{}, valueobject.PriorityLow, "L1")
	require.NoError(t, err)
	t2, err := entity.NewTask("T2", "Two", "", valueobject.DueDate{}, valueobject.PriorityLow, "L1")
	require.NoError(t, err)
	l1, err := entity.NewList("L1", "Todo", []entity.Task{t1, t2})
	require.NoError(t, err)
	l2, err := entity.NewList("L2", "Done", nil)
	require.NoError(t, err)
	b, err := entity.NewBoard([]entity.List{l1, l2})
	require.NoError(t, err)
	return b
}

func TestBoardStoreTransitionsProduceNewSnapshots(t *testing.T) {
	store := NewBoardStore()
	seed := seedBoard(t)
	store.ReplaceBoard(seed)
	require.Same(t, seed, store.Snapshot())

	before := store.Snapshot()
	after := store.MoveTask("T1", "L1", "L2", entity.AppendIndex)

	assert.NotSame(t, before, after)
	assert.Same(t, after, store.Snapshot())
	listID, _ := after.ListOf("T1")
	assert.Equal(t, "L2", listID)
	listID, _ = before.ListOf("T1")
	assert.Equal(t, "L1", listID, "earlier snapshot must not change")
	assert.Equal(t, uint64(2), store.Version())
}

func TestBoardStoreNoOpDoesNotBumpVersion(t *testing.T) {
	store := NewBoardStore()
	store.ReplaceBoard(seedBoard(t))
	v := store.Version()

	store.MoveTask("T1", "L1", "L1", 0)
	store.RemoveTask("missing")
	store.RemoveList("missing")

	assert.Equal(t, v, store.Version())
}

func TestBoardStoreSubscribe(t *testing.T) {
	store := NewBoardStore()
	changes, cancel := store.Subscribe()
	defer cancel()

	store.ReplaceBoard(seedBoard(t))
	store.RemoveList("L1")

	first := <-changes
	second := <-changes
	assert.Equal(t, "replace-board", first.Reason)
	assert.Equal(t, "remove-list", second.Reason)
	assert.Equal(t, uint64(2), second.Version)
	assert.False(t, second.Board.HasList("L1"))

	cancel()
	_, open := <-changes
	assert.False(t, open)
	cancel()
}

func TestBoardStoreConcurrentTransitionsKeepInvariant(t *testing.T) {
	store := NewBoardStore()
	store.ReplaceBoard(seedBoard(t))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := "L1", "L2"
			if i%2 == 1 {
				from, to = to, from
			}
			store.MoveTask("T1", from, to, entity.AppendIndex)
			store.MoveTask("T2", to, from, 0)
		}(i)
	}
	wg.Wait()

	snap := store.Snapshot()
	require.NoError(t, snap.Validate())
	assert.ElementsMatch(t, []string{"T1", "T2"}, snap.TaskIDs())
}

func TestValidationService(t *testing.T) {
	v := NewValidationService()

	assert.True(t, entity.IsValidation(v.ValidateTaskTitle(" ")))
	assert.NoError(t, v.ValidateTaskTitle("ok"))
	assert.True(t, entity.IsValidation(v.ValidateListTitle("")))

	p, err := v.ValidatePriority("")
	require.NoError(t, err)
	assert.Equal(t, valueobject.PriorityLow, p)

	_, err = v.ValidateDueDate("tomorrow")
	assert.True(t, entity.IsValidation(err))

	assert.True(t, entity.IsValidation(v.ValidateCredentials("", "x")))
	assert.True(t, entity.IsValidation(v.ValidateCredentials("a@b.c", "")))
}
