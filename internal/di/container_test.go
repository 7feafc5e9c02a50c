package di

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/usecase/drag"
	"rkanban/internal/domain/entity"
	"rkanban/internal/infrastructure/config"
	"rkanban/internal/testutil/boardapi"
)

func newContainer(t *testing.T, api *boardapi.Server) *Container {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.API.BaseURL = api.URL
	cfg.Storage.DataPath = t.TempDir()
	cfg.Sync.CommitTimeout = time.Second

	c, err := InitializeContainer(cfg)
	require.NoError(t, err)
	return c
}

func seed(api *boardapi.Server) {
	api.Seed(
		boardapi.List{ID: "L1", Title: "Todo", Tasks: []boardapi.Task{{ID: "T1", Title: "Write"}, {ID: "T2", Title: "Test"}}},
		boardapi.List{ID: "L2", Title: "Done", Tasks: []boardapi.Task{{ID: "T3", Title: "Plan"}}},
	)
}

func TestLoginPersistsTokenForNextContainer(t *testing.T) {
	api := boardapi.NewServer(t)
	api.AddUser("ada@example.com", "secret")
	cfg := config.Default(t.TempDir())
	cfg.API.BaseURL = api.URL

	first, err := InitializeContainer(cfg)
	require.NoError(t, err)
	require.False(t, first.Session.Authenticated())
	require.NoError(t, first.LoginUseCase.Execute(context.Background(), "ada@example.com", "secret"))

	second, err := InitializeContainer(cfg)
	require.NoError(t, err)
	assert.True(t, second.Session.Authenticated())
	assert.Equal(t, first.Session.Token(), second.Session.Token())
}

func TestEnvironmentTokenWins(t *testing.T) {
	api := boardapi.NewServer(t)
	cfg := config.Default(t.TempDir())
	cfg.API.BaseURL = api.URL
	cfg.API.Token = api.Token("ci@example.com")

	c, err := InitializeContainer(cfg)
	require.NoError(t, err)

	seed(api)
	b, err := c.RefreshBoardUseCase.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, b.TaskCount())
}

// Hovering L2, L1, L2 then dropping commits one move straight to L2.
func TestDragSessionAgainstServer(t *testing.T) {
	api := boardapi.NewServer(t)
	seed(api)
	c := newContainer(t, api)
	require.NoError(t, c.Session.SetToken(api.Token("ada@example.com")))
	_, err := c.RefreshBoardUseCase.Execute(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.DragController.Start("T1"))
	c.DragController.Over("L2")
	c.DragController.Over("T2")
	c.DragController.Over("T3")
	res := c.DragController.End(context.Background(), "L2")

	assert.Equal(t, drag.OutcomeCommitted, res.Outcome)
	assert.Equal(t, 1, api.Calls(http.MethodPut, "/api/board/task/T1"))
	lists := api.Lists()
	require.Len(t, lists[1].Tasks, 2)
	assert.Equal(t, "T1", lists[1].Tasks[1].ID)

	listID, ok := c.Store.Snapshot().ListOf("T1")
	require.True(t, ok)
	assert.Equal(t, "L2", listID)
}

// A rejected move is rolled back by refetching the whole board.
func TestRejectedDragReconciles(t *testing.T) {
	api := boardapi.NewServer(t)
	seed(api)
	c := newContainer(t, api)
	require.NoError(t, c.Session.SetToken(api.Token("ada@example.com")))
	_, err := c.RefreshBoardUseCase.Execute(context.Background())
	require.NoError(t, err)

	api.FailNext(http.MethodPut, "/api/board/task/T1", http.StatusInternalServerError, "write conflict")
	require.NoError(t, c.DragController.Start("T1"))
	res := c.DragController.End(context.Background(), "L2")

	assert.Equal(t, drag.OutcomeReconciled, res.Outcome)
	assert.Equal(t, 2, api.Calls(http.MethodGet, "/api/board"))
	listID, _ := c.Store.Snapshot().ListOf("T1")
	assert.Equal(t, "L1", listID)
	assert.False(t, c.Tracker.Saving())
}

// Scenario C: editing a task into another list moves it everywhere.
func TestEditIntoOtherList(t *testing.T) {
	api := boardapi.NewServer(t)
	seed(api)
	c := newContainer(t, api)
	require.NoError(t, c.Session.SetToken(api.Token("ada@example.com")))
	_, err := c.RefreshBoardUseCase.Execute(context.Background())
	require.NoError(t, err)

	form, err := c.FindTaskUseCase.Form("T2")
	require.NoError(t, err)
	form.Title = "Test everything"
	form.DueDate = "2025-09-30"
	form.ListID = "L2"
	got, err := c.SubmitTaskUseCase.Execute(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, dto.TaskDTO{ID: "T2", Title: "Test everything", DueDate: "2025-09-30", Priority: "low", ListID: "L2", IsOverdue: got.IsOverdue}, got)
	b := c.Store.Snapshot()
	require.NoError(t, b.Validate())
	listID, _ := b.ListOf("T2")
	assert.Equal(t, "L2", listID)
	l1, _ := b.List("L1")
	assert.Equal(t, 1, l1.TaskCount())
}

// Scenario E: deleting a list drops its tasks from the board.
func TestDeleteListCascade(t *testing.T) {
	api := boardapi.NewServer(t)
	seed(api)
	c := newContainer(t, api)
	require.NoError(t, c.Session.SetToken(api.Token("ada@example.com")))
	_, err := c.RefreshBoardUseCase.Execute(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.DeleteListUseCase.Execute(context.Background(), "L1"))

	assert.Equal(t, []string{"T3"}, c.Store.Snapshot().TaskIDs())
}

// A saved board warms up the next container for the same server until logout.
func TestBoardCacheAcrossContainers(t *testing.T) {
	api := boardapi.NewServer(t)
	seed(api)
	cfg := config.Default(t.TempDir())
	cfg.API.BaseURL = api.URL
	cfg.Storage.DataPath = t.TempDir()

	first, err := InitializeContainer(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Session.SetToken(api.Token("ada@example.com")))
	_, err = first.RefreshBoardUseCase.Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.CachedBoardUseCase.Persist())

	second, err := InitializeContainer(cfg)
	require.NoError(t, err)
	restored, err := second.CachedBoardUseCase.Restore()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, []string{"T1", "T2", "T3"}, second.Store.Snapshot().TaskIDs())
	assert.Equal(t, 1, api.Calls(http.MethodGet, "/api/board"))

	require.NoError(t, second.LogoutUseCase.Execute())
	_, err = second.Cache.Load()
	assert.ErrorIs(t, err, entity.ErrBoardNotCached)
}
