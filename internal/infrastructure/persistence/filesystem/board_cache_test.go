package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/valueobject"
)

func sampleBoard(t *testing.T) *entity.Board {
	t.Helper()
	write, err := entity.NewTask("T1", "Write", "first draft", valueobject.NewDueDate(2025, 9, 30), valueobject.PriorityHigh, "L1")
	require.NoError(t, err)
	review, err := entity.NewTask("T2", "Review", "", valueobject.DueDate{}, valueobject.PriorityLow, "L1")
	require.NoError(t, err)
	todo, err := entity.NewList("L1", "Todo", []entity.Task{write, review})
	require.NoError(t, err)
	done, err := entity.NewList("L2", "Done", nil)
	require.NoError(t, err)
	b, err := entity.NewBoard([]entity.List{todo, done})
	require.NoError(t, err)
	return b
}

func TestBoardCachePath(t *testing.T) {
	dir := t.TempDir()
	cache := NewBoardCache(dir, "https://kanban.example.com/")

	assert.Equal(t, filepath.Join(dir, "boards", "kanban-example-com.yml"), cache.Path())
}

func TestBoardCacheRoundTrip(t *testing.T) {
	cache := NewBoardCache(t.TempDir(), "http://localhost:8080")
	b := sampleBoard(t)

	require.NoError(t, cache.Save(b))
	got, err := cache.Load()
	require.NoError(t, err)

	assert.Equal(t, b.TaskIDs(), got.TaskIDs())
	task, listID, ok := got.FindTask("T1")
	require.True(t, ok)
	assert.Equal(t, "L1", listID)
	assert.Equal(t, "first draft", task.Description())
	assert.Equal(t, "2025-09-30", task.DueDate().String())
	assert.Equal(t, valueobject.PriorityHigh, task.Priority())
	done, ok := got.List("L2")
	require.True(t, ok)
	assert.Equal(t, 0, done.TaskCount())

	info, err := os.Stat(cache.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestBoardCacheMissing(t *testing.T) {
	cache := NewBoardCache(t.TempDir(), "http://localhost:8080")

	_, err := cache.Load()
	assert.ErrorIs(t, err, entity.ErrBoardNotCached)
	assert.NoError(t, cache.Clear())
}

func TestBoardCacheClear(t *testing.T) {
	cache := NewBoardCache(t.TempDir(), "http://localhost:8080")
	require.NoError(t, cache.Save(sampleBoard(t)))

	require.NoError(t, cache.Clear())

	_, err := cache.Load()
	assert.ErrorIs(t, err, entity.ErrBoardNotCached)
}

func TestBoardCacheRejectsUnknownVersion(t *testing.T) {
	cache := NewBoardCache(t.TempDir(), "http://localhost:8080")
	require.NoError(t, os.MkdirAll(filepath.Dir(cache.Path()), 0o700))
	require.NoError(t, os.WriteFile(cache.Path(), []byte("version: 9\nlists: []\n"), 0o600))

	_, err := cache.Load()
	assert.ErrorContains(t, err, "unsupported board cache version 9")
}

func TestBoardCacheRejectsDuplicateTasks(t *testing.T) {
	cache := NewBoardCache(t.TempDir(), "http://localhost:8080")
	data := `version: 1
lists:
  - id: L1
    title: Todo
    tasks:
      - {id: T1, title: Write, priority: low}
  - id: L2
    title: Done
    tasks:
      - {id: T1, title: Write, priority: low}
`
	require.NoError(t, os.MkdirAll(filepath.Dir(cache.Path()), 0o700))
	require.NoError(t, os.WriteFile(cache.Path(), []byte(data), 0o600))

	_, err := cache.Load()
	assert.Error(t, err)
}
