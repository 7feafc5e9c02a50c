package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository/mocks"
	"rkanban/internal/domain/service"
)

func newCached(t *testing.T) (*CachedBoardUseCase, *mocks.MockBoardCache, *service.BoardStore) {
	t.Helper()
	cache := mocks.NewMockBoardCache(gomock.NewController(t))
	store := service.NewBoardStore()
	return NewCachedBoardUseCase(cache, store), cache, store
}

func TestRestoreInstallsCachedBoard(t *testing.T) {
	uc, cache, store := newCached(t)
	cached := serverBoard(t)
	cache.EXPECT().Load().Return(cached, nil)

	ok, err := uc.Restore()
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Same(t, cached, store.Snapshot())
}

func TestRestoreSkipsWhenBoardFetched(t *testing.T) {
	uc, _, store := newCached(t)
	fetched := store.ReplaceBoard(serverBoard(t))

	ok, err := uc.Restore()
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Same(t, fetched, store.Snapshot())
}

func TestRestoreWithoutCache(t *testing.T) {
	uc, cache, store := newCached(t)
	cache.EXPECT().Load().Return(nil, entity.ErrBoardNotCached)

	ok, err := uc.Restore()
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Zero(t, store.Version())
}

func TestRestoreDiscardsBrokenCache(t *testing.T) {
	uc, cache, store := newCached(t)
	cache.EXPECT().Load().Return(nil, errors.New("yaml: line 3: did not find expected key"))
	cache.EXPECT().Clear().Return(nil)

	ok, err := uc.Restore()
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Equal(t, 0, store.Snapshot().ListCount())
}

func TestPersistSavesSnapshot(t *testing.T) {
	uc, cache, store := newCached(t)
	b := store.ReplaceBoard(serverBoard(t))
	cache.EXPECT().Save(b).Return(nil)

	require.NoError(t, uc.Persist())
}

func TestPersistEmptyBoardClears(t *testing.T) {
	uc, cache, _ := newCached(t)
	cache.EXPECT().Clear().Return(nil)

	require.NoError(t, uc.Persist())
}
