package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/valueobject"
)

func TestBoardToStorage(t *testing.T) {
	task, err := entity.NewTask("T1", "Write", "", valueobject.DueDate{}, "", "L1")
	require.NoError(t, err)
	l, err := entity.NewList("L1", "Todo", []entity.Task{task})
	require.NoError(t, err)
	b, err := entity.NewBoard([]entity.List{l})
	require.NoError(t, err)

	saved := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	s := BoardToStorage(b, saved)

	assert.Equal(t, StorageVersion, s.Version)
	assert.Equal(t, time.UTC, s.SavedAt.Location())
	require.Len(t, s.Lists, 1)
	assert.Equal(t, []TaskStorage{{ID: "T1", Title: "Write", Priority: "low"}}, s.Lists[0].Tasks)
}

func TestBoardFromStorageUsesHoldingList(t *testing.T) {
	s := BoardStorage{
		Version: StorageVersion,
		Lists: []ListStorage{
			{ID: "L2", Title: "Done", Tasks: []TaskStorage{{ID: "T1", Title: "Write", Priority: "high"}}},
		},
	}

	b, err := BoardFromStorage(s)
	require.NoError(t, err)

	task, listID, ok := b.FindTask("T1")
	require.True(t, ok)
	assert.Equal(t, "L2", listID)
	assert.Equal(t, "L2", task.ListID())
}

func TestBoardFromStorageRejectsBadPriority(t *testing.T) {
	s := BoardStorage{
		Version: StorageVersion,
		Lists:   []ListStorage{{ID: "L1", Title: "Todo", Tasks: []TaskStorage{{ID: "T1", Title: "Write", Priority: "urgent"}}}},
	}

	_, err := BoardFromStorage(s)
	assert.Error(t, err)
}
