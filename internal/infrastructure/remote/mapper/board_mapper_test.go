package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/valueobject"
)

const boardJSON = `{
  "_id": "B1",
  "lists": [
    {"_id": "L1", "title": "Todo", "tasks": [
      {"_id": "T1", "title": "Write", "description": "docs", "dueDate": "2025-02-03T00:00:00.000Z", "priority": "high"},
      {"_id": "T2", "title": "Test", "description": ""}
    ]},
    {"_id": "L2", "title": "Done", "tasks": [
      {"_id": "T3", "title": "Plan", "description": "", "priority": "medium", "listId": "L2"}
    ]}
  ]
}`

func TestBoardFromWire(t *testing.T) {
	var w BoardWire
	require.NoError(t, json.Unmarshal([]byte(boardJSON), &w))

	b, err := BoardFromWire(w)
	require.NoError(t, err)

	require.Equal(t, 2, b.ListCount())
	task, listID, ok := b.FindTask("T1")
	require.True(t, ok)
	assert.Equal(t, "L1", listID)
	assert.Equal(t, "2025-02-03", task.DueDate().String())
	assert.Equal(t, valueobject.PriorityHigh, task.Priority())

	task, _, ok = b.FindTask("T2")
	require.True(t, ok)
	assert.Equal(t, valueobject.PriorityLow, task.Priority())
	assert.True(t, task.DueDate().IsZero())
}

// fetch -> replace -> serialize keeps ids and order
func TestBoardRoundTrip(t *testing.T) {
	var w BoardWire
	require.NoError(t, json.Unmarshal([]byte(boardJSON), &w))
	b, err := BoardFromWire(w)
	require.NoError(t, err)

	out := BoardToWire(b)

	require.Len(t, out.Lists, 2)
	for i, l := range w.Lists {
		assert.Equal(t, l.ID, out.Lists[i].ID)
		assert.Equal(t, l.Title, out.Lists[i].Title)
		require.Len(t, out.Lists[i].Tasks, len(l.Tasks))
		for j, task := range l.Tasks {
			assert.Equal(t, task.ID, out.Lists[i].Tasks[j].ID)
			assert.Equal(t, l.ID, out.Lists[i].Tasks[j].ListID)
		}
	}
	assert.Equal(t, "2025-02-03", out.Lists[0].Tasks[0].DueDate)

	again, err := BoardFromWire(out)
	require.NoError(t, err)
	assert.Equal(t, b.TaskIDs(), again.TaskIDs())
}

func TestBoardFromWireDropsDuplicateTasks(t *testing.T) {
	w := BoardWire{Lists: []ListWire{
		{ID: "L1", Title: "a", Tasks: []TaskWire{{ID: "T1", Title: "x"}}},
		{ID: "L2", Title: "b", Tasks: []TaskWire{{ID: "T1", Title: "x"}, {ID: "T2", Title: "y"}}},
	}}

	b, err := BoardFromWire(w)

	require.NoError(t, err)
	listID, _ := b.ListOf("T1")
	assert.Equal(t, "L1", listID)
	assert.Equal(t, 2, b.TaskCount())
	require.NoError(t, b.Validate())
}

func TestTaskFromWireTolerance(t *testing.T) {
	task, err := TaskFromWire(TaskWire{ID: "T1", Title: "x", Priority: "urgent", DueDate: "soon"})
	require.NoError(t, err)
	assert.Equal(t, valueobject.PriorityLow, task.Priority())
	assert.True(t, task.DueDate().IsZero())

	_, err = TaskFromWire(TaskWire{ID: "T2"})
	assert.Error(t, err)
}

func TestPayloadToWire(t *testing.T) {
	due, err := valueobject.ParseDueDate("2025-01-09")
	require.NoError(t, err)

	w := PayloadToWire(repository.TaskPayload{Title: "x", DueDate: due, ListID: "L1"})

	assert.Equal(t, "low", w.Priority)
	assert.Equal(t, "2025-01-09", w.DueDate)
	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "_id")
}

func TestPayloadToWireSendsClearedDueDate(t *testing.T) {
	raw, err := json.Marshal(PayloadToWire(repository.TaskPayload{Title: "x", ListID: "L1"}))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"dueDate":""`)
	assert.Contains(t, string(raw), `"description":""`)
}
