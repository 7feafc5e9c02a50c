package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/di"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/service"
)

func TestExtractArgsFromInput(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []string
	}{
		"ids format":  {input: "64f1c2\tWrite docs\n64f1c3\tShip\n", want: []string{"64f1c2"}},
		"path format": {input: "64f1c2 :: Write docs\n", want: []string{"64f1c2"}},
		"bare id":     {input: "\n  64f1c2  \n", want: []string{"64f1c2"}},
		"words":       {input: "64f1c2 extra words", want: []string{"64f1c2"}},
		"empty":       {input: "\n\n", want: nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractArgsFromInput([]byte(tc.input)))
		})
	}
}

func TestResolveArgsKeepsGivenArgs(t *testing.T) {
	got, err := resolveArgs([]string{"a", "b"}, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func withLists(t *testing.T, titles map[string]string, order ...string) {
	t.Helper()
	lists := make([]entity.List, 0, len(order))
	for _, id := range order {
		l, err := entity.NewList(id, titles[id], nil)
		require.NoError(t, err)
		lists = append(lists, l)
	}
	b, err := entity.NewBoard(lists)
	require.NoError(t, err)

	store := service.NewBoardStore()
	store.ReplaceBoard(b)
	prev := container
	container = &di.Container{Store: store}
	t.Cleanup(func() { container = prev })
}

func TestResolveListByIDOrTitle(t *testing.T) {
	withLists(t, map[string]string{"L1": "Todo", "L2": "Done", "L3": "done"}, "L1", "L2", "L3")

	l, err := resolveList("L2")
	require.NoError(t, err)
	assert.Equal(t, "Done", l.Title())

	l, err = resolveList("TODO")
	require.NoError(t, err)
	assert.Equal(t, "L1", l.ID())

	_, err = resolveList("done")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveList("Backlog")
	assert.True(t, entity.IsNotFound(err))
}
