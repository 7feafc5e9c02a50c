package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkanban/internal/application/dto"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatterPrintsStructuredData(t *testing.T) {
	task := dto.TaskDTO{ID: "T1", Title: "Write", Priority: "low", ListID: "L1"}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).Print(task))
	assert.Contains(t, buf.String(), `"list_id": "L1"`)

	buf.Reset()
	require.NoError(t, NewFormatter(FormatYAML, &buf).Print(task))
	assert.Contains(t, buf.String(), "list_id: L1")
}

func TestPrinterIDs(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).IDs([]dto.TaskDTO{{ID: "T1", Title: "Write"}, {ID: "T2", Title: "Test"}})
	assert.Equal(t, "T1\tWrite\nT2\tTest\n", buf.String())
}

func TestQuietPrinterSkipsInfo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.SetQuiet(true)
	p.Info("hidden")
	p.Subtle("hidden")
	assert.Empty(t, buf.String())
}
