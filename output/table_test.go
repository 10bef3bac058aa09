package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

func boolPtr(b bool) *bool { return &b }

func TestTableRender(t *testing.T) {
	table := &Table{
		Title: "Cinemas (2)",
		Columns: []Column{
			{Name: "ID", Width: 6},
			{Name: "Name", Width: 20},
			{Name: "City", Width: 12},
		},
		Rows: [][]string{
			{"1", "Kino International", "Berlin"},
			{"2", "Lichtburg", "Essen"},
		},
		Color: boolPtr(false),
	}

	got := table.Render()

	assert.Contains(t, got, "Cinemas (2)")
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "Kino International")
	assert.Contains(t, got, "Lichtburg")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// title, header, rule, two rows
	assert.Len(t, lines, 5)
}

func TestTableRenderTruncates(t *testing.T) {
	table := &Table{
		Columns: []Column{{Name: "Name", Width: 10}},
		Rows:    [][]string{{"a very long cinema name"}},
		Color:   boolPtr(false),
	}

	got := table.Render()
	assert.Contains(t, got, "a very ...")
	assert.NotContains(t, got, "a very long")
}

func TestTableRenderShortRow(t *testing.T) {
	table := &Table{
		Columns: []Column{
			{Name: "A", Width: 4},
			{Name: "B", Width: 4},
		},
		Rows:  [][]string{{"x"}},
		Color: boolPtr(false),
	}

	// Missing cells render empty rather than panicking.
	got := table.Render()
	assert.Contains(t, got, "x")
}

func TestPrintListJSON(t *testing.T) {
	var buf bytes.Buffer
	page := 2
	total := 61

	items := []cineamo.Item{
		{"id": float64(1), "name": "Kino A"},
	}

	require.NoError(t, PrintListJSON(&buf, items, &page, &total))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, float64(2), decoded["page"])
	assert.Equal(t, float64(61), decoded["total_items"])
	assert.Equal(t, float64(1), decoded["count"])
}

func TestPrintListJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintListJSON(&buf, nil, nil, nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []any{}, decoded["items"])
	assert.NotContains(t, decoded, "page")
}
