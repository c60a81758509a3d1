package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestWriteSummaryComparison(t *testing.T) {
	resp, err := structpb.NewStruct(map[string]any{
		"page": map[string]any{
			"kind":      "comparison",
			"indicator": "Comparing: Bulbasaur vs Venusaur",
			"comparison": map[string]any{
				"a":          map[string]any{"name": "Bulbasaur"},
				"b":          map[string]any{"name": "Venusaur"},
				"size_ratio": "Size ratio: 0.35 : 1",
			},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	writeSummary(&buf, resp)

	assert.Equal(t, "Bulbasaur vs Venusaur\nSize ratio: 0.35 : 1\nComparing: Bulbasaur vs Venusaur\n", buf.String())
}

func TestWriteSummaryUnavailable(t *testing.T) {
	resp, err := structpb.NewStruct(map[string]any{
		"page": map[string]any{
			"kind":    "unavailable",
			"message": "Creature data could not be loaded. Please check your data files.",
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	writeSummary(&buf, resp)

	assert.Equal(t, "Creature data could not be loaded. Please check your data files.\n", buf.String())
}

func TestWriteSummarySuggestions(t *testing.T) {
	resp, err := structpb.NewStruct(map[string]any{
		"suggestions": []any{
			map[string]any{"id": 25, "name": "pikachu"},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	writeSummary(&buf, resp)

	assert.Equal(t, "Did you mean:\n  #25 pikachu\n", buf.String())
}

func TestParseID(t *testing.T) {
	id, err := parseID("25")
	require.NoError(t, err)
	assert.Equal(t, 25, id)

	_, err = parseID("0")
	assert.Error(t, err)
	_, err = parseID("pikachu")
	assert.Error(t, err)
}
