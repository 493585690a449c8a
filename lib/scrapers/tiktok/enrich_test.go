package tiktok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnrichFillsCreateTimeISO(t *testing.T) {
	records := EnrichRecords([]map[string]any{
		{"id": "1", "createTime": float64(1700000000)},
		{"id": "2", "createTime": "1700000000"},
		{"id": "3", "createTime": "garbage"},
		{"id": "4"},
		{"id": "5", "createTime": float64(10), "createTimeISO": "already-set"},
	}, "", nil)

	require.Equal(t, "2023-11-14T22:13:20+00:00", records[0]["createTimeISO"])
	require.Equal(t, "2023-11-14T22:13:20+00:00", records[1]["createTimeISO"])
	require.NotContains(t, records[2], "createTimeISO")
	require.NotContains(t, records[3], "createTimeISO")
	require.Equal(t, "already-set", records[4]["createTimeISO"])
}

func TestEnrichSetsSourceHashtagWithoutOverwriting(t *testing.T) {
	records := EnrichRecords([]map[string]any{
		{"id": "1"},
		{"id": "2", "discoveryInfo": map[string]any{"sourceHashtag": "existing"}},
		{"id": "3", "discoveryInfo": map[string]any{"breadcrumb": []any{"x"}}},
	}, "from_input_file", nil)

	info := records[0]["discoveryInfo"].(map[string]any)
	require.Equal(t, "from_input_file", info["sourceHashtag"])

	info = records[1]["discoveryInfo"].(map[string]any)
	require.Equal(t, "existing", info["sourceHashtag"])

	info = records[2]["discoveryInfo"].(map[string]any)
	require.Equal(t, "from_input_file", info["sourceHashtag"])
	require.Equal(t, []any{"x"}, info["breadcrumb"])
}

func TestEnrichDoesNotMutateTopLevelInput(t *testing.T) {
	original := []map[string]any{{"id": "1", "createTime": float64(0)}}
	enriched := EnrichRecords(original, "tag", nil)

	require.NotContains(t, original[0], "discoveryInfo")
	require.Contains(t, enriched[0], "discoveryInfo")
}
