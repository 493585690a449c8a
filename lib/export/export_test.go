package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tiktok-discover/lib/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func fixtureRecords(t *testing.T) []map[string]any {
	return []map[string]any{
		{
			"id":         "100",
			"text":       testutil.RandomText(t, 24),
			"createTime": float64(1700000000),
			"isAd":       false,
			"authorMeta": map[string]any{"id": "alice", "followers": float64(10)},
			"mediaUrls":  []any{"https://v.example/play"},
			"hashtags":   []any{"travel"},
		},
		{
			"id":          "200",
			"text":        nil,
			"createTime":  nil,
			"isAd":        true,
			"webVideoUrl": "https://www.tiktok.com/@bob/video/200",
		},
	}
}

func TestExportAllFormats(t *testing.T) {
	cleanup := testutil.Setup(t, "export")
	defer cleanup()

	dir := t.TempDir()
	records := fixtureRecords(t)

	err := ExportAll(records, dir, []string{"json", "csv", "excel", "xml", "html"})
	require.NoError(t, err)

	for _, name := range []string{
		"tiktok_discover_export.json",
		"tiktok_discover_export.csv",
		"tiktok_discover_export.xlsx",
		"tiktok_discover_export.xml",
		"tiktok_discover_export.html",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Greater(t, info.Size(), int64(0), name)
	}
}

func TestJsonRoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := fixtureRecords(t)

	require.NoError(t, ExportJSON(records, filepath.Join(dir, "out.json")))

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)

	var reloaded []map[string]any
	require.NoError(t, json.Unmarshal(data, &reloaded))

	if diff := cmp.Diff(records, reloaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCsvColumnsAndCells(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	require.NoError(t, ExportCSV(fixtureRecords(t), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// header is the sorted union of keys across records
	header := rows[0]
	require.Contains(t, header, "id")
	require.Contains(t, header, "webVideoUrl")
	for i := 1; i < len(header); i++ {
		require.LessOrEqual(t, header[i-1], header[i])
	}

	byColumn := map[string]string{}
	for i, column := range header {
		byColumn[column] = rows[1][i]
	}
	// nested values become json text, scalars stay plain
	require.Equal(t, "100", byColumn["id"])
	require.Equal(t, "1700000000", byColumn["createTime"])
	require.Equal(t, "false", byColumn["isAd"])
	require.JSONEq(t, `{"id": "alice", "followers": 10}`, byColumn["authorMeta"])
	require.JSONEq(t, `["travel"]`, byColumn["hashtags"])

	// nulls flatten to empty cells
	byColumn = map[string]string{}
	for i, column := range header {
		byColumn[column] = rows[2][i]
	}
	require.Equal(t, "", byColumn["text"])
	require.Equal(t, "", byColumn["createTime"])
}

func TestCsvSkipsEmptyRecordSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ExportCSV(nil, path))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestXmlShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, ExportXML(fixtureRecords(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	require.Contains(t, text, "<videos>")
	require.Contains(t, text, "<video>")
	require.Contains(t, text, "<id>100</id>")
	// nulls serialize as empty elements
	require.Contains(t, text, "<text></text>")
}

func TestHtmlEmptyRecordSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, ExportHTML(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "No data available")
}

func TestHtmlTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, ExportHTML(fixtureRecords(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	require.Contains(t, text, "<table")
	require.Contains(t, text, "100")
	require.Contains(t, strings.ToLower(text), "webvideourl")
}

func TestMapsConversion(t *testing.T) {
	type nested struct {
		Value string `json:"value"`
	}
	type record struct {
		ID     string `json:"id"`
		Nested nested `json:"nested"`
	}

	maps, err := Maps([]record{{ID: "1", Nested: nested{Value: "x"}}})
	require.NoError(t, err)
	require.Len(t, maps, 1)
	require.Equal(t, "1", maps[0]["id"])
	require.Equal(t, map[string]any{"value": "x"}, maps[0]["nested"])
}
