package export

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

const htmlPageTemplate = `<html><head><meta charset='utf-8'><title>TikTok Discover Export</title></head><body><h1>TikTok Discover Export</h1>
%s
</body></html>`

const htmlEmptyPage = `<html><head><meta charset='utf-8'><title>TikTok Discover Export</title></head><body><h1>No data available</h1></body></html>`

// ExportHTML renders the flattened records as an HTML table. An empty
// record set still writes a placeholder page.
func ExportHTML(records []map[string]any, path string) error {
	if len(records) == 0 {
		slog.Warn("no data to export to html", "path", path)
		return os.WriteFile(path, []byte(htmlEmptyPage), 0644)
	}

	columns := columnNames(records)

	t := table.NewWriter()

	header := table.Row{}
	for _, column := range columns {
		header = append(header, column)
	}
	t.AppendHeader(header)

	for _, record := range records {
		flat := flattenRecord(record)
		row := table.Row{}
		for _, column := range columns {
			row = append(row, cellString(flat[column]))
		}
		t.AppendRow(row)
	}

	page := fmt.Sprintf(htmlPageTemplate, t.RenderHTML())
	err := os.WriteFile(path, []byte(page), 0644)
	if err != nil {
		return err
	}

	slog.Info("exported records to html", "count", len(records), "path", path)
	return nil
}
