package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

const baseName = "tiktok_discover_export"

// Maps converts any JSON-serializable record slice into the loose
// object form every exporter consumes. Scraped Record structs and
// pre-built file records go through the same pipeline this way.
func Maps(records any) ([]map[string]any, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	err = json.Unmarshal(data, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// flattenRecord collapses nested objects and lists into JSON text so
// tabular formats get one scalar per cell.
func flattenRecord(record map[string]any) map[string]any {
	flat := make(map[string]any, len(record))
	for key, value := range record {
		switch value.(type) {
		case map[string]any, []any:
			text, err := json.Marshal(value)
			if err != nil {
				flat[key] = fmt.Sprint(value)
				continue
			}
			flat[key] = string(text)
		default:
			flat[key] = value
		}
	}
	return flat
}

// columnNames returns the sorted union of keys across all records so
// every tabular export has a stable header row.
func columnNames(records []map[string]any) []string {
	set := map[string]bool{}
	for _, rec := range records {
		for key := range rec {
			set[key] = true
		}
	}
	columns := make([]string, 0, len(set))
	for key := range set {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

// cellString renders a flattened value for a table cell, nulls become
// empty strings.
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// ExportAll writes the records once per requested format under dir.
// Formats it does not recognize are warned about and skipped.
func ExportAll(records []map[string]any, dir string, formats []string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	slog.Info("exporting data", "formats", formats, "records", len(records))

	for _, format := range formats {
		var err error
		switch format {
		case "json":
			err = ExportJSON(records, filepath.Join(dir, baseName+".json"))
		case "csv":
			err = ExportCSV(records, filepath.Join(dir, baseName+".csv"))
		case "excel":
			err = ExportExcel(records, filepath.Join(dir, baseName+".xlsx"))
		case "xml":
			err = ExportXML(records, filepath.Join(dir, baseName+".xml"))
		case "html":
			err = ExportHTML(records, filepath.Join(dir, baseName+".html"))
		default:
			slog.Warn("skipping unknown export format", "format", format)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
	}
	return nil
}
