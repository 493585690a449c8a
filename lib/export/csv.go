package export

import (
	"encoding/csv"
	"log/slog"
	"os"
)

// ExportCSV writes one row per record with nested values flattened to
// JSON text. An empty record set skips the file entirely.
func ExportCSV(records []map[string]any, path string) error {
	if len(records) == 0 {
		slog.Warn("no data to export to csv", "path", path)
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	columns := columnNames(records)

	writer := csv.NewWriter(file)
	err = writer.Write(columns)
	if err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, record := range records {
		flat := flattenRecord(record)
		for i, column := range columns {
			row[i] = cellString(flat[column])
		}
		err = writer.Write(row)
		if err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	slog.Info("exported records to csv", "count", len(records), "path", path)
	return nil
}
