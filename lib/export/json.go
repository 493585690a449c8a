package export

import (
	"encoding/json"
	"log/slog"
	"os"
)

// ExportJSON writes the records verbatim as a pretty-printed array.
func ExportJSON(records []map[string]any, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return err
	}
	slog.Info("exported records to json", "count", len(records), "path", path)
	return nil
}
