package export

import (
	"encoding/xml"
	"log/slog"
	"os"
	"sort"
)

// ExportXML emits one <video> element per record with one child
// element per field. Nested structures are serialized to JSON text and
// nulls become empty elements.
func ExportXML(records []map[string]any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(xml.Header)
	if err != nil {
		return err
	}

	enc := xml.NewEncoder(file)

	videos := xml.StartElement{Name: xml.Name{Local: "videos"}}
	err = enc.EncodeToken(videos)
	if err != nil {
		return err
	}

	for _, record := range records {
		flat := flattenRecord(record)

		keys := make([]string, 0, len(flat))
		for key := range flat {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		video := xml.StartElement{Name: xml.Name{Local: "video"}}
		if err := enc.EncodeToken(video); err != nil {
			return err
		}
		for _, key := range keys {
			field := xml.StartElement{Name: xml.Name{Local: key}}
			err := enc.EncodeElement(cellString(flat[key]), field)
			if err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(video.End()); err != nil {
			return err
		}
	}

	err = enc.EncodeToken(videos.End())
	if err != nil {
		return err
	}
	err = enc.Flush()
	if err != nil {
		return err
	}

	slog.Info("exported records to xml", "count", len(records), "path", path)
	return nil
}
