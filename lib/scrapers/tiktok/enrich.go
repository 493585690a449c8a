package tiktok

import (
	"log/slog"
	"maps"

	"tiktok-discover/lib/chrono"
)

// EnrichRecords fills derived fields on pre-built record objects loaded
// from a file: createTimeISO when a convertible createTime is present
// but the ISO field is missing, and discoveryInfo.sourceHashtag when
// absent. Existing values are never overwritten.
func EnrichRecords(records []map[string]any, sourceHashtag string, log *slog.Logger) []map[string]any {
	if log == nil {
		log = slog.Default()
	}

	enriched := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rec := maps.Clone(record)

		if raw, hasCreateTime := rec["createTime"]; hasCreateTime {
			if _, hasISO := rec["createTimeISO"]; !hasISO {
				if ts, ok := intValue(raw); ok {
					rec["createTimeISO"] = chrono.UnixToISO(ts)
				} else {
					log.Debug("unable to convert createTime for record", "id", rec["id"])
				}
			}
		}

		info := subMap(rec["discoveryInfo"])
		if info == nil {
			info = map[string]any{}
		}
		if sourceHashtag != "" {
			if _, has := info["sourceHashtag"]; !has {
				info["sourceHashtag"] = sourceHashtag
			}
		}
		rec["discoveryInfo"] = info

		enriched = append(enriched, rec)
	}
	return enriched
}
