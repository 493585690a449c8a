package tiktok

import (
	"context"
	"log/slog"
)

// Parser turns Discover page HTML into canonical records. Partial
// success is the steady state: one malformed item never aborts the
// batch, and a page with no state blob yields zero records.
type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) Parser {
	if log == nil {
		log = slog.Default()
	}
	return Parser{log: log}
}

// ParseVideos extracts every video record embedded in a Discover page.
// Returns an empty slice when the state blob is missing or unreadable.
func (p Parser) ParseVideos(ctx context.Context, html string, sourceHashtag string) []Record {
	ctx, span := tracer.Start(ctx, "parser:ParseVideos")
	defer span.End()

	state, ok := LocateState(html)
	if !ok {
		p.log.WarnContext(ctx, "could not find SIGI_STATE json in page, returning empty result set")
		return []Record{}
	}

	return p.ExtractRecords(ctx, state, sourceHashtag)
}

// ExtractRecords runs the record builder over the state's item table in
// document order. Items that fail to build are skipped and counted,
// never propagated.
func (p Parser) ExtractRecords(ctx context.Context, state *RawState, sourceHashtag string) []Record {
	ctx, span := tracer.Start(ctx, "parser:ExtractRecords")
	defer span.End()

	if !state.HasItems() {
		p.log.WarnContext(ctx, "item table missing or empty, no videos found")
		return []Record{}
	}

	ids := state.ItemIDs()
	records := make([]Record, 0, len(ids))
	skipped := 0

	for _, id := range ids {
		item, err := state.Item(id)
		if err != nil {
			p.log.DebugContext(ctx, "failed to build record for video", "video", id, "err", err)
			skipped++
			continue
		}

		records = append(records, buildRecord(
			id,
			item,
			state.Music(item.MusicRef()),
			state.User(item.AuthorID()),
			state.UserStats(item.AuthorID()),
			sourceHashtag,
		))
	}

	if skipped > 0 {
		p.log.DebugContext(ctx, "skipped unusable items", "count", skipped)
	}
	return records
}
