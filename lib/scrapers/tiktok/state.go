package tiktok

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"tiktok-discover/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var errNotAnObject = errors.New("item body is not an object")

// RawState is the deserialized SIGI_STATE blob, reduced to the three
// sub-tables the extraction pipeline cares about. It is parsed once per
// page and discarded after extraction.
type RawState struct {
	itemIDs   []string
	items     map[string]json.RawMessage
	music     map[string]RawMusic
	users     map[string]RawUser
	userStats map[string]RawUserStats
}

// LocateState finds the embedded SIGI_STATE script element in a page
// and deserializes it. A missing element, empty script body or JSON
// parse failure all report ok=false rather than an error, "no state"
// is an expected outcome for this page.
func LocateState(html string) (*RawState, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}

	sel := doc.Find("script#SIGI_STATE")
	if len(sel.Nodes) == 0 {
		return nil, false
	}
	// only one state element is ever expected, take the first if the
	// markup somehow carries more
	text := htmlutil.GetText(sel.Nodes[0])
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	state, err := parseState([]byte(text))
	if err != nil {
		return nil, false
	}
	return state, true
}

func parseState(data []byte) (*RawState, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	state := &RawState{
		items:     map[string]json.RawMessage{},
		music:     map[string]RawMusic{},
		users:     map[string]RawUser{},
		userStats: map[string]RawUserStats{},
	}

	state.itemIDs, state.items = decodeOrderedTable(top["ItemModule"])

	// the music and user tables are optional, their absence just means
	// every downstream lookup resolves to an empty sub-object
	var musicModule map[string]json.RawMessage
	if err := json.Unmarshal(top["MusicModule"], &musicModule); err == nil {
		json.Unmarshal(musicModule["music"], &state.music)
	}

	var userModule map[string]json.RawMessage
	if err := json.Unmarshal(top["UserModule"], &userModule); err == nil {
		json.Unmarshal(userModule["user"], &state.users)
		json.Unmarshal(userModule["stats"], &state.userStats)
	}

	return state, nil
}

// decodeOrderedTable walks an object's tokens so record extraction can
// preserve the document order of the item table, which encoding/json
// map decoding would throw away. A value that is not an object yields
// an empty table.
func decodeOrderedTable(raw json.RawMessage) ([]string, map[string]json.RawMessage) {
	table := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return nil, table
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, table
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, table
	}

	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, map[string]json.RawMessage{}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, map[string]json.RawMessage{}
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, map[string]json.RawMessage{}
		}
		if _, seen := table[key]; !seen {
			order = append(order, key)
		}
		table[key] = value
	}

	return order, table
}

// HasItems reports whether the item table held at least one entry.
func (s *RawState) HasItems() bool {
	return s != nil && len(s.itemIDs) > 0
}

// ItemIDs returns item ids in the order they appeared in the blob.
func (s *RawState) ItemIDs() []string {
	if s == nil {
		return nil
	}
	return s.itemIDs
}

// Item decodes one raw item body. Items are decoded individually so a
// single malformed entry cannot poison the rest of the table.
func (s *RawState) Item(id string) (RawItem, error) {
	var item RawItem
	err := json.Unmarshal(s.items[id], &item)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNotAnObject
	}
	return item, nil
}

// Music looks up a music table entry, a missing key resolves to an
// empty sub-object.
func (s *RawState) Music(id string) RawMusic {
	if s == nil {
		return nil
	}
	return s.music[id]
}

func (s *RawState) User(id string) RawUser {
	if s == nil {
		return nil
	}
	return s.users[id]
}

func (s *RawState) UserStats(id string) RawUserStats {
	if s == nil {
		return nil
	}
	return s.userStats[id]
}
