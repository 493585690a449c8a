package tiktok

import (
	"strconv"
	"strings"
)

// The SIGI_STATE blob is an undocumented internal state dump: fields
// come and go and change type between items. These raw types keep the
// untyped shape but expose named accessors that return typed defaults
// on absence, so the record builder never has to null-chase.

type RawItem map[string]any
type RawMusic map[string]any
type RawUser map[string]any
type RawUserStats map[string]any

// intValue converts a decoded JSON value to an integer on a best-effort
// basis. Numbers truncate toward zero, strings must parse as base-10
// integers, bools map to 1/0.
func intValue(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// safeInt is intValue with a zero default, used for counters where a
// missing or garbage upstream value must never kill a record.
func safeInt(v any) int64 {
	n, ok := intValue(v)
	if !ok {
		return 0
	}
	return n
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func optString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// truthy implements the coercion table for loosely-typed flags:
// nil -> false, bool -> itself, numbers -> value != 0,
// strings -> len > 0 (so "false" and "0" are both true),
// arrays and objects -> len > 0.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

func subMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func (it RawItem) Desc() *string {
	return optString(it["desc"])
}

func (it RawItem) CreateTime() (int64, bool) {
	raw, ok := it["createTime"]
	if !ok {
		// an absent timestamp defaults the conversion input to zero,
		// an explicitly null or garbage one does not
		raw = float64(0)
	}
	return intValue(raw)
}

func (it RawItem) AuthorID() string {
	return stringValue(it["author"])
}

// MusicRef resolves the item's music reference: the explicit musicId
// field wins, then a string `music` field, then the id of an embedded
// music object.
func (it RawItem) MusicRef() string {
	if id := stringValue(it["musicId"]); id != "" {
		return id
	}
	if id := stringValue(it["music"]); id != "" {
		return id
	}
	if obj := subMap(it["music"]); obj != nil {
		return stringValue(obj["id"])
	}
	return ""
}

func (it RawItem) Video() map[string]any {
	return subMap(it["video"])
}

func (it RawItem) Stats() map[string]any {
	return subMap(it["stats"])
}

func (it RawItem) TextExtra() []any {
	list, _ := it["textExtra"].([]any)
	return list
}

func (it RawItem) ShareURL() string {
	return stringValue(it["shareUrl"])
}

func (it RawItem) IsAd() bool {
	return truthy(it["isAd"])
}

// SuggestedWords returns the discovery breadcrumb, or nil when absent
// or not a list of strings.
func (it RawItem) SuggestedWords() []string {
	list, ok := it["suggestedWords"].([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	var words []string
	for _, w := range list {
		if s, ok := w.(string); ok {
			words = append(words, s)
		}
	}
	return words
}

func firstString(values ...any) *string {
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

func (m RawMusic) Title() *string {
	return firstString(m["title"], m["name"])
}

func (m RawMusic) AuthorName() *string {
	return firstString(m["authorName"], m["author"])
}

func (m RawMusic) CoverThumb() *string {
	return optString(m["coverThumb"])
}

func (m RawMusic) CoverMedium() *string {
	return optString(m["coverMedium"])
}

func (m RawMusic) CoverLarge() *string {
	return optString(m["coverLarge"])
}

func (u RawUser) Nickname() *string {
	return optString(u["nickname"])
}

func (s RawUserStats) Followers() int64 {
	return safeInt(s["followerCount"])
}

func (s RawUserStats) Following() int64 {
	return safeInt(s["followingCount"])
}

func (s RawUserStats) Likes() int64 {
	return safeInt(s["heartCount"])
}

func (s RawUserStats) Videos() int64 {
	return safeInt(s["videoCount"])
}
