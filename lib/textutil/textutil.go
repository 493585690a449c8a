package textutil

import (
	"strings"
)

// NormalizeHashtag strips leading '#' markers and surrounding whitespace.
// The result may be empty, callers are expected to check for that.
func NormalizeHashtag(tag string) string {
	tag = strings.TrimLeft(tag, "#")
	return strings.TrimSpace(tag)
}
