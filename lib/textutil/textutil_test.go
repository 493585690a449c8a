package textutil

import (
	"testing"
)

func TestNormalizeHashtag(t *testing.T) {
	cases := map[string]string{
		"travel":      "travel",
		"#travel":     "travel",
		"##travel":    "travel",
		"#travel  ":   "travel",
		"#  travel ":  "travel",
		"#":           "",
		"":            "",
		"   ":         "",
		"#tag#inside": "tag#inside",
	}
	for input, want := range cases {
		got := NormalizeHashtag(input)
		if got != want {
			t.Errorf("NormalizeHashtag(%q) = %q, want %q", input, got, want)
		}
	}
}
