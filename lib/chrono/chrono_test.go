package chrono

import (
	"testing"
)

func TestUnixToISO(t *testing.T) {
	cases := map[int64]string{
		0:          "1970-01-01T00:00:00+00:00",
		1700000000: "2023-11-14T22:13:20+00:00",
		-1:         "1969-12-31T23:59:59+00:00",
	}
	for ts, want := range cases {
		got := UnixToISO(ts)
		if got != want {
			t.Errorf("UnixToISO(%d) = %q, want %q", ts, got, want)
		}
	}
}
