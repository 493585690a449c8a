package chrono

import (
	"time"
)

// UnixToISO formats epoch seconds as an ISO-8601 timestamp with an
// explicit UTC offset, e.g. "2023-11-14T22:13:20+00:00".
func UnixToISO(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02T15:04:05") + "+00:00"
}
