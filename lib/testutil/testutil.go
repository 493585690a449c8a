package testutil

import (
	"fmt"
	"testing"

	"tiktok-discover/lib/telemetry"

	"github.com/mazen160/go-random"
)

// Setup initializes slog and (optional) telemetry for a test package.
func Setup(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(fmt.Sprintf("test:%s", name))
}

// RandomText returns random alphanumeric text for fixture records.
func RandomText(t testing.TB, length int) string {
	s, err := random.String(length)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
