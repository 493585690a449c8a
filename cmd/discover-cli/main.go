package main

import (
	"context"

	"tiktok-discover/cmd/discover-cli/commands"
	"tiktok-discover/lib/serviceutil"
	"tiktok-discover/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(context.Background(), "discover-cli")
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
