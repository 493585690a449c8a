package commands

import (
	"context"
	"fmt"
	"os"

	"tiktok-discover/lib/telemetry"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "discover-cli",
	Short: "discover-cli scrapes TikTok Discover page videos for one or more hashtags and exports them to flat files.",
}

var debug *bool

func init() {
	debug = rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging and request dumps.")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*debug)
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
