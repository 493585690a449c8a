package commands

import (
	"encoding/json"
	"log/slog"
	"os"

	"tiktok-discover/lib/configutil"
	"tiktok-discover/lib/export"
	"tiktok-discover/lib/scrapers/tiktok"
	"tiktok-discover/lib/serviceutil"

	"github.com/spf13/cobra"
)

var enrichInputFile *string
var enrichOutputDir *string
var enrichFormats *[]string

func init() {
	enrichInputFile = enrichCmd.Flags().String("input-file", "", "Path to a JSON file containing pre-scraped video records (list of objects).")
	enrichOutputDir = enrichCmd.Flags().String("output-dir", "data", "Directory where exported files will be written.")
	enrichFormats = enrichCmd.Flags().StringSlice("formats", nil, "Output formats (json, csv, excel, xml, html). Overrides config if provided.")
	enrichCmd.MarkFlagRequired("input-file")
	rootCmd.AddCommand(enrichCmd)
}

func loadInputFile(path string) []map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		serviceutil.Fatal("failed to read input file", err)
	}

	var records []map[string]any
	err = json.Unmarshal(data, &records)
	if err != nil {
		serviceutil.Fatal("input file must contain a JSON list of video objects", err)
	}

	slog.Info("loaded video records", "count", len(records), "path", path)
	return records
}

var enrichCmd = &cobra.Command{
	Use:   "enrich --input-file <records.json>",
	Short: "Enriches pre-scraped video records from a JSON file and exports them, skipping network scraping.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("unable to load settings", err)
		}

		records := loadInputFile(*enrichInputFile)

		// the hashtag origin of file records is unknown, mark them
		enriched := tiktok.EnrichRecords(records, "from_input_file", slog.Default())

		if len(enriched) == 0 {
			slog.Warn("no video records collected, nothing to export")
			return
		}

		formats := cfg.OutputFormats
		if len(*enrichFormats) > 0 {
			formats = *enrichFormats
		}
		if len(formats) == 0 {
			formats = []string{"json", "csv"}
		}

		err = export.ExportAll(enriched, *enrichOutputDir, formats)
		if err != nil {
			serviceutil.Fatal("failed to export data", err)
		}

		slog.Info("enrichment and export completed successfully")
	},
}
