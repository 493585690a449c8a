package commands

import (
	"log/slog"
	"sync"
	"time"

	"tiktok-discover/lib/configutil"
	"tiktok-discover/lib/export"
	"tiktok-discover/lib/restyutil"
	"tiktok-discover/lib/scrapers/tiktok"
	"tiktok-discover/lib/serviceutil"
	"tiktok-discover/lib/textutil"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl       string   `json:"base_url"`
	UserAgent     string   `json:"user_agent"`
	OutputFormats []string `json:"output_formats"`
}

var scrapeOutputDir *string
var scrapeFormats *[]string
var scrapeLimit *int
var scrapeTimeout *int

func init() {
	scrapeOutputDir = scrapeCmd.Flags().String("output-dir", "data", "Directory where exported files will be written.")
	scrapeFormats = scrapeCmd.Flags().StringSlice("formats", nil, "Output formats (json, csv, excel, xml, html). Overrides config if provided.")
	scrapeLimit = scrapeCmd.Flags().Int("limit", 0, "Maximum number of videos per hashtag, 0 means no limit.")
	scrapeTimeout = scrapeCmd.Flags().Int("timeout", 20, "HTTP timeout in seconds for TikTok requests.")
	rootCmd.AddCommand(scrapeCmd)
}

func resolveFormats(cfg Config) []string {
	if len(*scrapeFormats) > 0 {
		return *scrapeFormats
	}
	if len(cfg.OutputFormats) > 0 {
		return cfg.OutputFormats
	}
	return []string{"json", "csv"}
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <hashtag> [hashtag...]",
	Short: "Scrapes the Discover page for each hashtag and exports the video records.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("unable to load settings", err)
		}

		client := tiktok.NewClient(tiktok.ClientOptions{
			BaseUrl:   cfg.BaseUrl,
			UserAgent: cfg.UserAgent,
			Timeout:   time.Duration(*scrapeTimeout) * time.Second,
		})
		if *debug {
			client.SetInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/discover"))
		}
		parser := tiktok.NewParser(slog.Default())

		ctx := cmd.Context()

		// each hashtag's extraction is independent, so scrape them
		// concurrently and keep results in argument order
		perTag := make([][]tiktok.Record, len(args))
		wg := sync.WaitGroup{}

		for i, arg := range args {
			tag := textutil.NormalizeHashtag(arg)
			if tag == "" {
				slog.Warn("skipping empty hashtag value", "hashtag", arg)
				continue
			}

			wg.Add(1)
			go func(i int, tag string) {
				defer wg.Done()

				slog.Info("processing hashtag", "hashtag", tag)
				html, err := client.FetchDiscoverPage(ctx, tag)
				if err != nil {
					slog.Error("failed to fetch discover page", "hashtag", tag, "err", err)
					return
				}

				records := parser.ParseVideos(ctx, html, tag)
				if *scrapeLimit > 0 && len(records) > *scrapeLimit {
					records = records[:*scrapeLimit]
				}
				slog.Info("parsed videos", "hashtag", tag, "count", len(records))
				perTag[i] = records
			}(i, tag)
		}
		wg.Wait()

		var all []tiktok.Record
		for _, records := range perTag {
			all = append(all, records...)
		}

		if len(all) == 0 {
			// "no data found" is a valid outcome for a scraper, not a crash
			slog.Warn("no video records collected, nothing to export")
			return
		}

		records, err := export.Maps(all)
		if err != nil {
			serviceutil.Fatal("failed to serialize records", err)
		}
		err = export.ExportAll(records, *scrapeOutputDir, resolveFormats(cfg))
		if err != nil {
			serviceutil.Fatal("failed to export data", err)
		}

		slog.Info("scraping and export completed successfully")
	},
}
