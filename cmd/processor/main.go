package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"rkcli/internal/config"
	"rkcli/internal/dataprocessing"
	"rkcli/internal/exporter"
	"rkcli/internal/files"
	"rkcli/internal/infrastructure"
)

func main() {
	filename := flag.String("f", "", "activity export file (.csv or .xlsx), '-' for stdin; defaults to the newest export in the configured exports directory")
	startSpec := flag.String("s", "", "start date (2006, 2006-01, 2006-01-02 or '2006-01-02 15:04:05')")
	endSpec := flag.String("e", "", "end date, same formats as -s; defaults to now")
	jsonOut := flag.String("json", "", "also write the summary as JSON to this path")
	csvOut := flag.String("csv", "", "also write the summary as CSV to this path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	// The window bounds are resolved here, once, and passed down explicitly.
	// The aggregation core never consults the process clock.
	start := time.Unix(0, 0).UTC()
	if *startSpec != "" {
		start, err = dataprocessing.ParseDateSpec(*startSpec)
		if err != nil {
			logger.Error("Invalid start date", slog.String("start", *startSpec), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	end := time.Now().UTC()
	if *endSpec != "" {
		end, err = dataprocessing.ParseDateSpec(*endSpec)
		if err != nil {
			logger.Error("Invalid end date", slog.String("end", *endSpec), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	path := resolveExportArg(*filename, flag.Args())
	if path == "" {
		discovery := files.NewDiscovery("")
		latest, err := discovery.LatestExport(cfg.Paths.ExportsDir)
		if err != nil {
			logger.Error("No export specified and none found",
				slog.String("exports_dir", cfg.Paths.ExportsDir),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		path = latest.Path
		logger.Info("Using newest export", slog.String("path", path))
	}

	logger.Info("Starting activity aggregation",
		slog.String("export", path),
		slog.Time("start", start),
		slog.Time("end", end))

	ctx := context.Background()
	service := dataprocessing.NewService(cfg.Processing.ColumnRename, logger)

	summary, err := service.Aggregate(ctx, path, start, end)
	if err != nil {
		logger.Error("Aggregation failed",
			slog.String("export", path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := exporter.WriteText(os.Stdout, summary); err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writer := exporter.NewSummaryWriter(logger)
	if *jsonOut != "" {
		if err := writer.WriteJSON(*jsonOut, summary); err != nil {
			logger.Error("Failed to write JSON summary", slog.String("path", *jsonOut), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	if *csvOut != "" {
		if err := writer.WriteCSV(*csvOut, summary); err != nil {
			logger.Error("Failed to write CSV summary", slog.String("path", *csvOut), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Aggregation finished",
		slog.Int64("total_activities", summary.TotalActivities),
		slog.Int("warnings", len(summary.Warnings)))
}

// resolveExportArg picks the export path from the -f flag, or from a bare "-"
// positional argument, which also means stdin. Empty means no export was
// named and discovery should pick one.
func resolveExportArg(flagValue string, args []string) string {
	if flagValue != "" {
		return flagValue
	}
	if len(args) > 0 && args[0] == files.StdinName {
		return files.StdinName
	}
	return ""
}
