package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/warikango/warikan/internal/batch"
	"github.com/warikango/warikan/internal/bill"
	"github.com/warikango/warikan/internal/report"
	"github.com/warikango/warikan/pkg/logging"
)

func main() {
	var (
		file    string
		dir     string
		out     string
		format  string
		workers int
	)
	flag.StringVar(&file, "file", "", "path to a single bill JSON file (report goes to stdout)")
	flag.StringVar(&dir, "dir", "", "directory of bill JSON files to batch process")
	flag.StringVar(&out, "out", "reports", "output directory for batch reports")
	flag.StringVar(&format, "format", batch.FormatText, "report format: text or json")
	flag.IntVar(&workers, "workers", 4, "concurrent files in batch mode")
	flag.Parse()

	godotenv.Load()
	logging.Setup()

	if format != batch.FormatText && format != batch.FormatJSON {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", format)
		os.Exit(2)
	}
	if (file == "") == (dir == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -dir is required")
		flag.Usage()
		os.Exit(2)
	}

	service := bill.NewService()

	if file != "" {
		if err := splitFile(service, file, format); err != nil {
			slog.Error("Split failed", "file", file, "error", err)
			os.Exit(1)
		}
		return
	}

	processor := batch.New(service, format, workers)
	summary, err := processor.Run(context.Background(), dir, out)
	if err != nil {
		slog.Error("Batch failed", "dir", dir, "error", err)
		os.Exit(1)
	}

	slog.Info("Batch finished", "processed", summary.Processed, "failed", len(summary.Failures))
	if len(summary.Failures) > 0 {
		os.Exit(1)
	}
}

// splitFile computes a single bill and writes the report to stdout.
func splitFile(service *bill.Service, path, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var req bill.SplitRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse bill: %w", err)
	}

	rep, err := service.SplitBill(context.Background(), &req)
	if err != nil {
		return err
	}

	doc := rep.ToResponse().Bill
	if format == batch.FormatJSON {
		return report.WriteJSON(os.Stdout, doc)
	}
	return report.WriteText(os.Stdout, doc)
}
