// Package batch processes directories of bill files, writing one report
// per bill.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/warikango/warikan/internal/bill"
	"github.com/warikango/warikan/internal/report"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const defaultWorkers = 4

// Processor splits every bill file in a directory. Bills are independent
// computations, so files are processed concurrently up to the worker
// limit.
type Processor struct {
	service *bill.Service
	format  string
	workers int
}

// New creates a batch processor writing reports in the given format.
func New(service *bill.Service, format string, workers int) *Processor {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Processor{service: service, format: format, workers: workers}
}

// Failure records a bill file that could not be processed.
type Failure struct {
	File   string
	Reason string
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failures  []Failure
}

// Run processes every *.json bill in inDir and writes one report per bill
// into outDir. A bad file is recorded in the summary rather than aborting
// the batch; Run itself fails only on directory-level errors.
func (p *Processor) Run(ctx context.Context, inDir, outDir string) (*Summary, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("read bill directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	var (
		mu      sync.Mutex
		summary Summary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			if err := p.processFile(ctx, filepath.Join(inDir, name), outDir); err != nil {
				slog.Warn("Bill skipped", "file", name, "error", err)
				mu.Lock()
				summary.Failures = append(summary.Failures, Failure{File: name, Reason: err.Error()})
				mu.Unlock()
				return nil
			}
			slog.Info("Bill processed", "file", name)
			mu.Lock()
			summary.Processed++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].File < summary.Failures[j].File
	})
	return &summary, nil
}

func (p *Processor) processFile(ctx context.Context, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bill: %w", err)
	}

	var req bill.SplitRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse bill: %w", err)
	}

	rep, err := p.service.SplitBill(ctx, &req)
	if err != nil {
		return err
	}
	doc := rep.ToResponse().Bill

	ext := ".report.txt"
	write := report.WriteText
	if p.format == FormatJSON {
		ext = ".report.json"
		write = report.WriteJSON
	}

	base := strings.TrimSuffix(filepath.Base(path), ".json")
	return writeFile(filepath.Join(outDir, base+ext), doc, write)
}

func writeFile(path string, doc report.Document, write func(io.Writer, report.Document) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := write(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
