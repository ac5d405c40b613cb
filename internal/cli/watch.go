package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/formatter"
	"github.com/yildizm/LaunchDash/internal/logger"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

// reloadDelay coalesces the burst of events a single save produces
const reloadDelay = 150 * time.Millisecond

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the launch records file and print a summary on change",
		Long: `Monitor the launch records CSV for changes. Every write re-loads the file into
a fresh dataset and prints its summary. A file that fails to load is reported
and the previous records are kept. Press Ctrl+C to stop watching.

Examples:
  launchdash watch
  launchdash watch --data ./spacex_launch_dash.csv --output json`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return err
	}

	log := newLogger("watch")
	metrics := monitor.New()

	ds, err := loadDataset(cfg, metrics, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := getOutputFormat(cfg)
	color := useColor(cfg)
	if err := printDatasetSummary(out, ds, format, color); err != nil {
		return err
	}

	w, err := newDatasetWatcher(cfg.Dataset.Path, metrics, log)
	if err != nil {
		return err
	}
	w.onReload = func(ds *dataset.Dataset) {
		fmt.Fprintf(out, "\n%s Reloaded %s at %s\n", GetEmoji("reload"), ds.Source(), time.Now().Format("15:04:05"))
		if err := printDatasetSummary(out, ds, format, color); err != nil {
			log.Warn("Failed to print summary: %v", err)
		}
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "%s Watching file: %s\n", GetEmoji("watch"), cfg.Dataset.Path)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	return w.Run(ctx)
}

// datasetWatcher re-loads one launch file whenever it is written. Each
// reload builds a new Dataset; previously delivered datasets stay untouched.
type datasetWatcher struct {
	path     string
	target   string
	delay    time.Duration
	metrics  *monitor.MetricsCollector
	logger   *logger.Logger
	onReload func(*dataset.Dataset)
}

func newDatasetWatcher(path string, metrics *monitor.MetricsCollector, log *logger.Logger) (*datasetWatcher, error) {
	if err := validateWatchFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return &datasetWatcher{
		path:    path,
		target:  target,
		delay:   reloadDelay,
		metrics: metrics,
		logger:  log,
	}, nil
}

// Run watches until ctx is done. The parent directory is watched so that
// editors replacing the file by rename are still seen.
func (w *datasetWatcher) Run(ctx context.Context) error {
	watcher, err := createWatcher(filepath.Dir(w.target))
	if err != nil {
		return err
	}
	defer w.cleanupWatcher(watcher)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-pending:
			pending = nil
			w.reload()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if w.isReloadEvent(event) {
				pending = time.After(w.delay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("Watcher error: %v", err)
		}
	}
}

func (w *datasetWatcher) isReloadEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *datasetWatcher) reload() {
	var ds *dataset.Dataset
	load := func() error {
		var err error
		ds, err = dataset.Load(w.path)
		return err
	}

	var err error
	if w.metrics != nil {
		err = w.metrics.TrackOperationWithError(monitor.OperationLoad, load)
	} else {
		err = load()
	}
	if err != nil {
		w.logger.WarnWithFields("Reload failed, keeping previous launch records", []logger.Field{
			logger.F("path", w.path),
			logger.Error(err),
		})
		return
	}

	w.logger.DebugWithFields("Reloaded launch records", []logger.Field{
		logger.F("path", w.path),
		logger.Count(ds.Len()),
	})
	if w.onReload != nil {
		w.onReload(ds)
	}
}

// cleanupWatcher safely closes watcher with error logging
func (w *datasetWatcher) cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		w.logger.Debug("Failed to close watcher: %v", err)
	}
}

// createWatcher creates a file system watcher on dir
func createWatcher(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return watcher, nil
}

// validateWatchFilePath checks that path names an existing regular file.
// The path is operator configuration, so parent references are allowed.
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}

// printDatasetSummary writes the headline numbers of ds. Structured formats
// print the default selection's snapshot instead.
func printDatasetSummary(w io.Writer, ds *dataset.Dataset, format string, color bool) error {
	if format != "text" {
		f, err := formatter.New(format, color)
		if err != nil {
			return err
		}
		data, err := f.Format(chart.Resolve(ds, chart.DefaultSelection(ds)))
		if err != nil {
			return fmt.Errorf("failed to format summary: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	successes := 0
	for l := range ds.All() {
		if l.Succeeded() {
			successes++
		}
	}
	rate := 0.0
	if ds.Len() > 0 {
		rate = float64(successes) / float64(ds.Len())
	}
	bounds := ds.Bounds()

	fmt.Fprintf(w, "%s %d launches from %d sites\n", GetEmoji("rocket"), ds.Len(), len(ds.Sites()))
	fmt.Fprintf(w, "%s payload %s - %s\n", GetEmoji("payload"), formatter.FormatMass(bounds.Min), formatter.FormatMass(bounds.Max))
	fmt.Fprintf(w, "%s success rate %s %.1f%%\n", GetOutcomeEmoji(rate >= 0.5), CreateRateBar(rate), rate*100)

	pie := chart.Pie(ds, chart.AllSites)
	for _, slice := range pie.Slices {
		fmt.Fprintf(w, "   %s %-14s %d successes\n", GetEmoji("site"), slice.Label, slice.Value)
	}
	return nil
}
