package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/formatter"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

var (
	summarySite    string
	summaryLow     float64
	summaryHigh    float64
	summaryMetrics bool
)

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print both charts for one selection",
		Long: `Resolve the pie and scatter charts for a site and payload range and print
them in the selected output format. Unset values fall back to the dashboard
defaults: every site and the observed payload bounds.

Examples:
  launchdash summary
  launchdash summary --site "KSC LC-39A" --low 2000 --high 8000
  launchdash summary --output json`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}

	cmd.Flags().StringVarP(&summarySite, "site", "s", chart.AllSites, "launch site, or ALL")
	cmd.Flags().Float64Var(&summaryLow, "low", 0, "lower payload bound in kg (default observed minimum)")
	cmd.Flags().Float64Var(&summaryHigh, "high", 0, "upper payload bound in kg (default observed maximum)")
	cmd.Flags().BoolVar(&summaryMetrics, "metrics", false, "print resolver timings to stderr")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return err
	}

	log := newLogger("summary")
	metrics := monitor.New()

	ds, err := loadDataset(cfg, metrics, log)
	if err != nil {
		return err
	}

	sel := chart.DefaultSelection(ds)
	sel.Site = summarySite
	if cmd.Flags().Changed("low") {
		sel.Payload.Low = summaryLow
	}
	if cmd.Flags().Changed("high") {
		sel.Payload.High = summaryHigh
	}
	if !sel.IsAll() && !ds.HasSite(sel.Site) {
		log.Warn("Unknown launch site %q, the charts will be empty", sel.Site)
	}

	out, err := formatter.New(getOutputFormat(cfg), useColor(cfg))
	if err != nil {
		return err
	}

	snapshot := &chart.Snapshot{Selection: sel, Launches: ds.Len()}
	metrics.TrackOperation(monitor.OperationPie, func() {
		snapshot.Pie = chart.Pie(ds, sel.Site)
	})
	metrics.TrackOperation(monitor.OperationScatter, func() {
		snapshot.Scatter = chart.Scatter(ds, sel.Site, sel.Payload)
	})

	data, err := out.Format(snapshot)
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if summaryMetrics {
		return printMetricsReport(cmd, metrics)
	}
	return nil
}

func printMetricsReport(cmd *cobra.Command, metrics *monitor.MetricsCollector) error {
	snapshot, err := metrics.GetSnapshot()
	if err != nil {
		return fmt.Errorf("failed to collect metrics: %w", err)
	}

	format := monitor.ReportFormatText
	if outputFmt == "json" {
		format = monitor.ReportFormatJSON
	}
	report, err := monitor.FormatReport(snapshot, format)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\n%s Metrics\n%s\n", GetEmoji("statistics"), report)
	return nil
}
