package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/LaunchDash/internal/config"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/emoji"
	"github.com/yildizm/LaunchDash/internal/logger"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

var (
	cfgFile   string
	dataPath  string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	appVersion   string
	globalConfig *config.Config
)

// NewRootCommand creates the root command. Without a subcommand it serves
// the dashboard.
func NewRootCommand(version, commit, date string) *cobra.Command {
	appVersion = version
	globalConfig = nil

	rootCmd := &cobra.Command{
		Use:   "launchdash",
		Short: "SpaceX launch records dashboard",
		Long: `LaunchDash loads SpaceX launch records from a CSV file and serves an
interactive dashboard: launch success by site as a pie chart, and payload
mass against outcome as a scatter plot filtered by a payload range.

Run without a subcommand to start the web dashboard on the configured address.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)
		},
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "launch records CSV (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, markdown, csv, yaml)")

	addServeFlags(rootCmd)

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newMCPCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "LaunchDash %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig loads the effective configuration once per command run.
// Command line flags win over file and environment settings.
func GetGlobalConfig() (*config.Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.Dataset.Path = dataPath
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.ColorMode = "never"
	}

	globalConfig = cfg
	return cfg, nil
}

// loadDataset reads the configured launch file. A DataLoadError is returned
// wrapped so the process exits non-zero before any surface starts.
func loadDataset(cfg *config.Config, metrics *monitor.MetricsCollector, log *logger.Logger) (*dataset.Dataset, error) {
	var ds *dataset.Dataset
	load := func() error {
		var err error
		ds, err = dataset.Load(cfg.Dataset.Path)
		return err
	}

	var err error
	if metrics != nil {
		err = metrics.TrackOperationWithError(monitor.OperationLoad, load)
	} else {
		err = load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load launch records: %w", err)
	}

	log.InfoWithFields("Loaded launch records", []logger.Field{
		logger.F("path", cfg.Dataset.Path),
		logger.Count(ds.Len()),
		logger.F("sites", len(ds.Sites())),
	})
	return ds, nil
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}

// Helper functions for accessing global flags
func isVerbose() bool {
	if verbose {
		return true
	}
	return globalConfig != nil && globalConfig.Output.Verbose
}

func getOutputFormat(cfg *config.Config) string {
	if outputFmt != "" {
		return outputFmt
	}
	if cfg != nil && cfg.Output.DefaultFormat != "" {
		return cfg.Output.DefaultFormat
	}
	return "text"
}

func useColor(cfg *config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

func isEmojiDisabled() bool {
	return noEmoji
}
