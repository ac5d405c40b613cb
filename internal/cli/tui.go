package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/monitor"
	"github.com/yildizm/LaunchDash/internal/ui"
)

var tuiWatch bool

func newTUICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the dashboard in the terminal",
		Long: `Open the launch dashboard as a full screen terminal UI.

Use the arrow keys to pick a site and move the payload range handles.
With --watch, changes to the CSV are loaded into the running dashboard.

Examples:
  launchdash tui
  launchdash tui --watch`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}

	cmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "reload the dashboard when the file changes")
	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return err
	}
	if !ui.SetThemeByName(cfg.UI.Theme) {
		return fmt.Errorf("unknown theme: %s (available: %s)", cfg.UI.Theme, strings.Join(ui.ThemeNames(), ", "))
	}

	log := newLogger("tui")
	metrics := monitor.New()

	ds, err := loadDataset(cfg, metrics, log)
	if err != nil {
		return err
	}

	if !tuiWatch {
		return ui.Run(cfg.Dataset.Path, ds)
	}

	program := ui.NewProgram(ui.NewDashboardModel(cfg.Dataset.Path, ds))

	w, err := newDatasetWatcher(cfg.Dataset.Path, metrics, log)
	if err != nil {
		return err
	}
	w.onReload = func(ds *dataset.Dataset) {
		program.Send(ui.DatasetMsg{Dataset: ds})
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := w.Run(gctx)
		program.Quit()
		return err
	})
	g.Go(func() error {
		// quitting the program ends the watcher too
		defer stop()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	return g.Wait()
}
