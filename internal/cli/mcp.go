package cli

import (
	"github.com/spf13/cobra"

	"github.com/yildizm/LaunchDash/internal/mcpserver"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the chart resolvers as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
list_sites, pie_chart and scatter_chart tools. Logs go to stderr.

Examples:
  launchdash mcp --data ./spacex_launch_dash.csv`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return err
	}

	log := newLogger("mcp")
	metrics := monitor.New()

	ds, err := loadDataset(cfg, metrics, log)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	return mcpserver.New(ds, appVersion, metrics, log).Run(ctx)
}
