package cli

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yildizm/LaunchDash/internal/monitor"
	"github.com/yildizm/LaunchDash/internal/server"
)

var (
	serveHost string
	servePort int
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web dashboard",
		Long: `Load the launch records and serve the interactive dashboard over HTTP.

The page holds a launch site dropdown, a success pie chart, a payload range
slider and a payload/outcome scatter plot. Every input change re-renders the
charts that depend on it. Prometheus metrics are exposed on /metrics.

Examples:
  launchdash serve
  launchdash serve --port 9000 --data ./spacex_launch_dash.csv`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	addServeFlags(cmd)
	return cmd
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	cmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	log := newLogger("server")
	metrics := monitor.New()

	ds, err := loadDataset(cfg, metrics, log)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, ds, metrics, log)
	if err != nil {
		return err
	}

	ln, err := listen(cmd.ErrOrStderr(), cfg.Server.Address())
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	return srv.Serve(ctx, ln)
}

// listen binds the dashboard address and tells the user where to find it,
// whatever the verbosity
func listen(w io.Writer, address string) (net.Listener, error) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	fmt.Fprintf(w, "%s Dashboard running at http://%s (Ctrl+C to stop)\n", GetEmoji("server"), ln.Addr())
	return ln, nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
