package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/navmark/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a site and mark the active menu entry on each request",
	Long: `Starts an HTTP file server for the site directory. Every HTML page is
marked for the requested path before it is sent, so the source files are
never modified. /healthz and /metrics are served alongside the site.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server.port")
	serveCmd.Flags().String("origin", "", "resolve links against this origin instead of the request's")
	serveCmd.Flags().Bool("allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	dir, err := siteDir(args, cfg)
	if err != nil {
		return err
	}
	origin, _, err := originFlag(cmd, cfg)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if cmd.Flags().Changed("port") {
		port, _ = cmd.Flags().GetInt("port")
	}
	allowAll := cfg.Server.AllowAll
	if cmd.Flags().Changed("allow-all") {
		allowAll, _ = cmd.Flags().GetBool("allow-all")
	}

	srv := server.New(server.Config{
		Port:     port,
		Dir:      dir,
		AllowAll: allowAll,
		Metrics:  cfg.Server.Metrics,
		Origin:   origin,
		Selector: cfg.Selector(),
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
