package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ashishmaurya/portfolio/internal/contact"
	"github.com/ashishmaurya/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the portfolio web server.

Examples:
  portfolio serve              # Listen on $PORT or 8080
  portfolio serve --port 3000  # Listen on port 3000`,
	RunE: runServe,
}

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	log := newLogger(os.Stderr)
	sender := contact.NewClient(cfg.ContactEndpoint, cfg.ContactTimeout, log)

	server, err := web.NewServer(cfg, catalog, sender, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("projects loaded", "count", len(catalog.All()), "technologies", len(catalog.Technologies()))
	return server.Start(ctx)
}
