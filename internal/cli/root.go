package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashishmaurya/portfolio/internal/config"
	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves Ashish Maurya's portfolio site: biography, a filterable
project gallery and a contact form.

Configuration is read from the environment and from a .env file in the
working directory.`,
	SilenceUsage: true,
}

var verbose bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(technologiesCmd)
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadCatalog reads configuration and the project seed it points at.
func loadCatalog() (*config.Config, *portfolio.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	catalog, err := portfolio.LoadCatalog(cfg.ProjectsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load projects: %w", err)
	}
	return cfg, catalog, nil
}
