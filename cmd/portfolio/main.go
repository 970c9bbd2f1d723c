// Package main provides the portfolio binary: the web server plus tooling
// for checking and browsing the project catalog.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"engfolio.dev/internal/config"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand
type options struct {
	configPath  string
	catalogPath string
	skillsPath  string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Engineering portfolio site",
		Long: `Portfolio serves a catalog of personal and team engineering projects
as a website and JSON API.

Settings come from built-in defaults, an optional YAML file (--config) and
PORTFOLIO_* environment variables, in that order.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Project catalog JSON replacing the embedded one")
	cmd.PersistentFlags().StringVar(&opts.skillsPath, "skills", "", "Skill reference YAML replacing the embedded one")

	cmd.AddCommand(
		serveCmd(opts),
		validateCmd(opts),
		showCmd(opts),
		iconCmd(opts),
		mcpCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "portfolio version %s\n", config.Version)
			},
		},
	)

	return cmd
}

// load builds the configuration and content snapshot, letting command line
// paths win over the config file and environment
func (o *options) load() (*config.Config, error) {
	cfg, err := config.LoadSettings(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.catalogPath != "" {
		cfg.Data.CatalogPath = o.catalogPath
	}
	if o.skillsPath != "" {
		cfg.Data.SkillsPath = o.skillsPath
	}
	if err := cfg.LoadContent(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger installs the default slog logger described by cfg. Logs always
// go to w so stdout stays free for command output and the MCP transport.
func setupLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, handlerOpts)
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
