package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"engfolio.dev/internal/catalog"
	"engfolio.dev/internal/handlers"
	"engfolio.dev/internal/mcp"
	"engfolio.dev/internal/models"
	"engfolio.dev/internal/render"
	"engfolio.dev/internal/services"
)

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			setupLogger(cfg.Log, os.Stderr)

			for _, warning := range catalog.Lint(cfg.Catalog) {
				slog.Warn("catalog lint", "warning", warning)
			}

			srv := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      handlers.SetupRoutes(cfg),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server listening",
					"addr", cfg.Server.Addr,
					"personal_projects", len(cfg.Catalog.Personal),
					"team_projects", len(cfg.Catalog.Team),
					"contact_enabled", cfg.Contact.AccessKey != "",
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("received shutdown signal")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			slog.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overriding server.addr")
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the project catalog and skill reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, warning := range catalog.Lint(cfg.Catalog) {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}

			icons := services.NewIconResolver(cfg.Skills)
			fmt.Fprintf(out, "ok: %d personal projects, %d team projects, %d skill icons\n",
				len(cfg.Catalog.Personal), len(cfg.Catalog.Team), icons.Len())
			return nil
		},
	}
}

func showCmd(opts *options) *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <type> <id>",
		Short: "Render a project's detail page in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			ref, err := models.ParseRef(args[0], args[1])
			if err != nil {
				return err
			}
			project, ok := services.NewProjectService(cfg.Catalog).ByRef(ref)
			if !ok {
				return fmt.Errorf("project %s not found", ref)
			}

			term, err := render.NewTerminal(style, width)
			if err != nil {
				return err
			}
			out, err := term.Project(project, services.NewIconResolver(cfg.Skills))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", "Glamour style (auto, dark, light, notty, ...)")
	cmd.Flags().IntVar(&width, "width", 80, "Word wrap width")
	return cmd
}

func iconCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "icon <label>...",
		Short: "Resolve skill labels to icons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			icons := services.NewIconResolver(cfg.Skills)
			out := cmd.OutOrStdout()
			for _, label := range args {
				icon, ok := icons.SkillIcon(label)
				if !ok {
					icon = "(no icon)"
				}
				fmt.Fprintf(out, "%s\t%s\n", label, icon)
			}
			return nil
		},
	}
}

func mcpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog to MCP clients over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			setupLogger(cfg.Log, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return mcp.NewServer(cfg).Serve(ctx, os.Stdin, os.Stdout)
		},
	}
}
