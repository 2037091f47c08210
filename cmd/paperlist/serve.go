// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperlist/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Serve starts the paperlist web interface: a searchable, paginated table
of the configured spreadsheet. The sheet is loaded once at startup; use the
Reload button (or POST /api/reload) to fetch it again.`,
	Example: `  # Start on the default port 8787
  paperlist serve

  # Start on a custom port
  paperlist serve --port 3000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (default from config, then 8787)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = serveConfig().Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(sourceConfig(), viewConfig())
	s.LoadAsync(ctx)

	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("paperlist interface available", "addr", addr, "url", "http://localhost"+addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "err", err)
			return err
		}
		slog.Info("Server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
