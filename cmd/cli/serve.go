// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"funtree/internal/api"
	"funtree/internal/logger"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve trees over HTTP",
		Long: `Starts an HTTP server answering GET /tree/{size} with the rendered tree.
Add ?format=yaml or ?format=json for a structured document.`,
		Example: "  funtree serve\n  funtree serve --port 9000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Server.Port
			}
			return runWebServer(cmd.Context(), port, a.cfg.Server.MaxSize, cmd)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default from config)")
	return cmd
}

// runWebServer starts the HTTP server and blocks until it fails or the
// process receives SIGINT/SIGTERM.
func runWebServer(parent context.Context, port, maxSize int, cmd *cobra.Command) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &api.Server{MaxSize: maxSize}
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           srv.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	statusColor.Fprintf(cmd.ErrOrStderr(), "Starting web server on :%d\n", port)
	logger.Info("web server started", "port", port, "max_size", maxSize)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}
	logger.Info("web server stopped")
	return nil
}
