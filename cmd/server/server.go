package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// startHTTPServer runs the HTTP server until a shutdown signal or context
// cancellation, then drains in-flight requests within the configured
// shutdown timeout and releases the application's resources.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		app.logger.Info("listening for requests", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("server stopped unexpectedly", "error", err)
			cancelServer()
		}
	}()

	select {
	case sig := <-shutdownCh:
		app.logger.Info("shutdown signal received", "signal", sig.String())
	case <-serverCtx.Done():
		app.logger.Info("server context canceled, shutting down")
	}

	timeout := time.Duration(app.config.Server.ShutdownTimeout) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("graceful shutdown failed", "error", err, "timeout", timeout)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("server stopped")
	return nil
}
