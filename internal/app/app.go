package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/textscanner/internal/config"
	"github.com/heartmarshall/textscanner/internal/service/explain"
)

// Run is the relay server entry point. It loads configuration, initializes
// the logger, wires the explanation provider into the HTTP handlers and
// serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	if err := cfg.RequireAPIKey(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	llm, err := NewCompleter(cfg.Explanation, cfg.Relay.MaxTokens, cfg.Relay.Temperature, logger)
	if err != nil {
		return err
	}

	handler, err := NewRelayHandler(cfg, logger, explain.NewService(logger, llm), Version)
	if err != nil {
		return err
	}
	defer handler.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("starting relay server",
		slog.String("version", BuildVersion()),
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env),
		slog.String("provider", cfg.Explanation.Provider),
		slog.String("model", cfg.Explanation.Model),
		slog.String("log_level", cfg.Log.Level),
	)

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until it fails or ctx is done, then drains in-flight
// requests for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down relay server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("relay server stopped")
	return nil
}
