package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/myfrench-backend/internal/adapter/sheets"
	"github.com/heartmarshall/myfrench-backend/internal/config"
	"github.com/heartmarshall/myfrench-backend/internal/service/vocabulary"
	"github.com/heartmarshall/myfrench-backend/internal/transport/middleware"
	"github.com/heartmarshall/myfrench-backend/internal/transport/rest"
)

// Run wires the application together and serves HTTP until ctx is
// cancelled. It loads configuration, initializes the logger, builds the
// sheets client (optionally wrapped in the fetch cache), the vocabulary
// service, and the REST surface, then runs the server with a graceful
// shutdown bounded by the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Credential resolution happens here, so a misconfigured credential
	// fails startup instead of the first request.
	client, err := sheets.New(ctx, cfg.Sheets, logger)
	if err != nil {
		return fmt.Errorf("sheets client: %w", err)
	}

	var rows sheets.Fetcher = client
	if cfg.Sheets.Cache.Enabled {
		rows = sheets.NewCache(client, client.SourceKey(), cfg.Sheets.Cache, logger)
		logger.Info("sheet fetch cache enabled",
			slog.Duration("ttl", cfg.Sheets.Cache.TTL),
			slog.Int("max_entries", cfg.Sheets.Cache.MaxEntries),
		)
	}

	vocabService := vocabulary.NewService(logger, rows, cfg.Vocabulary)

	healthHandler := rest.NewHealthHandler()
	vocabHandler := rest.NewVocabularyHandler(vocabService, logger)

	router := rest.NewRouter(healthHandler, vocabHandler)

	// Recovery outermost; Logger last so it sees the request id and
	// skips the probe paths.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger, "/", "/health"),
	)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
